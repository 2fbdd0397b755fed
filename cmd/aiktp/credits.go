package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aiktp_sync/internal/generation"
)

func newCreditsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Ask the generation service for the remaining credit balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			client := generation.New(st.settings, a.logger, generation.Config{
				BaseURL:        a.cfg.Generation.BaseURL,
				Timeout:        a.cfg.Generation.Timeout,
				ConnectTimeout: a.cfg.Generation.ConnectTimeout,
			})
			balance, err := client.CheckCredits(ctx)
			if err != nil {
				return fmt.Errorf("check credits: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), balance)
			return nil
		},
	}
}
