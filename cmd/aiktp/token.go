package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Show or rotate the sync token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the sync token, generating one if none exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStores(cmd.Context(), a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			tok, err := st.tokens.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "regenerate",
		Short: "Replace the sync token; the remote service must be reconnected",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStores(ctx, a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			admin, err := st.principals.FirstAdministrator(ctx)
			if err != nil {
				return fmt.Errorf("find administrator: %w", err)
			}
			tok, err := st.tokens.Regenerate(ctx, admin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	})

	return cmd
}
