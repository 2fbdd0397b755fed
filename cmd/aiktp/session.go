package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aiktp_sync/internal/httpapi"
)

func newSessionCommand(a *app) *cobra.Command {
	var (
		principalID int64
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Sign an admin session token for the /admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if a.cfg.Auth.SessionSecret == "" {
				return errors.New("auth.session_secret is required")
			}
			st, err := openStores(ctx, a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := st.principals.GetByID(ctx, principalID)
			if err != nil {
				return fmt.Errorf("find principal %d: %w", principalID, err)
			}
			if ttl <= 0 {
				ttl = a.cfg.Auth.SessionTTL
			}
			tok, err := httpapi.SignSession(a.cfg.Auth.SessionSecret, p.ID, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().Int64Var(&principalID, "principal", 1, "principal id the session acts as")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "session lifetime (default auth.session_ttl)")
	return cmd
}
