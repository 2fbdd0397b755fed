package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aiktp_sync/internal/bulk"
	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/httpapi"
	"aiktp_sync/internal/settings"
)

func newBulkCommand(a *app) *cobra.Command {
	var (
		ids         string
		op          string
		principalID int64
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Generate product content one record at a time through a running server",
		Long: "Queues --ids when given, then takes the queued selection and generates each record in turn.\n" +
			"The run stops on the first out-of-credits reply. Ctrl-C stops before the next record.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := a.cfg

			session := cfg.Bulk.Session
			if session == "" {
				if cfg.Auth.SessionSecret == "" {
					return errors.New("bulk.session or auth.session_secret is required")
				}
				var err error
				session, err = httpapi.SignSession(cfg.Auth.SessionSecret, principalID, time.Hour, time.Now())
				if err != nil {
					return err
				}
			}

			client := bulk.NewClient(cfg.Bulk.AdminURL, session, cfg.Bulk.Timeout)
			if selected := settings.ParseIDs(ids); len(selected) > 0 {
				n, err := client.Enqueue(ctx, selected, domain.Operation(op))
				if err != nil {
					return err
				}
				a.logger.Info("queued records", zap.Int("count", n))
			}

			job, err := client.Queue(ctx)
			if err != nil {
				return err
			}

			runner := bulk.NewRunner(client, bulk.NewLogReporter(a.logger), a.logger, bulk.RunnerConfig{
				ItemDelay:    cfg.Bulk.ItemDelay,
				StopRedirect: cfg.Bulk.StopRedirect,
				DoneRedirect: cfg.Bulk.DoneRedirect,
			})

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-sigCh:
					a.logger.Info("stopping after the current record")
					runner.Stop()
				case <-done:
				}
			}()

			_, err = runner.Run(ctx, job)
			return err
		},
	}
	cmd.Flags().StringVar(&ids, "ids", "", "comma separated record ids to queue before running")
	cmd.Flags().StringVar(&op, "type", string(domain.OperationDescription), "description or short_description")
	cmd.Flags().Int64Var(&principalID, "principal", 1, "principal id to sign a session for when bulk.session is empty")
	return cmd
}
