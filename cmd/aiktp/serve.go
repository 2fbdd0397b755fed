package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aiktp_sync/internal/bulk"
	"aiktp_sync/internal/gateway"
	"aiktp_sync/internal/generation"
	"aiktp_sync/internal/httpapi"
	"aiktp_sync/internal/media"
	"aiktp_sync/internal/metrics"
	"aiktp_sync/internal/service"
	"aiktp_sync/internal/storage/redis"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the sync and admin HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	if cfg.Auth.SessionSecret == "" {
		return errors.New("auth.session_secret is required")
	}
	if cfg.Site.URL == "" {
		return errors.New("site.url is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, err := openStores(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	rdb, err := redis.NewClient(ctx, redis.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()
	kv := redis.NewStore(rdb, cfg.Redis.Prefix)

	events, err := newPublisher(cfg.RabbitMQ, logger)
	if err != nil {
		return err
	}
	defer events.Close()

	blobs, err := newBlobStore(ctx, cfg.Media)
	if err != nil {
		return err
	}

	ingestor := media.NewIngestor(blobs, st.attachments, events, logger, media.Config{
		Timeout:      cfg.Media.Timeout,
		MaxRedirects: cfg.Media.MaxRedirects,
		MinSize:      cfg.Media.MinSize,
		MaxSize:      cfg.Media.MaxSize,
		UserAgent:    cfg.Media.UserAgent,
	})

	client := generation.New(st.settings, logger, generation.Config{
		BaseURL:        cfg.Generation.BaseURL,
		Timeout:        cfg.Generation.Timeout,
		ConnectTimeout: cfg.Generation.ConnectTimeout,
	})

	gw := gateway.New(gateway.Deps{
		Tokens:      st.tokens,
		Settings:    st.settings,
		Principals:  st.principals,
		Records:     st.records,
		Terms:       st.terms,
		Attachments: st.attachments,
		Media:       ingestor,
		Filter:      st.filter,
		TxManager:   st.txManager,
		Publisher:   events,
	}, logger, gateway.Config{
		SiteURL:    cfg.Site.URL,
		SEOPlugins: cfg.SEO.Plugins,
		PageSize:   cfg.Server.PageSize,
		TagLimit:   cfg.Server.TagLimit,
	})

	generator := service.NewGenerator(
		st.records,
		st.terms,
		st.attachments,
		st.settings,
		client,
		gw,
		st.txManager,
		events,
		logger,
		service.Config{SEOPlugins: cfg.SEO.Plugins},
	)

	srv := httpapi.NewServer(httpapi.Deps{
		Gateway:     gw,
		Generator:   generator,
		Jobs:        bulk.NewJobs(kv, cfg.Bulk.QueueTTL),
		Tokens:      st.tokens,
		Connector:   client,
		APIKeys:     st.settings,
		Principals:  st.principals,
		Idempotency: redis.NewIdempotencyCache(kv, cfg.Redis.IdempotencyTTL),
		Metrics:     metrics.New(),
	}, logger, httpapi.Config{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Debug:           cfg.Server.Debug,
		SiteURL:         cfg.Site.URL,
		SessionSecret:   cfg.Auth.SessionSecret,
		PageSize:        cfg.Server.PageSize,
		TagLimit:        cfg.Server.TagLimit,
		PublicPerMinute: cfg.Server.PublicPerMinute,
		PublicBurst:     cfg.Server.PublicBurst,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		srv.Close()
		return err
	case <-ctx.Done():
	}

	return srv.Shutdown(context.Background())
}
