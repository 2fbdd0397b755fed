package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"aiktp_sync/internal/config"
	"aiktp_sync/internal/content"
	"aiktp_sync/internal/media"
	"aiktp_sync/internal/publisher"
	"aiktp_sync/internal/settings"
	"aiktp_sync/internal/storage/blob"
	"aiktp_sync/internal/storage/postgres"
	"aiktp_sync/internal/token"
)

// stores is the persistence layer shared by the commands that touch the
// database.
type stores struct {
	db          *sqlx.DB
	filter      *content.FilterSwitch
	options     *postgres.OptionStore
	records     *postgres.RecordStore
	terms       *postgres.TermStore
	attachments *postgres.AttachmentStore
	principals  *postgres.PrincipalStore
	txManager   *postgres.TransactionManager
	tokens      *token.Store
	settings    *settings.Store
}

func openStores(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*stores, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database", zap.String("host", cfg.Host), zap.String("dbname", cfg.DBName))

	filter := content.NewFilterSwitch(true)
	options := postgres.NewOptionStore(db)
	s := &stores{
		db:          db,
		filter:      filter,
		options:     options,
		records:     postgres.NewRecordStore(db, filter),
		terms:       postgres.NewTermStore(db),
		attachments: postgres.NewAttachmentStore(db),
		principals:  postgres.NewPrincipalStore(db),
		txManager:   postgres.NewTransactionManager(db),
		tokens:      token.NewStore(options, logger),
		settings:    settings.NewStore(options, logger),
	}

	if err := s.settings.MigrateLegacy(ctx, s.tokens); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate legacy settings: %w", err)
	}
	return s, nil
}

func (s *stores) Close() error {
	return s.db.Close()
}

type eventPublisher interface {
	media.EventPublisher
	Close() error
}

// newPublisher connects to RabbitMQ, or drops events when no broker is configured.
func newPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (eventPublisher, error) {
	if cfg.URL == "" {
		logger.Info("rabbitmq not configured, record events are dropped")
		return publisher.Nop{}, nil
	}
	p, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		QueueName:  cfg.QueueName,
		BindingKey: cfg.BindingKey,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return p, nil
}

func newBlobStore(ctx context.Context, cfg config.MediaConfig) (media.BlobStore, error) {
	switch cfg.Backend {
	case config.BlobBackendS3:
		s3cfg := blob.S3Config{
			Bucket:        cfg.S3.Bucket,
			Region:        cfg.S3.Region,
			Endpoint:      cfg.S3.Endpoint,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			Prefix:        cfg.S3.Prefix,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		}
		client, err := blob.NewS3Client(ctx, s3cfg)
		if err != nil {
			return nil, fmt.Errorf("create s3 client: %w", err)
		}
		return blob.NewS3(client, s3cfg), nil
	default:
		local, err := blob.NewLocal(cfg.LocalRoot, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("open upload directory: %w", err)
		}
		return local, nil
	}
}
