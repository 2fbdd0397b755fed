package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/generation"
	"aiktp_sync/internal/settings"
)

type RecordStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	GetMeta(ctx context.Context, id int64, key string) (string, error)
	SetMeta(ctx context.Context, id int64, key, value string) error
	UpdateContent(ctx context.Context, id int64, body, excerpt string) error
}

type TermStore interface {
	ForRecord(ctx context.Context, recordID int64, taxonomy domain.Taxonomy) ([]domain.Term, error)
}

type AttachmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Attachment, error)
	SetAltText(ctx context.Context, id int64, alt string) error
}

type Preferences interface {
	ContentPrefs(ctx context.Context) (settings.ContentPrefs, error)
}

type ContentGenerator interface {
	Generate(ctx context.Context, task string, info generation.RecordInfo) (string, error)
}

type Permalinker interface {
	Permalink(rec *domain.Record) string
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
