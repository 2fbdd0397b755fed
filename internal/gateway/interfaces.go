package gateway

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"aiktp_sync/internal/domain"
)

type TokenStore interface {
	Current(ctx context.Context) (string, error)
	Get(ctx context.Context) (string, error)
	Verify(ctx context.Context, candidate string) bool
}

type Settings interface {
	ActingPrincipalID(ctx context.Context) (int64, error)
	SetActingPrincipalID(ctx context.Context, id int64) error
	DefaultCategories(ctx context.Context) ([]int64, error)
}

type PrincipalStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
	FirstAdministrator(ctx context.Context) (*domain.Principal, error)
}

type RecordStore interface {
	Insert(ctx context.Context, rec *domain.Record) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	FindBySlug(ctx context.Context, typ domain.RecordType, slug string) (*domain.Record, error)
	SetFeaturedMedia(ctx context.Context, id, attachmentID int64) error
	SetMeta(ctx context.Context, id int64, key, value string) error
	List(ctx context.Context, f domain.RecordFilter) ([]domain.RecordSummary, error)
	ListByTerm(ctx context.Context, termID int64, limit int) ([]domain.RecordSummary, error)
}

type TermStore interface {
	FindByIDs(ctx context.Context, taxonomy domain.Taxonomy, ids []int64) ([]domain.Term, error)
	GetBySlug(ctx context.Context, taxonomy domain.Taxonomy, slug string) (*domain.Term, error)
	List(ctx context.Context, taxonomy domain.Taxonomy) ([]domain.Term, error)
	Ensure(ctx context.Context, terms []domain.Term) ([]domain.Term, error)
	Attach(ctx context.Context, recordID int64, termIDs []int64) error
	ForRecord(ctx context.Context, recordID int64, taxonomy domain.Taxonomy) ([]domain.Term, error)
}

type AttachmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Attachment, error)
}

type MediaIngestor interface {
	FetchRemote(ctx context.Context, rawURL, seed string) (*domain.MediaAsset, error)
	FromInline(ctx context.Context, payload, seed string) (*domain.MediaAsset, error)
	Attach(ctx context.Context, asset *domain.MediaAsset, recordID int64) (*domain.Attachment, error)
}

// MarkupFilter is the write filter that record inserts run through.
type MarkupFilter interface {
	Suspend(ctx context.Context) context.Context
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
