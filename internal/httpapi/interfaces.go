package httpapi

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/gateway"
	"aiktp_sync/internal/generation"
	"aiktp_sync/internal/service"
	"aiktp_sync/internal/storage/redis"
)

type Gateway interface {
	Authorize(ctx context.Context, op, token string, need ...domain.Capability) (*gateway.Call, error)
	CreateRecord(ctx context.Context, call *gateway.Call, in gateway.CreateInput) (*gateway.CreateResult, error)
	UploadMedia(ctx context.Context, call *gateway.Call, recordID int64, imgURL string) (*gateway.UploadResult, error)
	GetByURL(ctx context.Context, rawURL string) (*gateway.RecordView, error)
	GetByID(ctx context.Context, call *gateway.Call, id int64) (*gateway.RecordView, error)
	ListAll(ctx context.Context, page, pageSize int) ([]gateway.Listing, error)
	ListByTag(ctx context.Context, query string, limit int) ([]gateway.Listing, error)
	ListCategories(ctx context.Context) ([]gateway.Category, error)
	CheckToken(ctx context.Context, candidate string) bool
	GetToken(ctx context.Context, caller *domain.Principal) (string, error)
}

type Generator interface {
	Generate(ctx context.Context, caller *domain.Principal, recordID int64, op domain.Operation) (*service.Result, error)
}

type BulkJobs interface {
	Enqueue(ctx context.Context, ids []int64, op domain.Operation) error
	Consume(ctx context.Context) ([]int64, error)
	Operation(ctx context.Context) (domain.Operation, error)
}

type Tokens interface {
	Get(ctx context.Context) (string, error)
	Regenerate(ctx context.Context, caller *domain.Principal) (string, error)
}

type Connector interface {
	Connect(ctx context.Context, apiKey, siteURL, siteToken string) (*generation.ConnectResult, error)
}

type APIKeys interface {
	APIKey(ctx context.Context) (string, error)
	SetAPIKey(ctx context.Context, key string) error
}

// Principals resolves the subject of an admin session.
type Principals interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
}

type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (*redis.CachedResponse, bool, error)
	Reserve(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Save(ctx context.Context, scope, key string, resp redis.CachedResponse) (bool, error)
}
