package bulk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aiktp_sync/internal/domain"
)

const (
	keyRecords   = "bulk:products"
	keyOperation = "bulk:type"

	DefaultQueueTTL = 5 * time.Minute
)

// KV is a key/value store with expiring entries.
type KV interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Take(ctx context.Context, key string) ([]byte, bool, error)
}

// Jobs keeps the record ids an admin selected until the progress page picks
// them up.
type Jobs struct {
	kv  KV
	ttl time.Duration
}

func NewJobs(kv KV, ttl time.Duration) *Jobs {
	if ttl <= 0 {
		ttl = DefaultQueueTTL
	}
	return &Jobs{kv: kv, ttl: ttl}
}

func (j *Jobs) Enqueue(ctx context.Context, ids []int64, op domain.Operation) error {
	if len(ids) == 0 {
		return fmt.Errorf("enqueue bulk job: %w", domain.ErrInvalidInput)
	}
	if !op.Valid() {
		op = domain.OperationDescription
	}

	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode record ids: %w", err)
	}
	if err := j.kv.Set(ctx, keyRecords, b, j.ttl); err != nil {
		return fmt.Errorf("store record ids: %w", err)
	}
	if err := j.kv.Set(ctx, keyOperation, []byte(op), j.ttl); err != nil {
		return fmt.Errorf("store operation: %w", err)
	}
	return nil
}

// Consume hands out the queued ids once. ErrNotFound means nothing is queued,
// either because it expired or because it was already consumed.
func (j *Jobs) Consume(ctx context.Context) ([]int64, error) {
	b, ok, err := j.kv.Take(ctx, keyRecords)
	if err != nil {
		return nil, fmt.Errorf("take record ids: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("consume bulk job: %w", domain.ErrNotFound)
	}

	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, fmt.Errorf("decode record ids: %w", err)
	}
	return ids, nil
}

// Operation returns the queued operation, description when unset.
func (j *Jobs) Operation(ctx context.Context) (domain.Operation, error) {
	b, ok, err := j.kv.Get(ctx, keyOperation)
	if err != nil {
		return "", fmt.Errorf("get operation: %w", err)
	}
	op := domain.Operation(b)
	if !ok || !op.Valid() {
		return domain.OperationDescription, nil
	}
	return op, nil
}
