package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultIdempotencyTTL = 24 * time.Hour
	// DefaultReservationTTL bounds how long a crashed request can hold a key.
	DefaultReservationTTL = 5 * time.Minute
)

// CachedResponse is the first response produced for an idempotency key.
type CachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type IdempotencyCache struct {
	kv         *Store
	ttl        time.Duration
	reserveTTL time.Duration
}

func NewIdempotencyCache(kv *Store, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyCache{kv: kv, ttl: ttl, reserveTTL: DefaultReservationTTL}
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func idempotencyKey(scope, key string) string {
	return "idem:" + scope + ":" + hashKey(key)
}

func reservationKey(scope, key string) string {
	return "idem-lock:" + scope + ":" + hashKey(key)
}

// Reserve marks key as in flight under scope. It reports false while another
// caller holds the reservation.
func (c *IdempotencyCache) Reserve(ctx context.Context, scope, key string) (bool, error) {
	return c.kv.SetNX(ctx, reservationKey(scope, key), []byte("1"), c.reserveTTL)
}

// Release drops the in-flight marker for key.
func (c *IdempotencyCache) Release(ctx context.Context, scope, key string) error {
	return c.kv.Delete(ctx, reservationKey(scope, key))
}

// Lookup returns the response stored for key under scope, if any.
func (c *IdempotencyCache) Lookup(ctx context.Context, scope, key string) (*CachedResponse, bool, error) {
	raw, ok, err := c.kv.Get(ctx, idempotencyKey(scope, key))
	if err != nil || !ok {
		return nil, false, err
	}
	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false, fmt.Errorf("decode cached response: %w", err)
	}
	return &resp, true, nil
}

// Save keeps the first response for key. Later saves for the same key are
// ignored and report false.
func (c *IdempotencyCache) Save(ctx context.Context, scope, key string, resp CachedResponse) (bool, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return false, fmt.Errorf("encode cached response: %w", err)
	}
	return c.kv.SetNX(ctx, idempotencyKey(scope, key), raw, c.ttl)
}
