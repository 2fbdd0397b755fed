package token

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

const (
	OptionToken       = "aiktpz_token"
	OptionLegacyToken = "chatgpt_aiktp_key"

	tokenLength   = 10
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Options is the site key-value store the token lives in.
type Options interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// Store owns the pre-shared token the remote service authenticates with.
type Store struct {
	options Options
	logger  *zap.Logger
}

func NewStore(options Options, logger *zap.Logger) *Store {
	return &Store{
		options: options,
		logger:  logger.With(zap.String("component", "token")),
	}
}

// Current returns the stored token, moving a legacy value over if needed.
// It never generates; an empty string means no token is configured.
func (s *Store) Current(ctx context.Context) (string, error) {
	tok, err := s.options.Get(ctx, OptionToken)
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	if tok != "" {
		return tok, nil
	}

	legacy, err := s.options.Get(ctx, OptionLegacyToken)
	if err != nil {
		return "", fmt.Errorf("get legacy token: %w", err)
	}
	if legacy == "" {
		return "", nil
	}

	if err := s.options.Set(ctx, OptionToken, legacy); err != nil {
		return "", fmt.Errorf("store migrated token: %w", err)
	}
	if err := s.options.Delete(ctx, OptionLegacyToken); err != nil {
		return "", fmt.Errorf("delete legacy token: %w", err)
	}
	s.logger.Info("migrated legacy token")

	return legacy, nil
}

// Get returns the token, generating and persisting one on first use.
func (s *Store) Get(ctx context.Context) (string, error) {
	tok, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if tok != "" {
		return tok, nil
	}

	tok, err = Generate()
	if err != nil {
		return "", err
	}
	if err := s.options.Set(ctx, OptionToken, tok); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	s.logger.Info("generated token")

	return tok, nil
}

// Set overwrites the token.
func (s *Store) Set(ctx context.Context, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("set token: %w", domain.ErrInvalidInput)
	}
	if err := s.options.Set(ctx, OptionToken, value); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

// Regenerate replaces the token with a fresh one. Concurrent calls race and
// the last write wins.
func (s *Store) Regenerate(ctx context.Context, caller *domain.Principal) (string, error) {
	if !caller.Can(domain.CapManageOptions) {
		return "", fmt.Errorf("regenerate token: %w", domain.ErrUnauthorized)
	}

	tok, err := Generate()
	if err != nil {
		return "", err
	}
	if err := s.options.Set(ctx, OptionToken, tok); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	s.logger.Info("regenerated token", zap.Int64("principal_id", caller.ID))

	return tok, nil
}

// Verify compares candidate to the stored token after trimming both.
// A missing token on either side never matches.
func (s *Store) Verify(ctx context.Context, candidate string) bool {
	stored, err := s.Current(ctx)
	if err != nil {
		s.logger.Warn("verify token", zap.Error(err))
		return false
	}

	stored = strings.TrimSpace(stored)
	candidate = strings.TrimSpace(candidate)
	if stored == "" || candidate == "" || len(stored) != len(candidate) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Generate returns a random alphanumeric token.
func Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	b := make([]byte, tokenLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
