package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	OptionAuthor        = "aiktp_author"
	OptionCategory      = "aiktp_category"
	OptionAPIKey        = "aiktp_api_key"
	OptionContentLength = "aiktpz_content_length"
	OptionContentTone   = "aiktpz_content_tone"
	OptionLanguage      = "aiktpz_content_language"
	OptionCustomPrompt  = "aiktpz_custom_prompt"
	OptionMigrationDone = "aiktpz_migration_done"

	DefaultAuthorID   int64 = 1
	DefaultCategoryID int64 = 1
	DefaultLength           = "medium"
	DefaultTone             = "friendly"
	AutoLanguage            = "auto"
)

// legacyOptions maps the old option names to their replacements.
var legacyOptions = map[string]string{
	"wcai_content_length":   OptionContentLength,
	"wcai_content_tone":     OptionContentTone,
	"wcai_content_language": OptionLanguage,
	"wcai_custom_prompt":    OptionCustomPrompt,
}

type Options interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// TokenMigrator moves a legacy token over. token.Store satisfies it.
type TokenMigrator interface {
	Current(ctx context.Context) (string, error)
}

// ContentPrefs are the admin's generation preferences.
type ContentPrefs struct {
	Length       string
	Tone         string
	Language     string
	CustomPrompt string
}

type Store struct {
	options Options
	logger  *zap.Logger
}

func NewStore(options Options, logger *zap.Logger) *Store {
	return &Store{
		options: options,
		logger:  logger.With(zap.String("component", "settings")),
	}
}

// ActingPrincipalID returns the configured author, or the default when unset
// or unparseable.
func (s *Store) ActingPrincipalID(ctx context.Context) (int64, error) {
	v, err := s.options.Get(ctx, OptionAuthor)
	if err != nil {
		return 0, fmt.Errorf("get author: %w", err)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id <= 0 {
		return DefaultAuthorID, nil
	}
	return id, nil
}

func (s *Store) SetActingPrincipalID(ctx context.Context, id int64) error {
	if err := s.options.Set(ctx, OptionAuthor, strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("set author: %w", err)
	}
	return nil
}

// DefaultCategories returns the configured category ids, or [1] when none
// are configured.
func (s *Store) DefaultCategories(ctx context.Context) ([]int64, error) {
	v, err := s.options.Get(ctx, OptionCategory)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	ids := ParseIDs(v)
	if len(ids) == 0 {
		return []int64{DefaultCategoryID}, nil
	}
	return ids, nil
}

func (s *Store) SetDefaultCategories(ctx context.Context, ids []int64) error {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	if err := s.options.Set(ctx, OptionCategory, strings.Join(parts, ",")); err != nil {
		return fmt.Errorf("set category: %w", err)
	}
	return nil
}

func (s *Store) APIKey(ctx context.Context) (string, error) {
	v, err := s.options.Get(ctx, OptionAPIKey)
	if err != nil {
		return "", fmt.Errorf("get api key: %w", err)
	}
	return strings.TrimSpace(v), nil
}

func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	if err := s.options.Set(ctx, OptionAPIKey, strings.TrimSpace(key)); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}
	return nil
}

func (s *Store) ContentPrefs(ctx context.Context) (ContentPrefs, error) {
	var p ContentPrefs
	fields := []struct {
		name string
		dst  *string
		def  string
	}{
		{OptionContentLength, &p.Length, DefaultLength},
		{OptionContentTone, &p.Tone, DefaultTone},
		{OptionLanguage, &p.Language, AutoLanguage},
		{OptionCustomPrompt, &p.CustomPrompt, ""},
	}
	for _, f := range fields {
		v, err := s.options.Get(ctx, f.name)
		if err != nil {
			return ContentPrefs{}, fmt.Errorf("get %s: %w", f.name, err)
		}
		if v == "" {
			v = f.def
		}
		*f.dst = v
	}
	return p, nil
}

func (s *Store) SetContentPrefs(ctx context.Context, p ContentPrefs) error {
	values := map[string]string{
		OptionContentLength: p.Length,
		OptionContentTone:   p.Tone,
		OptionLanguage:      p.Language,
		OptionCustomPrompt:  p.CustomPrompt,
	}
	for name, v := range values {
		if err := s.options.Set(ctx, name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// MigrateLegacy copies values from the old option names once per site.
// A new value that is already set is never overwritten.
func (s *Store) MigrateLegacy(ctx context.Context, tokens TokenMigrator) error {
	done, err := s.options.Get(ctx, OptionMigrationDone)
	if err != nil {
		return fmt.Errorf("get migration flag: %w", err)
	}
	if done == "1" {
		return nil
	}

	if tokens != nil {
		if _, err := tokens.Current(ctx); err != nil {
			return fmt.Errorf("migrate token: %w", err)
		}
	}

	migrated := 0
	for oldName, newName := range legacyOptions {
		current, err := s.options.Get(ctx, newName)
		if err != nil {
			return fmt.Errorf("get %s: %w", newName, err)
		}
		if current != "" {
			continue
		}
		old, err := s.options.Get(ctx, oldName)
		if err != nil {
			return fmt.Errorf("get %s: %w", oldName, err)
		}
		if old == "" {
			continue
		}
		if err := s.options.Set(ctx, newName, old); err != nil {
			return fmt.Errorf("set %s: %w", newName, err)
		}
		migrated++
	}

	if err := s.options.Set(ctx, OptionMigrationDone, "1"); err != nil {
		return fmt.Errorf("set migration flag: %w", err)
	}
	s.logger.Info("legacy settings migrated", zap.Int("migrated", migrated))

	return nil
}

// ParseIDs reads a comma separated id list, skipping anything that is not a
// positive integer.
func ParseIDs(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
