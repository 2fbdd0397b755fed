package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// OptionStore is the site key/value table.
type OptionStore struct {
	db *sqlx.DB
}

func NewOptionStore(db *sqlx.DB) *OptionStore {
	return &OptionStore{db: db}
}

// Get returns the stored value, or "" when the option is unset.
func (s *OptionStore) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value,
		"SELECT value FROM options WHERE name = $1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get option %s: %w", name, err)
	}
	return value, nil
}

func (s *OptionStore) Set(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO options (name, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("set option %s: %w", name, err)
	}
	return nil
}

func (s *OptionStore) Delete(ctx context.Context, name string) error {
	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM options WHERE name = $1", name); err != nil {
		return fmt.Errorf("delete option %s: %w", name, err)
	}
	return nil
}
