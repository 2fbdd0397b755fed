package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"aiktp_sync/internal/domain"
)

type PrincipalStore struct {
	db *sqlx.DB
}

func NewPrincipalStore(db *sqlx.DB) *PrincipalStore {
	return &PrincipalStore{db: db}
}

func (s *PrincipalStore) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	var p domain.Principal
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p,
		"SELECT id, login, role FROM principals WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get principal %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get principal %d: %w", id, err)
	}
	if err := s.loadCapabilities(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FirstAdministrator returns the administrator with the lowest id.
func (s *PrincipalStore) FirstAdministrator(ctx context.Context) (*domain.Principal, error) {
	var p domain.Principal
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p,
		"SELECT id, login, role FROM principals WHERE role = $1 ORDER BY id ASC LIMIT 1",
		domain.RoleAdministrator)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find administrator: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	if err := s.loadCapabilities(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PrincipalStore) loadCapabilities(ctx context.Context, p *domain.Principal) error {
	var caps []domain.Capability
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &caps,
		"SELECT capability FROM principal_capabilities WHERE principal_id = $1 ORDER BY capability", p.ID)
	if err != nil {
		return fmt.Errorf("load capabilities for %d: %w", p.ID, err)
	}
	p.Capabilities = caps
	return nil
}
