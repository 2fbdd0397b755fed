package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"aiktp_sync/internal/domain"
)

type TermStore struct {
	db *sqlx.DB
}

func NewTermStore(db *sqlx.DB) *TermStore {
	return &TermStore{db: db}
}

// FindByIDs returns the terms of taxonomy among ids, in id order.
func (s *TermStore) FindByIDs(ctx context.Context, taxonomy domain.Taxonomy, ids []int64) ([]domain.Term, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, taxonomy, name, slug FROM terms WHERE taxonomy = $1 AND id = ANY($2) ORDER BY id`

	var terms []domain.Term
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &terms, query, taxonomy, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find %s terms: %w", taxonomy, err)
	}
	return terms, nil
}

func (s *TermStore) GetBySlug(ctx context.Context, taxonomy domain.Taxonomy, slug string) (*domain.Term, error) {
	var t domain.Term
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &t,
		"SELECT id, taxonomy, name, slug FROM terms WHERE taxonomy = $1 AND slug = $2", taxonomy, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s term %q: %w", taxonomy, slug, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s term %q: %w", taxonomy, slug, err)
	}
	return &t, nil
}

func (s *TermStore) List(ctx context.Context, taxonomy domain.Taxonomy) ([]domain.Term, error) {
	var terms []domain.Term
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &terms,
		"SELECT id, taxonomy, name, slug FROM terms WHERE taxonomy = $1 ORDER BY name, id", taxonomy)
	if err != nil {
		return nil, fmt.Errorf("list %s terms: %w", taxonomy, err)
	}
	return terms, nil
}

// Ensure creates the missing terms by slug and returns all of them with ids
// set, in input order.
func (s *TermStore) Ensure(ctx context.Context, terms []domain.Term) ([]domain.Term, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO terms (taxonomy, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (taxonomy, slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id`

	exec := GetExecutor(ctx, s.db)
	out := make([]domain.Term, 0, len(terms))
	for _, t := range terms {
		if err := exec.QueryRowxContext(ctx, query, t.Taxonomy, t.Name, t.Slug).Scan(&t.ID); err != nil {
			return nil, fmt.Errorf("ensure term %q: %w", t.Slug, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Attach links the terms to a record, keeping the given order.
func (s *TermStore) Attach(ctx context.Context, recordID int64, termIDs []int64) error {
	if len(termIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO record_terms (record_id, term_id, position) VALUES ")
	valueArgs := make([]any, 0, len(termIDs)*2+1)
	valueArgs = append(valueArgs, recordID)

	for i, termID := range termIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, termID, i)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return fmt.Errorf("attach terms to record %d: %w", recordID, err)
	}
	return nil
}

// ForRecord returns the record's terms of taxonomy in attach order.
func (s *TermStore) ForRecord(ctx context.Context, recordID int64, taxonomy domain.Taxonomy) ([]domain.Term, error) {
	query := `
		SELECT t.id, t.taxonomy, t.name, t.slug
		FROM terms t
		INNER JOIN record_terms rt ON rt.term_id = t.id
		WHERE rt.record_id = $1 AND t.taxonomy = $2
		ORDER BY rt.position, t.id`

	var terms []domain.Term
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &terms, query, recordID, taxonomy); err != nil {
		return nil, fmt.Errorf("get %s terms for record %d: %w", taxonomy, recordID, err)
	}
	return terms, nil
}
