package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"aiktp_sync/internal/domain"
)

// BodyFilter is applied to record bodies on write. content.FilterSwitch
// satisfies it.
type BodyFilter interface {
	Apply(ctx context.Context, body string) string
}

type RecordStore struct {
	db     *sqlx.DB
	filter BodyFilter
}

func NewRecordStore(db *sqlx.DB, filter BodyFilter) *RecordStore {
	return &RecordStore{db: db, filter: filter}
}

type recordRow struct {
	ID              int64         `db:"id"`
	Type            string        `db:"record_type"`
	Title           string        `db:"title"`
	Slug            string        `db:"slug"`
	Body            string        `db:"body"`
	Excerpt         string        `db:"excerpt"`
	Status          string        `db:"status"`
	Password        string        `db:"password"`
	AuthorID        int64         `db:"author_id"`
	FeaturedMediaID sql.NullInt64 `db:"featured_media_id"`
	GalleryIDs      pq.Int64Array `db:"gallery_ids"`
	Price           string        `db:"price"`
	SalePrice       string        `db:"sale_price"`
	SKU             string        `db:"sku"`
	StockStatus     string        `db:"stock_status"`
	StockQuantity   sql.NullInt64 `db:"stock_quantity"`
	Weight          string        `db:"weight"`
	Attributes      []byte        `db:"attributes"`
	Dimensions      []byte        `db:"dimensions"`
	CreatedAt       time.Time     `db:"created_at"`
	ModifiedAt      time.Time     `db:"modified_at"`
}

const recordColumns = `id, record_type, title, slug, body, excerpt, status, password, author_id,
	featured_media_id, gallery_ids, price, sale_price, sku, stock_status, stock_quantity,
	weight, attributes, dimensions, created_at, modified_at`

func (r recordRow) toDomain() (*domain.Record, error) {
	rec := &domain.Record{
		ID:          r.ID,
		Type:        domain.RecordType(r.Type),
		Title:       r.Title,
		Slug:        r.Slug,
		Body:        r.Body,
		Excerpt:     r.Excerpt,
		Status:      domain.Status(r.Status),
		Password:    r.Password,
		AuthorID:    r.AuthorID,
		GalleryIDs:  []int64(r.GalleryIDs),
		Price:       r.Price,
		SalePrice:   r.SalePrice,
		SKU:         r.SKU,
		StockStatus: r.StockStatus,
		Weight:      r.Weight,
		CreatedAt:   r.CreatedAt,
		ModifiedAt:  r.ModifiedAt,
	}
	if r.FeaturedMediaID.Valid {
		id := r.FeaturedMediaID.Int64
		rec.FeaturedMediaID = &id
	}
	if r.StockQuantity.Valid {
		q := int(r.StockQuantity.Int64)
		rec.StockQuantity = &q
	}
	if err := decodeStringMap(r.Attributes, &rec.Attributes); err != nil {
		return nil, fmt.Errorf("decode attributes of record %d: %w", r.ID, err)
	}
	if err := decodeStringMap(r.Dimensions, &rec.Dimensions); err != nil {
		return nil, fmt.Errorf("decode dimensions of record %d: %w", r.ID, err)
	}
	return rec, nil
}

func decodeStringMap(raw []byte, dst *map[string]string) error {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	if len(m) > 0 {
		*dst = m
	}
	return nil
}

func encodeStringMap(m map[string]string) ([]byte, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Insert stores a new record and returns its id. The body passes through the
// store's filter under ctx. A slug already used by a record of the same type
// gets a numeric suffix, and rec.Slug is updated to the stored value.
func (s *RecordStore) Insert(ctx context.Context, rec *domain.Record) (int64, error) {
	slug, err := s.uniqueSlug(ctx, rec.Type, rec.Slug)
	if err != nil {
		return 0, err
	}

	attrs, err := encodeStringMap(rec.Attributes)
	if err != nil {
		return 0, fmt.Errorf("encode attributes: %w", err)
	}
	dims, err := encodeStringMap(rec.Dimensions)
	if err != nil {
		return 0, fmt.Errorf("encode dimensions: %w", err)
	}

	query := `
		INSERT INTO records (
			record_type, title, slug, body, excerpt, status, password, author_id,
			gallery_ids, price, sale_price, sku, stock_status, stock_quantity,
			weight, attributes, dimensions, created_at, modified_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18
		)
		RETURNING id`

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	var stock sql.NullInt64
	if rec.StockQuantity != nil {
		stock = sql.NullInt64{Int64: int64(*rec.StockQuantity), Valid: true}
	}

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		rec.Type,
		rec.Title,
		slug,
		s.filter.Apply(ctx, rec.Body),
		rec.Excerpt,
		rec.Status,
		rec.Password,
		rec.AuthorID,
		pq.Array(rec.GalleryIDs),
		rec.Price,
		rec.SalePrice,
		rec.SKU,
		rec.StockStatus,
		stock,
		rec.Weight,
		attrs,
		dims,
		created,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	rec.Slug = slug
	return id, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// uniqueSlug returns base, or base-2, base-3 and so on when base is taken
// within typ. The advisory lock serialises concurrent inserts of one slug
// until the surrounding transaction ends.
func (s *RecordStore) uniqueSlug(ctx context.Context, typ domain.RecordType, base string) (string, error) {
	if base == "" {
		return "", nil
	}
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", string(typ)+":"+base); err != nil {
		return "", fmt.Errorf("lock slug %q: %w", base, err)
	}

	var used []string
	err := sqlx.SelectContext(ctx, exec, &used,
		"SELECT slug FROM records WHERE record_type = $1 AND (slug = $2 OR slug LIKE $3)",
		string(typ), base, likeEscaper.Replace(base)+"-%")
	if err != nil {
		return "", fmt.Errorf("find slugs like %q: %w", base, err)
	}

	taken := make(map[string]bool, len(used))
	for _, u := range used {
		taken[u] = true
	}
	if !taken[base] {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

// UpdateContent replaces the generated fields of a record.
func (s *RecordStore) UpdateContent(ctx context.Context, id int64, body, excerpt string) error {
	query := `UPDATE records SET body = $2, excerpt = $3, modified_at = NOW() WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, s.filter.Apply(ctx, body), s.filter.Apply(ctx, excerpt))
	if err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("update record %d", id))
}

func (s *RecordStore) SetFeaturedMedia(ctx context.Context, id, attachmentID int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE records SET featured_media_id = $2, modified_at = NOW() WHERE id = $1", id, attachmentID)
	if err != nil {
		return fmt.Errorf("set featured media of record %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("set featured media of record %d", id))
}

func (s *RecordStore) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	var row recordRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row,
		"SELECT "+recordColumns+" FROM records WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return row.toDomain()
}

// FindBySlug returns the record of typ with slug.
func (s *RecordStore) FindBySlug(ctx context.Context, typ domain.RecordType, slug string) (*domain.Record, error) {
	var row recordRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row,
		"SELECT "+recordColumns+" FROM records WHERE record_type = $1 AND slug = $2", string(typ), slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find record %q: %w", slug, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find record %q: %w", slug, err)
	}
	return row.toDomain()
}

func (s *RecordStore) List(ctx context.Context, f domain.RecordFilter) ([]domain.RecordSummary, error) {
	query := `
		SELECT id, title, slug, record_type, created_at, modified_at
		FROM records
		WHERE ($1::text = '' OR record_type = $1)
		  AND ($2::text = '' OR status = $2)
		  AND password = ''
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	var out []domain.RecordSummary
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, query,
		string(f.Type), string(f.Status), limitOrAll(f.Limit), max(f.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

// ListByTerm returns public records tagged with the given term.
func (s *RecordStore) ListByTerm(ctx context.Context, termID int64, limit int) ([]domain.RecordSummary, error) {
	query := `
		SELECT r.id, r.title, r.slug, r.record_type, r.created_at, r.modified_at
		FROM records r
		INNER JOIN record_terms rt ON rt.record_id = r.id
		WHERE rt.term_id = $1 AND r.status = $2 AND r.password = ''
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $3`

	var out []domain.RecordSummary
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, query,
		termID, string(domain.StatusPublish), limitOrAll(limit))
	if err != nil {
		return nil, fmt.Errorf("list records for term %d: %w", termID, err)
	}
	return out, nil
}

// GetMeta returns the meta value, or "" when unset.
func (s *RecordStore) GetMeta(ctx context.Context, id int64, key string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value,
		"SELECT meta_value FROM record_meta WHERE record_id = $1 AND meta_key = $2", id, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get meta %s of record %d: %w", key, id, err)
	}
	return value, nil
}

func (s *RecordStore) SetMeta(ctx context.Context, id int64, key, value string) error {
	query := `
		INSERT INTO record_meta (record_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (record_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, key, value); err != nil {
		return fmt.Errorf("set meta %s of record %d: %w", key, id, err)
	}
	return nil
}

// limitOrAll maps a non positive limit to NULL, which LIMIT treats as no limit.
func limitOrAll(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
