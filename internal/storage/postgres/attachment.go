package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"aiktp_sync/internal/domain"
)

type AttachmentStore struct {
	db *sqlx.DB
}

func NewAttachmentStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db}
}

type attachmentRow struct {
	ID        int64     `db:"id"`
	RecordID  int64     `db:"record_id"`
	FileName  string    `db:"file_name"`
	Path      string    `db:"path"`
	URL       string    `db:"url"`
	MimeType  string    `db:"mime_type"`
	AltText   string    `db:"alt_text"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Sizes     []byte    `db:"sizes"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *AttachmentStore) Insert(ctx context.Context, a *domain.Attachment) (int64, error) {
	sizes := []byte("{}")
	if len(a.Sizes) > 0 {
		b, err := json.Marshal(a.Sizes)
		if err != nil {
			return 0, fmt.Errorf("encode sizes: %w", err)
		}
		sizes = b
	}

	query := `
		INSERT INTO attachments (record_id, file_name, path, url, mime_type, alt_text, width, height, sizes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.RecordID, a.FileName, a.Path, a.URL, a.MimeType, a.AltText, a.Width, a.Height, sizes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert attachment: %w", err)
	}
	return id, nil
}

func (s *AttachmentStore) GetByID(ctx context.Context, id int64) (*domain.Attachment, error) {
	var row attachmentRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, `
		SELECT id, record_id, file_name, path, url, mime_type, alt_text, width, height, sizes, created_at
		FROM attachments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get attachment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get attachment %d: %w", id, err)
	}

	a := &domain.Attachment{
		ID:        row.ID,
		RecordID:  row.RecordID,
		FileName:  row.FileName,
		Path:      row.Path,
		URL:       row.URL,
		MimeType:  row.MimeType,
		AltText:   row.AltText,
		Width:     row.Width,
		Height:    row.Height,
		CreatedAt: row.CreatedAt,
	}
	if len(row.Sizes) > 0 {
		if err := json.Unmarshal(row.Sizes, &a.Sizes); err != nil {
			return nil, fmt.Errorf("decode sizes of attachment %d: %w", id, err)
		}
		if len(a.Sizes) == 0 {
			a.Sizes = nil
		}
	}
	return a, nil
}

func (s *AttachmentStore) SetAltText(ctx context.Context, id int64, alt string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE attachments SET alt_text = $2 WHERE id = $1", id, alt)
	if err != nil {
		return fmt.Errorf("set alt text of attachment %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("set alt text of attachment %d", id))
}
