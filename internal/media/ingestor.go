package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"aiktp_sync/internal/content"
	"aiktp_sync/internal/domain"
)

const (
	defaultExtension = "jpg"
	inlineExtension  = "webp"
)

// imageExtensions are the extensions accepted from a remote URL as is.
var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "jpe": true, "png": true, "gif": true, "bmp": true,
	"tif": true, "tiff": true, "webp": true, "ico": true, "heic": true, "avif": true,
}

type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Size(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type AttachmentStore interface {
	Insert(ctx context.Context, a *domain.Attachment) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type Config struct {
	Timeout      time.Duration
	MaxRedirects int
	MinSize      int64
	MaxSize      int64
	UserAgent    string
}

type Ingestor struct {
	httpClient  *http.Client
	blobs       BlobStore
	attachments AttachmentStore
	publisher   EventPublisher
	logger      *zap.Logger
	cfg         Config
	now         func() time.Time
	suffix      func() string
}

func NewIngestor(
	blobs BlobStore,
	attachments AttachmentStore,
	publisher EventPublisher,
	logger *zap.Logger,
	cfg Config,
) *Ingestor {
	maxRedirects := cfg.MaxRedirects
	return &Ingestor{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		blobs:       blobs,
		attachments: attachments,
		publisher:   publisher,
		logger:      logger.With(zap.String("component", "media")),
		cfg:         cfg,
		now:         time.Now,
		suffix:      uniqueSuffix,
	}
}

// FetchRemote downloads rawURL and stores it under a name derived from seed.
// Any transport problem is reported as domain.ErrNetwork so callers can
// carry on without the image.
func (i *Ingestor) FetchRemote(ctx context.Context, rawURL, seed string) (*domain.MediaAsset, error) {
	data, err := i.download(ctx, rawURL)
	if err != nil {
		i.logger.Warn("remote image download failed", zap.String("url", rawURL), zap.Error(err))
		return nil, fmt.Errorf("download %s: %w", rawURL, domain.ErrNetwork)
	}

	name := i.fileName(seed, extensionFromURL(rawURL))
	asset, err := i.store(ctx, name, data)
	if err != nil {
		return nil, err
	}
	asset.SourceURL = rawURL

	size, err := i.blobs.Size(ctx, asset.StoredPath)
	if err != nil || size <= i.cfg.MinSize {
		_ = i.blobs.Delete(ctx, asset.StoredPath)
		i.logger.Warn("stored image below minimum size",
			zap.String("url", rawURL),
			zap.Int64("size", size),
			zap.Int64("min_size", i.cfg.MinSize),
		)
		return nil, fmt.Errorf("verify %s: %w", name, domain.ErrNetwork)
	}

	i.logger.Info("remote image stored",
		zap.String("file", name),
		zap.String("size", humanize.Bytes(uint64(size))),
	)
	return asset, nil
}

// FromInline stores a data URI style payload. Everything up to the first
// comma is ignored.
func (i *Ingestor) FromInline(ctx context.Context, payload, seed string) (*domain.MediaAsset, error) {
	comma := strings.IndexByte(payload, ',')
	if comma < 0 {
		return nil, fmt.Errorf("inline image has no data section: %w", domain.ErrInvalidInput)
	}

	data, err := decodeBase64(strings.TrimSpace(payload[comma+1:]))
	if err != nil {
		return nil, fmt.Errorf("decode inline image: %w", domain.ErrInvalidInput)
	}

	asset, err := i.store(ctx, i.fileName(seed, inlineExtension), data)
	if err != nil {
		return nil, err
	}
	i.logger.Info("inline image stored",
		zap.String("file", asset.FileName),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return asset, nil
}

// Attach registers asset as an attachment of recordID.
func (i *Ingestor) Attach(ctx context.Context, asset *domain.MediaAsset, recordID int64) (*domain.Attachment, error) {
	if asset == nil {
		return nil, fmt.Errorf("attach: %w", domain.ErrInvalidInput)
	}

	att := &domain.Attachment{
		RecordID:  recordID,
		FileName:  content.SanitizeFileName(asset.FileName),
		Path:      asset.StoredPath,
		URL:       asset.PublicURL,
		MimeType:  DetectMimeType(asset.Data, asset.FileName),
		AltText:   asset.AltText,
		CreatedAt: i.now().UTC(),
	}

	if len(asset.Data) > 0 {
		meta, err := i.derive(ctx, asset)
		if err != nil {
			i.logger.Debug("no derivatives", zap.String("file", asset.FileName), zap.Error(err))
		} else {
			att.Width, att.Height, att.Sizes = meta.width, meta.height, meta.sizes
		}
	}

	id, err := i.attachments.Insert(ctx, att)
	if err != nil {
		return nil, fmt.Errorf("insert attachment: %w", err)
	}
	att.ID = id

	if i.publisher != nil {
		event := domain.Event{
			Type:         domain.EventMediaAttached,
			RecordID:     recordID,
			AttachmentID: id,
			Timestamp:    i.now().UTC(),
		}
		if err := i.publisher.Publish(ctx, event); err != nil {
			i.logger.Warn("publish media event", zap.Int64("attachment_id", id), zap.Error(err))
		}
	}

	return att, nil
}

func (i *Ingestor) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if i.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", i.cfg.UserAgent)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if i.cfg.MaxSize > 0 {
		body = io.LimitReader(resp.Body, i.cfg.MaxSize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty body")
	}
	if i.cfg.MaxSize > 0 && int64(len(data)) > i.cfg.MaxSize {
		return nil, fmt.Errorf("body exceeds %s", humanize.Bytes(uint64(i.cfg.MaxSize)))
	}
	return data, nil
}

func (i *Ingestor) store(ctx context.Context, name string, data []byte) (*domain.MediaAsset, error) {
	key := i.now().UTC().Format("2006/01") + "/" + name
	if _, err := i.blobs.Put(ctx, key, data, DetectMimeType(data, name)); err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}
	return &domain.MediaAsset{
		FileName:   name,
		StoredPath: key,
		PublicURL:  i.blobs.URL(key),
		Size:       int64(len(data)),
		Data:       data,
	}, nil
}

func (i *Ingestor) fileName(seed, ext string) string {
	base := content.Slugify(seed)
	if base == "" {
		base = "image"
	}
	return base + "-" + i.suffix() + "." + ext
}

func extensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultExtension
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	if !imageExtensions[ext] {
		return defaultExtension
	}
	return ext
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
