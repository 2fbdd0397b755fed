package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"

	"aiktp_sync/internal/domain"
)

// Size names match what themes ask for.
const (
	SizeThumbnail = "thumbnail"
	SizeMedium    = "medium"
	SizeLarge     = "large"
)

type sizeSpec struct {
	name   string
	width  int
	height int
	crop   bool
}

var sizeSpecs = []sizeSpec{
	{name: SizeThumbnail, width: 150, height: 150, crop: true},
	{name: SizeMedium, width: 300, height: 300},
	{name: SizeLarge, width: 1024, height: 1024},
}

type imageMeta struct {
	width  int
	height int
	sizes  map[string]domain.Derivative
}

// derive decodes the original and writes each size that is smaller than it.
func (i *Ingestor) derive(ctx context.Context, asset *domain.MediaAsset) (*imageMeta, error) {
	img, _, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	meta := &imageMeta{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		sizes:  make(map[string]domain.Derivative),
	}

	format, ext := derivativeFormat(asset.FileName)
	dir := path.Dir(asset.StoredPath)
	base := strings.TrimSuffix(path.Base(asset.StoredPath), path.Ext(asset.StoredPath))

	for _, spec := range sizeSpecs {
		if meta.width <= spec.width && meta.height <= spec.height {
			continue
		}

		var resized image.Image
		if spec.crop {
			resized = imaging.Fill(img, spec.width, spec.height, imaging.Center, imaging.Lanczos)
		} else {
			resized = imaging.Fit(img, spec.width, spec.height, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, format); err != nil {
			return nil, fmt.Errorf("encode %s: %w", spec.name, err)
		}

		rb := resized.Bounds()
		file := fmt.Sprintf("%s-%dx%d.%s", base, rb.Dx(), rb.Dy(), ext)
		key := path.Join(dir, file)
		mimeType := mimetype.Detect(buf.Bytes()).String()
		if _, err := i.blobs.Put(ctx, key, buf.Bytes(), mimeType); err != nil {
			return nil, fmt.Errorf("store %s: %w", spec.name, err)
		}

		meta.sizes[spec.name] = domain.Derivative{
			File:     file,
			URL:      i.blobs.URL(key),
			Width:    rb.Dx(),
			Height:   rb.Dy(),
			MimeType: mimeType,
		}
	}

	return meta, nil
}

// derivativeFormat keeps the source format when imaging can write it and
// falls back to JPEG otherwise.
func derivativeFormat(fileName string) (imaging.Format, string) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if f, err := imaging.FormatFromExtension(ext); err == nil {
		return f, ext
	}
	return imaging.JPEG, "jpg"
}

// DetectMimeType sniffs data, falling back to the file extension when there
// is nothing to sniff.
func DetectMimeType(data []byte, fileName string) string {
	if len(data) > 0 {
		return mimetype.Detect(data).String()
	}
	if m := mime.TypeByExtension(path.Ext(fileName)); m != "" {
		return m
	}
	return "application/octet-stream"
}
