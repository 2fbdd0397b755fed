package domain

import "time"

// MediaAsset is a stored image file that has not been registered as an attachment yet.
type MediaAsset struct {
	SourceURL  string `json:"source_url,omitempty"`
	FileName   string `json:"file_name"`
	StoredPath string `json:"stored_path"`
	PublicURL  string `json:"public_url"`
	AltText    string `json:"alt_text,omitempty"`
	Size       int64  `json:"size"`
	Data       []byte `json:"-"`
}

type Derivative struct {
	File     string `json:"file"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mime_type"`
}

// Attachment is a media file owned by exactly one record.
type Attachment struct {
	ID        int64                 `json:"id"`
	RecordID  int64                 `json:"record_id"`
	FileName  string                `json:"file_name"`
	Path      string                `json:"path"`
	URL       string                `json:"url"`
	MimeType  string                `json:"mime_type"`
	AltText   string                `json:"alt_text"`
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Sizes     map[string]Derivative `json:"sizes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// URLForSize returns the derivative URL when present, otherwise the original.
func (a *Attachment) URLForSize(size string) string {
	if d, ok := a.Sizes[size]; ok && d.URL != "" {
		return d.URL
	}
	return a.URL
}
