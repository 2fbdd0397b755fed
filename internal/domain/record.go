package domain

import "time"

type RecordType string

const (
	RecordTypePost    RecordType = "post"
	RecordTypeProduct RecordType = "product"
)

type Status string

const (
	StatusPublish Status = "publish"
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPrivate Status = "private"
	StatusFuture  Status = "future"
)

type Taxonomy string

const (
	TaxonomyCategory        Taxonomy = "category"
	TaxonomyProductCategory Taxonomy = "product_cat"
	TaxonomyTag             Taxonomy = "post_tag"
	TaxonomyProductTag      Taxonomy = "product_tag"
)

// Record is an article or product stored on the site.
type Record struct {
	ID              int64             `json:"id"`
	Type            RecordType        `json:"type"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Body            string            `json:"body"`
	Excerpt         string            `json:"excerpt,omitempty"` // short description for products
	Status          Status            `json:"status"`
	Password        string            `json:"-"`
	AuthorID        int64             `json:"author_id"`
	FeaturedMediaID *int64            `json:"featured_media_id,omitempty"`
	GalleryIDs      []int64           `json:"gallery_ids,omitempty"`
	Price           string            `json:"price,omitempty"`
	SalePrice       string            `json:"sale_price,omitempty"`
	SKU             string            `json:"sku,omitempty"`
	StockStatus     string            `json:"stock_status,omitempty"`
	StockQuantity   *int              `json:"stock_quantity,omitempty"`
	Weight          string            `json:"weight,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	Dimensions      map[string]string `json:"dimensions,omitempty"`
	Tags            []Term            `json:"tags,omitempty"`
	Categories      []Term            `json:"categories,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	ModifiedAt      time.Time         `json:"modified_at"`
}

// IsPublic reports whether the record may be shown to unauthenticated callers.
func (r *Record) IsPublic() bool {
	return r.Status == StatusPublish && r.Password == ""
}

// HasFeaturedMedia reports whether a featured attachment is set.
func (r *Record) HasFeaturedMedia() bool {
	return r.FeaturedMediaID != nil && *r.FeaturedMediaID > 0
}

// TagNames returns the tag labels in stored order.
func (r *Record) TagNames() []string {
	names := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		names = append(names, t.Name)
	}
	return names
}

type Term struct {
	ID       int64    `db:"id" json:"id"`
	Taxonomy Taxonomy `db:"taxonomy" json:"taxonomy"`
	Name     string   `db:"name" json:"name"`
	Slug     string   `db:"slug" json:"slug"`
}

// RecordSummary is the listing shape returned by public list operations.
type RecordSummary struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Slug       string    `db:"slug"`
	Type       string    `db:"record_type"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// Record meta keys understood by SEO plugins.
const (
	MetaRankMathKeyword = "rank_math_focus_keyword"
	MetaYoastKeyword    = "_yoast_wpseo_focuskw"
)

// RecordFilter narrows a listing. Zero values mean no constraint.
type RecordFilter struct {
	Type   RecordType
	Status Status
	Limit  int
	Offset int
}
