package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"aiktp_sync/internal/content"
	"aiktp_sync/internal/domain"
)

// RecordView is a record as returned by read operations.
type RecordView struct {
	Record    *domain.Record
	Permalink string
	Thumbnail string
	Tags      []string
	Images    []string
}

// Listing is one entry of a list operation.
type Listing struct {
	domain.RecordSummary
	Permalink string
}

type Category struct {
	ID   int64
	Name string
}

const productCategorySuffix = " (Woo)"

// GetByURL resolves a public permalink back to its record. Records that are
// missing, unpublished or password protected are all reported the same way.
func (g *Gateway) GetByURL(ctx context.Context, rawURL string) (view *RecordView, err error) {
	call := g.begin("getPostByURL")
	defer func() { call.finish(err) }()

	rec, err := g.resolveURL(ctx, strings.TrimSpace(rawURL))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notPublic()
		}
		return nil, err
	}
	if !rec.IsPublic() {
		return nil, notPublic()
	}

	return &RecordView{
		Record:    rec,
		Permalink: g.Permalink(rec),
		Thumbnail: g.thumbnail(ctx, rec),
	}, nil
}

func notPublic() error {
	return fmt.Errorf("%s: %w", domain.NotPublicMessage, domain.ErrNotFound)
}

func (g *Gateway) resolveURL(ctx context.Context, rawURL string) (*domain.Record, error) {
	if rawURL == "" {
		return nil, domain.ErrNotFound
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	q := u.Query()
	for _, key := range []string{"p", "page_id", "post"} {
		if v := q.Get(key); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				return nil, domain.ErrNotFound
			}
			return g.records.GetByID(ctx, id)
		}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	slug := segments[len(segments)-1]
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}
	typ := domain.RecordTypePost
	if len(segments) > 1 && segments[len(segments)-2] == "product" {
		typ = domain.RecordTypeProduct
	}
	return g.records.FindBySlug(ctx, typ, slug)
}

// ListAll pages through published posts. Pages start at 1.
func (g *Gateway) ListAll(ctx context.Context, page, pageSize int) (out []Listing, err error) {
	call := g.begin("getAllPosts")
	defer func() { call.finish(err) }()

	if pageSize <= 0 {
		pageSize = g.cfg.PageSize
	}
	if page <= 0 {
		page = 1
	}

	summaries, err := g.records.List(ctx, domain.RecordFilter{
		Type:   domain.RecordTypePost,
		Status: domain.StatusPublish,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, err
	}
	return g.listings(summaries), nil
}

// ListByTag returns published records carrying the tag whose slug matches
// query.
func (g *Gateway) ListByTag(ctx context.Context, query string, limit int) (out []Listing, err error) {
	call := g.begin("getPostByTags")
	defer func() { call.finish(err) }()

	if limit <= 0 {
		limit = g.cfg.TagLimit
	}

	slug := content.TermSlug(query)
	if slug == "" {
		return []Listing{}, nil
	}

	term, err := g.terms.GetBySlug(ctx, domain.TaxonomyTag, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return []Listing{}, nil
	}
	if err != nil {
		return nil, err
	}

	summaries, err := g.records.ListByTerm(ctx, term.ID, limit)
	if err != nil {
		return nil, err
	}
	return g.listings(summaries), nil
}

func (g *Gateway) listings(summaries []domain.RecordSummary) []Listing {
	out := make([]Listing, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, Listing{
			RecordSummary: s,
			Permalink:     g.permalink(s.ID, domain.RecordType(s.Type), s.Slug),
		})
	}
	return out
}

// ListCategories returns post categories followed by product categories.
func (g *Gateway) ListCategories(ctx context.Context) (out []Category, err error) {
	call := g.begin("getCategories")
	defer func() { call.finish(err) }()

	cats, err := g.terms.List(ctx, domain.TaxonomyCategory)
	if err != nil {
		return nil, err
	}
	products, err := g.terms.List(ctx, domain.TaxonomyProductCategory)
	if err != nil {
		return nil, err
	}

	out = make([]Category, 0, len(cats)+len(products))
	for _, c := range cats {
		out = append(out, Category{ID: c.ID, Name: c.Name})
	}
	for _, c := range products {
		out = append(out, Category{ID: c.ID, Name: c.Name + productCategorySuffix})
	}
	return out, nil
}

// GetByID returns any record, whatever its status. The caller must have
// passed Authorize.
func (g *Gateway) GetByID(ctx context.Context, call *Call, id int64) (view *RecordView, err error) {
	call.advance(StateDispatched)
	defer func() { call.finish(err) }()

	rec, err := g.records.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", MsgRecordNotFound, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	tags, err := g.terms.ForRecord(ctx, id, domain.TaxonomyTag)
	if err != nil {
		return nil, err
	}
	rec.Tags = tags

	return &RecordView{
		Record:    rec,
		Permalink: g.Permalink(rec),
		Thumbnail: g.thumbnail(ctx, rec),
		Tags:      rec.TagNames(),
		Images:    content.ExtractImages(rec.Body),
	}, nil
}

func (g *Gateway) begin(op string) *Call {
	call := newCall(op, g.logger)
	call.advance(StateDispatched)
	return call
}
