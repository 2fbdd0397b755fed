package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aiktp_sync/internal/content"
	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/settings"
)

type CreateInput struct {
	Title         string
	Content       string
	Tags          string
	FeaturedImage string
	CategoryIDs   string
	Status        string
}

type CreateResult struct {
	RecordID   int64
	RecordType domain.RecordType
	Permalink  string
	Thumbnail  string
}

type UploadResult struct {
	RecordID int64
	ImageURL string
	BaseURL  string
}

var knownStatuses = map[domain.Status]bool{
	domain.StatusPublish: true,
	domain.StatusDraft:   true,
	domain.StatusPending: true,
	domain.StatusPrivate: true,
	domain.StatusFuture:  true,
}

// CreateRecord stores a pushed article. Category ids that exist as product
// categories turn it into a product.
func (g *Gateway) CreateRecord(ctx context.Context, call *Call, in CreateInput) (res *CreateResult, err error) {
	call.advance(StateDispatched)
	defer func() { call.finish(err) }()

	status := domain.Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.StatusPublish
	}
	if !knownStatuses[status] {
		return nil, fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}

	if call.Principal == nil {
		return nil, forbidden(MsgCannotPublish)
	}

	title := content.SanitizeText(in.Title)
	slug := content.Slugify(title)
	tags := content.SanitizeList(in.Tags)
	body := in.Content

	authorID := call.Principal.ID

	recType, categories, err := g.routeCategories(ctx, in.CategoryIDs)
	if err != nil {
		return nil, err
	}

	featured, body := g.ingestFeatured(ctx, in.FeaturedImage, slug, body)

	rec := &domain.Record{
		Type:       recType,
		Title:      title,
		Slug:       slug,
		Body:       body,
		Status:     status,
		AuthorID:   authorID,
		CreatedAt:  g.now().UTC(),
		Categories: categories,
	}

	err = g.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		id, err := g.records.Insert(g.filter.Suspend(ctx), rec)
		if err != nil {
			return err
		}
		rec.ID = id

		termIDs := make([]int64, 0, len(categories)+len(tags))
		for _, c := range categories {
			termIDs = append(termIDs, c.ID)
		}

		var keywords []string
		if len(tags) > 0 {
			wanted := make([]domain.Term, 0, len(tags))
			for _, t := range tags {
				wanted = append(wanted, domain.Term{Taxonomy: domain.TaxonomyTag, Name: t, Slug: content.TermSlug(t)})
			}
			wanted = dedupeTerms(wanted)
			for _, t := range wanted {
				keywords = append(keywords, t.Name)
			}
			ensured, err := g.terms.Ensure(ctx, wanted)
			if err != nil {
				return err
			}
			rec.Tags = ensured
			for _, t := range ensured {
				termIDs = append(termIDs, t.ID)
			}
		}

		if err := g.terms.Attach(ctx, id, termIDs); err != nil {
			return err
		}
		return g.writeSEOMeta(ctx, id, keywords)
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	res = &CreateResult{
		RecordID:   rec.ID,
		RecordType: rec.Type,
		Permalink:  g.Permalink(rec),
	}

	if featured != nil {
		featured.AltText = title
		att, err := g.media.Attach(ctx, featured, rec.ID)
		if err != nil {
			g.logger.Warn("attach featured image", zap.Int64("record_id", rec.ID), zap.Error(err))
		} else if err := g.records.SetFeaturedMedia(ctx, rec.ID, att.ID); err != nil {
			g.logger.Warn("set featured image", zap.Int64("record_id", rec.ID), zap.Error(err))
		} else {
			res.Thumbnail = att.URLForSize("large")
		}
	}

	g.logger.Info("record created",
		zap.Int64("record_id", rec.ID),
		zap.String("type", string(rec.Type)),
		zap.String("status", string(rec.Status)),
		zap.Int("tags", len(tags)),
		zap.Int("categories", len(categories)),
	)

	g.publish(ctx, domain.Event{
		Type:       domain.EventRecordCreated,
		RecordID:   rec.ID,
		RecordType: rec.Type,
		Permalink:  res.Permalink,
	})

	return res, nil
}

// routeCategories decides the record type from the requested category ids.
// Only categories of the chosen type are returned.
func (g *Gateway) routeCategories(ctx context.Context, raw string) (domain.RecordType, []domain.Term, error) {
	ids := settings.ParseIDs(raw)
	if len(ids) == 0 {
		defaults, err := g.settings.DefaultCategories(ctx)
		if err != nil {
			return "", nil, err
		}
		ids = defaults
	}

	products, err := g.terms.FindByIDs(ctx, domain.TaxonomyProductCategory, ids)
	if err != nil {
		return "", nil, err
	}
	if len(products) > 0 {
		return domain.RecordTypeProduct, products, nil
	}

	cats, err := g.terms.FindByIDs(ctx, domain.TaxonomyCategory, ids)
	if err != nil {
		return "", nil, err
	}
	return domain.RecordTypePost, cats, nil
}

// ingestFeatured stores the featured image ahead of the insert. A remote
// image that was stored replaces its source URL in body.
func (g *Gateway) ingestFeatured(ctx context.Context, src, seed, body string) (*domain.MediaAsset, string) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, body
	}

	if strings.Contains(src, ";base64,") {
		asset, err := g.media.FromInline(ctx, src, seed)
		if err != nil {
			g.logger.Warn("inline featured image rejected", zap.Error(err))
			return nil, body
		}
		return asset, body
	}

	asset, err := g.media.FetchRemote(ctx, src, seed)
	if err != nil {
		if !errors.Is(err, domain.ErrNetwork) {
			g.logger.Warn("featured image not stored", zap.String("url", src), zap.Error(err))
		}
		return nil, body
	}
	if asset.PublicURL != "" {
		body = content.ReplaceAll(body, src, asset.PublicURL)
	}
	return asset, body
}

func (g *Gateway) writeSEOMeta(ctx context.Context, id int64, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	if g.seoEnabled(SEORankMath) {
		if err := g.records.SetMeta(ctx, id, domain.MetaRankMathKeyword, strings.Join(tags, ", ")); err != nil {
			return err
		}
	}
	if g.seoEnabled(SEOYoast) {
		if err := g.records.SetMeta(ctx, id, domain.MetaYoastKeyword, tags[0]); err != nil {
			return err
		}
	}
	return nil
}

func dedupeTerms(terms []domain.Term) []domain.Term {
	seen := make(map[string]bool, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if t.Slug == "" || seen[t.Slug] {
			continue
		}
		seen[t.Slug] = true
		out = append(out, t)
	}
	return out
}

// UploadMedia downloads imgURL and attaches it to the record. It becomes the
// featured image only when the record has none yet.
func (g *Gateway) UploadMedia(ctx context.Context, call *Call, recordID int64, imgURL string) (res *UploadResult, err error) {
	call.advance(StateDispatched)
	defer func() { call.finish(err) }()

	imgURL = strings.TrimSpace(imgURL)
	rec, err := g.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	asset, err := g.media.FetchRemote(ctx, imgURL, rec.Title)
	if err != nil {
		return nil, err
	}
	asset.AltText = rec.Title

	att, err := g.media.Attach(ctx, asset, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}

	if !rec.HasFeaturedMedia() {
		if err := g.records.SetFeaturedMedia(ctx, rec.ID, att.ID); err != nil {
			return nil, fmt.Errorf("set featured image: %w", err)
		}
	}

	return &UploadResult{
		RecordID: rec.ID,
		ImageURL: imgURL,
		BaseURL:  asset.PublicURL,
	}, nil
}
