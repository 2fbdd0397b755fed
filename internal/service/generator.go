package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"aiktp_sync/internal/content"
	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/generation"
)

const (
	SEORankMath = "rankmath"
	SEOYoast    = "yoast"

	MsgUnauthorized     = "Unauthorized"
	MsgProductNotFound  = "Product not found"
	MsgGenerated        = "Content generated successfully!"
	MsgNotEnoughCredits = `Not enough credits to generate content. Please <a href="https://aiktp.com/pricing" target="_blank">purchase more credits</a> to continue.`
)

var lengthText = map[string]string{
	"short":  "500-800 words",
	"medium": "800-1.200 words",
	"long":   "more than 1.200 words",
}

var toneText = map[string]string{
	"professional": "professional",
	"friendly":     "friendly and approachable",
	"casual":       "casual and cheerful",
	"persuasive":   "persuasive and engaging",
}

type Config struct {
	SEOPlugins []string
}

// Result is what a successful generation hands back to the admin screen.
type Result struct {
	RecordID  int64
	Title     string
	Operation domain.Operation
	Content   string
}

// GenerateError carries the message shown to the admin. Credits is set when
// the account ran out of credits.
type GenerateError struct {
	Message string
	Credits bool
	Err     error
}

func (e *GenerateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerateError) Unwrap() error { return e.Err }

type Generator struct {
	records     RecordStore
	terms       TermStore
	attachments AttachmentStore
	prefs       Preferences
	client      ContentGenerator
	links       Permalinker
	txManager   TransactionManager
	publisher   Publisher
	logger      *zap.Logger
	cfg         Config
}

func NewGenerator(
	records RecordStore,
	terms TermStore,
	attachments AttachmentStore,
	prefs Preferences,
	client ContentGenerator,
	links Permalinker,
	txManager TransactionManager,
	publisher Publisher,
	logger *zap.Logger,
	cfg Config,
) *Generator {
	return &Generator{
		records:     records,
		terms:       terms,
		attachments: attachments,
		prefs:       prefs,
		client:      client,
		links:       links,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger.With(zap.String("component", "generator")),
		cfg:         cfg,
	}
}

// Generate produces op content for a product and stores it. Anything other
// than short_description is treated as a full description.
func (g *Generator) Generate(ctx context.Context, caller *domain.Principal, recordID int64, op domain.Operation) (*Result, error) {
	if !caller.Can(domain.CapEditProducts) {
		return nil, &GenerateError{Message: MsgUnauthorized, Err: domain.ErrUnauthorized}
	}
	if op != domain.OperationShortDescription {
		op = domain.OperationDescription
	}

	rec, err := g.records.GetByID(ctx, recordID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && rec.Type != domain.RecordTypeProduct) {
		return nil, &GenerateError{Message: MsgProductNotFound, Err: domain.ErrNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	info, err := g.RecordInfo(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("build record info: %w", err)
	}

	task := generation.TaskProductDescription
	if op == domain.OperationShortDescription {
		task = generation.TaskProductShortDescription
	}

	start := time.Now()
	text, err := g.client.Generate(ctx, task, info)
	if err != nil {
		if domain.IsInsufficientCredits(err) {
			g.logger.Warn("generation refused, out of credits", zap.Int64("record_id", rec.ID))
			return nil, &GenerateError{Message: MsgNotEnoughCredits, Credits: true, Err: err}
		}
		return nil, &GenerateError{Message: generationMessage(err), Err: err}
	}

	keyword := info["mainKeyword"]
	if task == generation.TaskProductDescription && keyword != "" && text != "" {
		text = content.LinkFirstKeyword(text, keyword, g.links.Permalink(rec))
		text = g.injectImage(ctx, text, keyword, rec)
	}

	if text != "" {
		body, excerpt := rec.Body, rec.Excerpt
		if op == domain.OperationShortDescription {
			excerpt = text
		} else {
			body = text
		}
		err := g.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			return g.records.UpdateContent(ctx, rec.ID, body, excerpt)
		})
		if err != nil {
			return nil, fmt.Errorf("save generated content: %w", err)
		}
		g.publish(ctx, rec)
	}

	g.logger.Info("content generated",
		zap.Int64("record_id", rec.ID),
		zap.String("task", task),
		zap.Int("length", len(text)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Result{RecordID: rec.ID, Title: rec.Title, Operation: op, Content: text}, nil
}

// RecordInfo builds the metadata sent along with a generation task.
func (g *Generator) RecordInfo(ctx context.Context, rec *domain.Record) (generation.RecordInfo, error) {
	prefs, err := g.prefs.ContentPrefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content prefs: %w", err)
	}

	cats, err := g.termNames(ctx, rec.ID, domain.TaxonomyProductCategory)
	if err != nil {
		return nil, err
	}
	tags, err := g.termNames(ctx, rec.ID, domain.TaxonomyProductTag)
	if err != nil {
		return nil, err
	}

	keyword, err := g.MainKeyword(ctx, rec)
	if err != nil {
		return nil, err
	}

	language := prefs.Language
	if language == "" {
		language = "auto"
	}

	stock := ""
	if rec.StockQuantity != nil && *rec.StockQuantity != 0 {
		stock = strconv.Itoa(*rec.StockQuantity)
	}

	return generation.RecordInfo{
		"name":           rec.Title,
		"price":          rec.Price,
		"sale-price":     rec.SalePrice,
		"attributes":     encodeMap(rec.Attributes),
		"categories":     strings.Join(cats, ", "),
		"tags":           strings.Join(tags, ", "),
		"sku":            rec.SKU,
		"stock-status":   rec.StockStatus,
		"stock-quantity": stock,
		"weight":         rec.Weight,
		"dimensions":     encodeMap(rec.Dimensions),
		"length":         prefs.Length,
		"lengthTxt":      lengthText[prefs.Length],
		"tone":           toneText[prefs.Tone],
		"custom-prompt":  prefs.CustomPrompt,
		"mainKeyword":    keyword,
		"targetLanguage": language,
	}, nil
}

// MainKeyword reads the focus keyword of the active SEO plugin. When it is
// missing the product name is stored as the keyword and returned.
func (g *Generator) MainKeyword(ctx context.Context, rec *domain.Record) (string, error) {
	var key string
	switch {
	case slices.Contains(g.cfg.SEOPlugins, SEORankMath):
		key = domain.MetaRankMathKeyword
	case slices.Contains(g.cfg.SEOPlugins, SEOYoast):
		key = domain.MetaYoastKeyword
	default:
		return rec.Title, nil
	}

	kw, err := g.records.GetMeta(ctx, rec.ID, key)
	if err != nil {
		return "", fmt.Errorf("get focus keyword: %w", err)
	}
	if kw != "" {
		return kw, nil
	}
	if err := g.records.SetMeta(ctx, rec.ID, key, rec.Title); err != nil {
		return "", fmt.Errorf("set focus keyword: %w", err)
	}
	return rec.Title, nil
}

// injectImage places the secondary product image after the first paragraph.
// A missing image leaves text untouched.
func (g *Generator) injectImage(ctx context.Context, text, keyword string, rec *domain.Record) string {
	var featured int64
	if rec.HasFeaturedMedia() {
		featured = *rec.FeaturedMediaID
	}
	id, ok := content.SelectSecondaryImage(featured, rec.GalleryIDs)
	if !ok {
		return text
	}

	att, err := g.attachments.GetByID(ctx, id)
	if err != nil {
		g.logger.Warn("load product image", zap.Int64("attachment_id", id), zap.Error(err))
		return text
	}
	if att.URL == "" {
		return text
	}

	if att.AltText == "" {
		if err := g.attachments.SetAltText(ctx, att.ID, keyword); err != nil {
			g.logger.Warn("set image alt text", zap.Int64("attachment_id", att.ID), zap.Error(err))
		}
	}

	return content.InsertAfterFirstParagraph(text, content.ImageFigure(att.URL, keyword))
}

func (g *Generator) termNames(ctx context.Context, recordID int64, taxonomy domain.Taxonomy) ([]string, error) {
	terms, err := g.terms.ForRecord(ctx, recordID, taxonomy)
	if err != nil {
		return nil, fmt.Errorf("load %s terms: %w", taxonomy, err)
	}
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return names, nil
}

func (g *Generator) publish(ctx context.Context, rec *domain.Record) {
	if g.publisher == nil {
		return
	}
	event := domain.Event{
		Type:       domain.EventRecordUpdated,
		RecordID:   rec.ID,
		RecordType: rec.Type,
		Permalink:  g.links.Permalink(rec),
		Timestamp:  time.Now().UTC(),
	}
	if err := g.publisher.Publish(ctx, event); err != nil {
		g.logger.Warn("publish event", zap.Int64("record_id", rec.ID), zap.Error(err))
	}
}

func encodeMap(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

func generationMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, domain.ErrNoAPIKey):
		return "API key is not configured"
	case errors.Is(err, domain.ErrInvalidResponse):
		return "Invalid API response"
	default:
		return err.Error()
	}
}
