package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

const (
	SEORankMath = "rankmath"
	SEOYoast    = "yoast"

	DefaultPageSize = 50
	DefaultTagLimit = 5
)

type Config struct {
	SiteURL    string
	SEOPlugins []string
	PageSize   int
	TagLimit   int
}

type Gateway struct {
	tokens      TokenStore
	settings    Settings
	principals  PrincipalStore
	records     RecordStore
	terms       TermStore
	attachments AttachmentStore
	media       MediaIngestor
	filter      MarkupFilter
	txManager   TransactionManager
	publisher   EventPublisher
	logger      *zap.Logger
	cfg         Config
	now         func() time.Time
}

type Deps struct {
	Tokens      TokenStore
	Settings    Settings
	Principals  PrincipalStore
	Records     RecordStore
	Terms       TermStore
	Attachments AttachmentStore
	Media       MediaIngestor
	Filter      MarkupFilter
	TxManager   TransactionManager
	Publisher   EventPublisher
}

func New(deps Deps, logger *zap.Logger, cfg Config) *Gateway {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.TagLimit <= 0 {
		cfg.TagLimit = DefaultTagLimit
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	return &Gateway{
		tokens:      deps.Tokens,
		settings:    deps.Settings,
		principals:  deps.Principals,
		records:     deps.Records,
		terms:       deps.Terms,
		attachments: deps.Attachments,
		media:       deps.Media,
		filter:      deps.Filter,
		txManager:   deps.TxManager,
		publisher:   deps.Publisher,
		logger:      logger.With(zap.String("component", "gateway")),
		cfg:         cfg,
		now:         time.Now,
	}
}

// Authorize checks the pre-shared token and then resolves the principal
// that will act for the call. need is checked against that principal.
func (g *Gateway) Authorize(ctx context.Context, op, token string, need ...domain.Capability) (*Call, error) {
	call := newCall(op, g.logger)

	if err := g.checkToken(ctx, token); err != nil {
		call.finish(err)
		return nil, err
	}
	call.advance(StateTokenChecked)

	if len(need) > 0 {
		p, err := g.ResolveActingPrincipal(ctx, need...)
		if err != nil {
			call.finish(err)
			return nil, err
		}
		call.Principal = p
		call.advance(StateCapabilityChecked)
	}

	return call, nil
}

func (g *Gateway) checkToken(ctx context.Context, token string) error {
	stored, err := g.tokens.Current(ctx)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if strings.TrimSpace(stored) == "" || strings.TrimSpace(token) == "" {
		return forbidden(MsgMissingToken)
	}
	if !g.tokens.Verify(ctx, token) {
		return forbidden(MsgInvalidToken)
	}
	return nil
}

// ResolveActingPrincipal returns the configured author when it can do all of
// need. Otherwise the lowest id administrator takes over and is saved as the
// new author.
func (g *Gateway) ResolveActingPrincipal(ctx context.Context, need ...domain.Capability) (*domain.Principal, error) {
	id, err := g.settings.ActingPrincipalID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := g.principals.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load acting principal: %w", err)
	}

	if p == nil || !p.Can(need...) {
		admin, err := g.principals.FirstAdministrator(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &AuthError{Status: http.StatusForbidden, Message: MsgNoAdministrator, Err: domain.ErrNoAdministrator}
		}
		if err != nil {
			return nil, fmt.Errorf("find administrator: %w", err)
		}
		if err := g.settings.SetActingPrincipalID(ctx, admin.ID); err != nil {
			return nil, fmt.Errorf("save acting principal: %w", err)
		}
		g.logger.Info("acting principal reassigned",
			zap.Int64("from", id),
			zap.Int64("to", admin.ID),
		)
		p = admin
	}

	if !p.Can(need...) {
		return nil, forbidden(capabilityMessage(need))
	}
	return p, nil
}

// CheckToken reports whether candidate matches the stored token.
func (g *Gateway) CheckToken(ctx context.Context, candidate string) bool {
	call := g.begin("checkToken")
	ok := g.tokens.Verify(ctx, candidate)
	call.finish(nil)
	return ok
}

// GetToken hands the token to a signed in administrator, creating it on
// first use.
func (g *Gateway) GetToken(ctx context.Context, caller *domain.Principal) (string, error) {
	call := newCall("getToken", g.logger)
	call.Principal = caller

	if caller == nil {
		err := &AuthError{Status: http.StatusUnauthorized, Message: MsgNotLoggedIn, Err: domain.ErrUnauthorized}
		call.finish(err)
		return "", err
	}
	if !caller.Can(domain.CapManageOptions) {
		err := forbidden(MsgAdminOnly)
		call.finish(err)
		return "", err
	}
	call.advance(StateCapabilityChecked)
	call.advance(StateDispatched)

	tok, err := g.tokens.Get(ctx)
	call.finish(err)
	return tok, err
}

// Permalink is the public URL of a record.
func (g *Gateway) Permalink(rec *domain.Record) string {
	return g.permalink(rec.ID, rec.Type, rec.Slug)
}

func (g *Gateway) permalink(id int64, typ domain.RecordType, slug string) string {
	if slug == "" {
		return fmt.Sprintf("%s/?p=%d", g.cfg.SiteURL, id)
	}
	if typ == domain.RecordTypeProduct {
		return g.cfg.SiteURL + "/product/" + slug + "/"
	}
	return g.cfg.SiteURL + "/" + slug + "/"
}

// thumbnail returns the large featured image URL, or "" when there is none.
func (g *Gateway) thumbnail(ctx context.Context, rec *domain.Record) string {
	if !rec.HasFeaturedMedia() {
		return ""
	}
	att, err := g.attachments.GetByID(ctx, *rec.FeaturedMediaID)
	if err != nil {
		g.logger.Warn("load featured media", zap.Int64("record_id", rec.ID), zap.Error(err))
		return ""
	}
	return att.URLForSize("large")
}

func (g *Gateway) seoEnabled(plugin string) bool {
	return slices.Contains(g.cfg.SEOPlugins, plugin)
}

func (g *Gateway) publish(ctx context.Context, event domain.Event) {
	if g.publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = g.now().UTC()
	}
	if err := g.publisher.Publish(ctx, event); err != nil {
		g.logger.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.Int64("record_id", event.RecordID),
			zap.Error(err),
		)
	}
}
