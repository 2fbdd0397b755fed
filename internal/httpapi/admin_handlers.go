package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/service"
)

const msgUnauthorized = "Unauthorized"

func succeed(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func refuse(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": false, "data": data})
}

// authorized checks that the session principal holds need.
func authorized(c *gin.Context, need domain.Capability) (*domain.Principal, bool) {
	p := principalFrom(c)
	if !p.Can(need) {
		refuse(c, http.StatusForbidden, gin.H{"message": msgUnauthorized})
		return nil, false
	}
	return p, true
}

func operationParam(p *params) domain.Operation {
	op := domain.Operation(p.String("type"))
	if !op.Valid() {
		return domain.OperationDescription
	}
	return op
}

func (s *Server) regenerateToken(c *gin.Context) {
	caller, allowed := authorized(c, domain.CapManageOptions)
	if !allowed {
		return
	}

	tok, err := s.tokens.Regenerate(c.Request.Context(), caller)
	if err != nil {
		_ = c.Error(err)
		refuse(c, statusFor(err), gin.H{"message": publicMessage(err)})
		return
	}
	succeed(c, gin.H{"token": tok, "message": "Token regenerated successfully"})
}

func (s *Server) connect(c *gin.Context) {
	if _, allowed := authorized(c, domain.CapManageOptions); !allowed {
		return
	}
	p, valid := s.params(c)
	if !valid {
		return
	}
	ctx := c.Request.Context()

	apiKey := p.String("api_key")
	if apiKey == "" {
		refuse(c, http.StatusBadRequest, "API key is required")
		return
	}

	siteToken, err := s.tokens.Get(ctx)
	if err != nil {
		_ = c.Error(err)
		refuse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	res, err := s.connector.Connect(ctx, apiKey, s.cfg.SiteURL, siteToken)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			refuse(c, http.StatusOK, apiErr.Message)
			return
		}
		_ = c.Error(err)
		refuse(c, statusFor(err), publicMessage(err))
		return
	}

	if err := s.apiKeys.SetAPIKey(ctx, apiKey); err != nil {
		_ = c.Error(err)
		refuse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.logger.Info("connected to generation account", zap.String("site_id", res.SiteID))

	succeed(c, gin.H{
		"message": "Successfully connected to AIKTP",
		"api_key": apiKey,
		"siteId":  res.SiteID,
	})
}

func (s *Server) generate(c *gin.Context) {
	p, valid := s.params(c)
	if !valid {
		return
	}

	op := operationParam(p)
	res, err := s.generator.Generate(c.Request.Context(), principalFrom(c), p.Int64("post_id"), op)
	s.countGeneration(op, err)
	if err != nil {
		s.generationFailed(c, err, nil)
		return
	}

	succeed(c, gin.H{
		"message": service.MsgGenerated,
		"content": res.Content,
		"type":    res.Operation,
	})
}

func (s *Server) enqueueBulk(c *gin.Context) {
	if _, allowed := authorized(c, domain.CapEditProducts); !allowed {
		return
	}
	p, valid := s.params(c)
	if !valid {
		return
	}
	ctx := c.Request.Context()

	key, err := s.apiKeys.APIKey(ctx)
	if err != nil {
		_ = c.Error(err)
		refuse(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if key == "" {
		refuse(c, http.StatusPreconditionFailed, gin.H{"message": "API key is not configured", "code": "no_api_key"})
		return
	}

	ids := p.Int64s("post_ids")
	op := operationParam(p)
	if err := s.jobs.Enqueue(ctx, ids, op); err != nil {
		_ = c.Error(err)
		refuse(c, statusFor(err), gin.H{"message": publicMessage(err)})
		return
	}

	succeed(c, gin.H{"product_count": len(ids), "type": op})
}

func (s *Server) consumeBulk(c *gin.Context) {
	if _, allowed := authorized(c, domain.CapEditProducts); !allowed {
		return
	}
	ctx := c.Request.Context()

	ids, err := s.jobs.Consume(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		refuse(c, http.StatusNotFound, gin.H{"message": "No products found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		refuse(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	op, err := s.jobs.Operation(ctx)
	if err != nil {
		_ = c.Error(err)
		op = domain.OperationDescription
	}
	succeed(c, gin.H{"product_ids": ids, "type": op})
}

func (s *Server) generateBulkItem(c *gin.Context) {
	p, valid := s.params(c)
	if !valid {
		return
	}
	ctx := c.Request.Context()

	op := domain.Operation(p.String("type"))
	if !op.Valid() {
		stored, err := s.jobs.Operation(ctx)
		if err != nil {
			_ = c.Error(err)
		}
		op = stored
	}

	id := p.Int64("post_id")
	res, err := s.generator.Generate(ctx, principalFrom(c), id, op)
	s.countGeneration(op, err)
	if err != nil {
		var genErr *service.GenerateError
		if errors.As(err, &genErr) && genErr.Message == service.MsgProductNotFound {
			genErr = &service.GenerateError{Message: fmt.Sprintf("%s: %d", service.MsgProductNotFound, id), Err: genErr.Err}
			err = genErr
		}
		s.generationFailed(c, err, gin.H{"product_id": id})
		return
	}

	msg := "Description generated successfully!"
	if res.Operation == domain.OperationShortDescription {
		msg = "Short description generated successfully!"
	}
	succeed(c, gin.H{
		"message":      msg,
		"product_id":   res.RecordID,
		"product_name": res.Title,
		"content":      res.Content,
	})
}

func (s *Server) generationFailed(c *gin.Context, err error, extra gin.H) {
	data := gin.H{}
	for k, v := range extra {
		data[k] = v
	}

	var genErr *service.GenerateError
	if !errors.As(err, &genErr) {
		_ = c.Error(err)
		data["message"] = publicMessage(err)
		refuse(c, statusFor(err), data)
		return
	}

	data["message"] = genErr.Message
	if genErr.Credits {
		data["not_enough_credits"] = true
	}
	status := http.StatusOK
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	refuse(c, status, data)
}

func (s *Server) countGeneration(op domain.Operation, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case domain.IsInsufficientCredits(err):
		outcome = "no_credits"
	case err != nil:
		outcome = "failed"
	}
	s.metrics.Generations.WithLabelValues(string(op), outcome).Inc()
}
