package httpapi

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"aiktp_sync/internal/storage/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"
)

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotent replays the first successful response given for an
// Idempotency-Key. Keys are scoped by route and by the token presented, so a
// replay needs the same credentials as the original call. While a request
// holds a key, repeats of it get 409 instead of running the handler again.
func (s *Server) Idempotent(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" || s.idempotency == nil {
			c.Next()
			return
		}

		p, err := readParams(c)
		if err != nil {
			c.Next()
			return
		}
		cacheKey := p.token() + "\x00" + key
		ctx := c.Request.Context()

		if s.replay(c, scope, cacheKey) {
			return
		}

		reserved, err := s.idempotency.Reserve(ctx, scope, cacheKey)
		if err != nil {
			s.logger.Warn("idempotency reserve", zap.String("scope", scope), zap.Error(err))
			reserved = true
		}
		if !reserved {
			// The holder may have finished between the lookup and the reserve.
			if s.replay(c, scope, cacheKey) {
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "A request with this Idempotency-Key is already in progress",
			})
			return
		}
		detached := context.WithoutCancel(ctx)
		defer func() {
			if err := s.idempotency.Release(detached, scope, cacheKey); err != nil {
				s.logger.Warn("idempotency release", zap.String("scope", scope), zap.Error(err))
			}
		}()

		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		if gjson.GetBytes(w.body.Bytes(), "status").String() == "error" {
			return
		}
		if _, err := s.idempotency.Save(detached, scope, cacheKey, redis.CachedResponse{
			Status: status,
			Body:   w.body.Bytes(),
		}); err != nil {
			s.logger.Warn("idempotency save", zap.String("scope", scope), zap.Error(err))
		}
	}
}

// replay writes the cached response for key, if there is one.
func (s *Server) replay(c *gin.Context, scope, key string) bool {
	cached, ok, err := s.idempotency.Lookup(c.Request.Context(), scope, key)
	if err != nil {
		s.logger.Warn("idempotency lookup", zap.String("scope", scope), zap.Error(err))
	}
	if !ok {
		return false
	}
	if s.metrics != nil {
		s.metrics.IdempotentReplay.Inc()
	}
	c.Header(replayedHeader, "true")
	c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
	c.Abort()
	return true
}
