package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/gateway"
)

const principalKey = "principal"

var errInvalidSession = errors.New("invalid session")

// Claims is the admin session. The subject is the principal id.
type Claims struct {
	jwt.RegisteredClaims
}

// SignSession issues an admin session for principalID.
func SignSession(secret string, principalID int64, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sign session: empty secret")
	}
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(principalID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func parseSession(secret, raw string) (int64, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, errInvalidSession
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidSession
	}
	return id, nil
}

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

// SessionMiddleware resolves the admin session into a principal. With
// required false a missing or bad session leaves the request anonymous so the
// handler can answer with its own message.
func (s *Server) SessionMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.sessionPrincipal(c)
		if err == nil {
			c.Set(principalKey, p)
			c.Next()
			return
		}
		if !required {
			c.Next()
			return
		}
		s.logger.Debug("admin session rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"data":    gin.H{"message": gateway.MsgNotLoggedIn},
		})
	}
}

func (s *Server) sessionPrincipal(c *gin.Context) (*domain.Principal, error) {
	raw := bearer(c)
	if raw == "" {
		return nil, errInvalidSession
	}
	id, err := parseSession(s.cfg.SessionSecret, raw)
	if err != nil {
		return nil, err
	}
	return s.principals.GetByID(c.Request.Context(), id)
}

func principalFrom(c *gin.Context) *domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}
