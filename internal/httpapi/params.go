package httpapi

import (
	"bytes"
	"io"
	"mime"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

const maxBodyBytes = 32 << 20

// params merges the request parameters the way the sync client sends them:
// JSON body first, then form fields, then the query string.
type params struct {
	c    *gin.Context
	json gjson.Result
}

func readParams(c *gin.Context) (*params, error) {
	p := &params{c: c}
	if c.Request.Body == nil || !isJSON(c.GetHeader("Content-Type")) {
		return p, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if gjson.ValidBytes(body) {
		p.json = gjson.ParseBytes(body)
	}
	return p, nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && (mt == "application/json" || strings.HasSuffix(mt, "+json"))
}

func (p *params) String(key string) string {
	if v := p.json.Get(key); v.Exists() && v.Type != gjson.Null {
		return v.String()
	}
	if v, ok := p.c.GetPostForm(key); ok {
		return v
	}
	return p.c.Query(key)
}

func (p *params) Int(key string, def int) int {
	s := strings.TrimSpace(p.String(key))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func (p *params) Int64(key string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(p.String(key)), 10, 64)
	return n
}

// Int64s reads a JSON array or a comma separated list of ids.
func (p *params) Int64s(key string) []int64 {
	var out []int64
	if v := p.json.Get(key); v.IsArray() {
		for _, item := range v.Array() {
			if id := item.Int(); id > 0 {
				out = append(out, id)
			}
		}
		return out
	}
	for _, part := range strings.Split(p.String(key), ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil && id > 0 {
			out = append(out, id)
		}
	}
	return out
}

// token returns wpToken, falling back to tokenKey.
func (p *params) token() string {
	if t := p.String("wpToken"); t != "" {
		return t
	}
	return p.String("tokenKey")
}
