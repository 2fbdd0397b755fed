package content

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/kennygrant/sanitize"
	"golang.org/x/net/html"
)

var (
	allowedTags = []string{
		"a", "abbr", "b", "blockquote", "br", "cite", "code", "del", "div", "em",
		"figcaption", "figure", "h1", "h2", "h3", "h4", "h5", "h6", "hr", "i", "img",
		"li", "ol", "p", "pre", "q", "s", "span", "strike", "strong", "sub", "sup",
		"table", "tbody", "td", "th", "thead", "tr", "u", "ul",
	}
	allowedAttributes = []string{"href", "title", "src", "alt", "class", "width", "height", "id"}
)

type filterKey struct{}

// FilterSwitch is the markup filter applied by the record store to bodies
// on write. It can be switched off site wide, or suspended for the writes
// made under a single context.
type FilterSwitch struct {
	enabled atomic.Bool
}

func NewFilterSwitch(enabled bool) *FilterSwitch {
	f := &FilterSwitch{}
	f.enabled.Store(enabled)
	return f
}

func (f *FilterSwitch) SetEnabled(enabled bool) {
	f.enabled.Store(enabled)
}

// Suspend returns a context under which Apply leaves markup untouched.
// Filtering resumes as soon as the caller stops using the returned context.
func (f *FilterSwitch) Suspend(ctx context.Context) context.Context {
	return context.WithValue(ctx, filterKey{}, true)
}

// Active reports whether Apply would filter under ctx.
func (f *FilterSwitch) Active(ctx context.Context) bool {
	if f == nil || !f.enabled.Load() {
		return false
	}
	suspended, _ := ctx.Value(filterKey{}).(bool)
	return !suspended
}

// Apply filters body down to the allowed tag and attribute set.
func (f *FilterSwitch) Apply(ctx context.Context, body string) string {
	if !f.Active(ctx) {
		return body
	}
	out, err := sanitize.HTMLAllowing(body, allowedTags, allowedAttributes)
	if err != nil {
		return html.EscapeString(body)
	}
	return out
}

// SanitizeText strips all markup from a plain text field and collapses
// whitespace. Brackets that do not form a tag are kept as text.
func SanitizeText(s string) string {
	stripped := html.UnescapeString(sanitize.HTML(escapeStrayBrackets(s)))
	return strings.Join(strings.Fields(stripped), " ")
}

// escapeStrayBrackets entity-encodes every < and > that is not part of a
// <tag ...> run, so the tag stripper leaves them alone.
func escapeStrayBrackets(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '<' && !inTag && opensTag(s[i+1:]):
			inTag = true
			b.WriteByte(c)
		case c == '<':
			b.WriteString("&lt;")
		case c == '>' && inTag:
			inTag = false
			b.WriteByte(c)
		case c == '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// opensTag reports whether rest, the text after a <, starts a tag that is
// closed before the next <.
func opensTag(rest string) bool {
	if rest == "" {
		return false
	}
	c := rest[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '/' || c == '!' || c == '?') {
		return false
	}
	end := strings.IndexAny(rest, "<>")
	return end >= 0 && rest[end] == '>'
}

// SanitizeList splits a comma separated list and sanitizes each entry,
// dropping empty ones.
func SanitizeList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := SanitizeText(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SanitizeFileName reduces name to a safe file name.
func SanitizeFileName(name string) string {
	return sanitize.Name(name)
}
