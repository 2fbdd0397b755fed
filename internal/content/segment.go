package content

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

type SegmentKind int

const (
	KindText SegmentKind = iota
	KindOpenTag
	KindCloseTag
	KindSelfClosing
	// KindOther covers comments and doctypes. They pass through untouched.
	KindOther
)

func (k SegmentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindOpenTag:
		return "open"
	case KindCloseTag:
		return "close"
	case KindSelfClosing:
		return "self-closing"
	default:
		return "other"
	}
}

// Segment is one lexical piece of an HTML document. Raw holds the exact
// source bytes so that joining all segments reproduces the input.
type Segment struct {
	Kind SegmentKind
	Tag  string
	Raw  string
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoid reports whether tag never has a closing counterpart.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// Split tokenizes src into segments without normalizing it.
func Split(src string) []Segment {
	z := html.NewTokenizer(strings.NewReader(src))
	var out []Segment

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				// Tokenizer gave up; keep whatever is left as text.
				if rest := string(z.Raw()); rest != "" {
					out = append(out, Segment{Kind: KindText, Raw: rest})
				}
			}
			return out
		}

		raw := string(z.Raw())
		seg := Segment{Raw: raw}
		switch tt {
		case html.TextToken:
			seg.Kind = KindText
		case html.StartTagToken:
			name, _ := z.TagName()
			seg.Tag = string(name)
			seg.Kind = KindOpenTag
			if IsVoid(seg.Tag) {
				seg.Kind = KindSelfClosing
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			seg.Tag = string(name)
			seg.Kind = KindCloseTag
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			seg.Tag = string(name)
			seg.Kind = KindSelfClosing
		default:
			seg.Kind = KindOther
		}
		out = append(out, seg)
	}
}

// Join concatenates raw segment bytes.
func Join(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.Raw)
	}
	return sb.String()
}

// tagStack tracks open elements while walking segments.
type tagStack []string

func (s *tagStack) apply(seg Segment) {
	switch seg.Kind {
	case KindOpenTag:
		*s = append(*s, seg.Tag)
	case KindCloseTag:
		if n := len(*s); n > 0 && (*s)[n-1] == seg.Tag {
			*s = (*s)[:n-1]
		}
	}
}

func (s tagStack) top() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

func (s tagStack) contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}
