package content

import (
	"strings"

	"golang.org/x/net/html"
)

var (
	linkContainers = map[string]bool{"p": true, "div": true}
	linkForbidden  = map[string]bool{
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "a": true,
	}
)

// LinkFirstKeyword wraps the first eligible occurrence of keyword in an
// anchor pointing at target. Text qualifies only when its nearest open element
// is a p or div. Nothing changes when the keyword is already part of some
// anchor text, so applying the function twice is the same as applying it once.
func LinkFirstKeyword(body, keyword, target string) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || body == "" || target == "" {
		return body
	}

	segs := Split(body)
	if keywordInAnchor(segs, keyword) {
		return body
	}

	var stack tagStack
	for i, seg := range segs {
		if seg.Kind != KindText {
			stack.apply(seg)
			continue
		}

		parent := stack.top()
		if linkForbidden[parent] || !linkContainers[parent] {
			continue
		}

		pos := indexFold(seg.Raw, keyword)
		if pos < 0 {
			continue
		}

		matched := seg.Raw[pos : pos+len(keyword)]
		link := `<a href="` + html.EscapeString(target) + `">` + matched + `</a>`
		segs[i].Raw = seg.Raw[:pos] + link + seg.Raw[pos+len(keyword):]
		return Join(segs)
	}

	return body
}

func keywordInAnchor(segs []Segment, keyword string) bool {
	var stack tagStack
	for _, seg := range segs {
		if seg.Kind != KindText {
			stack.apply(seg)
			continue
		}
		if stack.contains("a") && indexFold(seg.Raw, keyword) >= 0 {
			return true
		}
	}
	return false
}

// indexFold is a case-insensitive strings.Index that returns a byte offset
// into s, so the matched text can be cut out with its original casing.
func indexFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
