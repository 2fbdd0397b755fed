package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractImages returns the src of every img element in document order.
func ExtractImages(body string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var srcs []string
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			srcs = append(srcs, src)
		}
	})
	return srcs
}

// ReplaceAll rewrites every occurrence of from in body. Used after a remote
// image has been stored locally.
func ReplaceAll(body, from, to string) string {
	if from == "" || from == to {
		return body
	}
	return strings.ReplaceAll(body, from, to)
}
