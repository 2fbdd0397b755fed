package content

import (
	"golang.org/x/net/html"
)

const paragraphEnd = "</p>"

// InsertAfterFirstParagraph places fragment right after the first closing
// paragraph tag, or in front of the body when there is none.
func InsertAfterFirstParagraph(body, fragment string) string {
	pos := indexFold(body, paragraphEnd)
	if pos < 0 {
		return fragment + body
	}
	at := pos + len(paragraphEnd)
	return body[:at] + fragment + body[at:]
}

// ImageFigure renders an image block the way the editor does.
func ImageFigure(src, alt string) string {
	return `<figure class="wp-block-image size-full"><img src="` + html.EscapeString(src) +
		`" alt="` + html.EscapeString(alt) + `" /></figure>`
}

// SelectSecondaryImage picks the image to embed in a generated body: the
// second image when at least two exist, otherwise the only one. Featured comes
// first, then gallery, with duplicates removed. ok is false when no image exists.
func SelectSecondaryImage(featured int64, gallery []int64) (id int64, ok bool) {
	seen := make(map[int64]bool, len(gallery)+1)
	var all []int64
	add := func(v int64) {
		if v <= 0 || seen[v] {
			return
		}
		seen[v] = true
		all = append(all, v)
	}

	add(featured)
	for _, g := range gallery {
		add(g)
	}

	switch {
	case len(all) >= 2:
		return all[1], true
	case len(all) == 1:
		return all[0], true
	default:
		return 0, false
	}
}
