package content

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterations folds the characters that NFD decomposition alone would
// map incorrectly (ligatures, umlauts spelled out, đ) or would lose.
var transliterations = buildReplacer(map[string]string{
	"àáạảãâầấậẩẫăằắặẳẵÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴå":             "a",
	"èéẹẻẽêềếệểễÈÉẸẺẼÊỀẾỆỂỄë":                         "e",
	"ìíịỉĩÌÍỊỈĨî":                                     "i",
	"òóọỏõôồốộổỗơờớợởỡÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠøØ":            "o",
	"ùúụủũưừứựửữÙÚỤỦŨƯỪỨỰỬỮůû":                        "u",
	"ỳýỵỷỹỲÝỴỶỸ":                                      "y",
	"đĐ":                                              "d",
	"ç":                                               "c",
	"ñ":                                               "n",
	"äæ":                                              "ae",
	"öœ":                                              "oe",
	"ü":                                               "ue",
	"ÄÆ":                                              "Ae",
	"Ü":                                               "Ue",
	"ÖŒ":                                              "Oe",
	"ß":                                               "ss",
})

func buildReplacer(table map[string]string) *strings.Replacer {
	var pairs []string
	for chars, repl := range table {
		for _, r := range chars {
			pairs = append(pairs, string(r), repl)
		}
	}
	return strings.NewReplacer(pairs...)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a title into a lowercase ASCII slug made of [a-z0-9] runs
// joined by single dashes.
func Slugify(title string) string {
	if decoded, err := url.QueryUnescape(title); err == nil {
		title = decoded
	}

	title = transliterations.Replace(title)
	if folded, _, err := transform.String(stripMarks, title); err == nil {
		title = folded
	}
	title = strings.ToLower(title)

	var sb strings.Builder
	sb.Grow(len(title))
	pendingDash := false
	for i := 0; i < len(title); i++ {
		c := title[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteByte(c)
			continue
		}
		pendingDash = true
	}

	return sb.String()
}

// TermSlug is Slugify for taxonomy terms. A name with no ASCII letters or
// digits keeps its own script: lowercased, dash-joined and percent-encoded.
func TermSlug(name string) string {
	if slug := Slugify(name); slug != "" {
		return slug
	}
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r)
	})
	return url.PathEscape(strings.Join(words, "-"))
}
