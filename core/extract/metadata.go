// Package extract — page metadata.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const defaultLanguage = "en"

// Metadata reads the page title and language from raw HTML. The title
// falls back to the first <h1>; the language defaults to "en".
func Metadata(raw string) (title, lang string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", defaultLanguage
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	lang = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))
	if lang == "" {
		lang = defaultLanguage
	}
	return title, lang
}
