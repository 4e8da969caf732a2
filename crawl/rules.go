// Package crawl discovers the pages of a documentation section for
// `convert --all`. It reads sitemap.xml when the site has one and falls
// back to following links breadth-first.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// staticExtensions are file extensions that never hold a documentation page.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true, ".json": true, ".xml": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true,
	".zip": true, ".tar": true, ".gz": true, ".tgz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// Scope limits discovery to one host and a path prefix, so that crawling
// https://example.com/docs/v2/ never wanders into /blog or /docs/v1.
type Scope struct {
	Host   string
	Prefix string
}

// NewScope derives the Scope of a starting page. The prefix is the
// directory of the page: /docs/install.html scopes to /docs/.
func NewScope(start *url.URL) Scope {
	prefix := start.Path
	if !strings.HasSuffix(prefix, "/") {
		prefix = path.Dir(prefix)
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
	}
	return Scope{Host: start.Host, Prefix: prefix}
}

// Allows reports whether rawURL is a page inside the scope.
func (s Scope) Allows(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != s.Host {
		return false
	}
	if IsStaticAsset(u) {
		return false
	}
	p := u.Path
	if p == "" {
		p = "/"
	}
	return strings.HasPrefix(p+"/", s.Prefix)
}

// IsStaticAsset reports whether u points at an image, stylesheet, archive
// or other non-page resource.
func IsStaticAsset(u *url.URL) bool {
	return staticExtensions[strings.ToLower(path.Ext(u.Path))]
}

// Normalize strips fragments and trailing slashes for deduplication.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String()
}
