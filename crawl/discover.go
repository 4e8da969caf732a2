package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docscraper/core"
)

// DefaultMaxPages caps a link crawl.
const DefaultMaxPages = 100

// sitemap is the <urlset> root of a sitemap.xml.
type sitemap struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// Discoverer finds the pages below a starting URL.
type Discoverer struct {
	fetcher  core.Fetcher
	maxPages int
	logger   *slog.Logger
}

// NewDiscoverer creates a Discoverer that fetches through f. A maxPages
// below one selects DefaultMaxPages.
func NewDiscoverer(f core.Fetcher, maxPages int, logger *slog.Logger) *Discoverer {
	if maxPages < 1 {
		maxPages = DefaultMaxPages
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Discoverer{fetcher: f, maxPages: maxPages, logger: logger}
}

// Discover returns the pages in scope of start, starting page first.
// sitemap.xml is tried before link crawling.
func (d *Discoverer) Discover(ctx context.Context, start string) ([]string, error) {
	u, err := url.Parse(start)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", core.ErrInvalidSource, start)
	}
	scope := NewScope(u)

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", u.Scheme, u.Host)
	urls, err := d.fromSitemap(ctx, sitemapURL, start, scope)
	if err == nil && len(urls) > 1 {
		d.logger.Debug("pages from sitemap", "sitemap", sitemapURL, "count", len(urls))
		return urls, nil
	}
	if err != nil {
		d.logger.Debug("sitemap unavailable", "sitemap", sitemapURL, "err", err)
	}
	return d.fromLinks(ctx, start, scope)
}

func (d *Discoverer) fromSitemap(ctx context.Context, sitemapURL, start string, scope Scope) ([]string, error) {
	res, err := d.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	var sm sitemap
	if err := xml.Unmarshal([]byte(res.HTML), &sm); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	q := newQueue()
	q.add(start)
	for _, entry := range sm.URLs {
		loc := strings.TrimSpace(entry.Loc)
		if scope.Allows(loc) && len(q.all()) < d.maxPages {
			q.add(loc)
		}
	}
	return q.all(), nil
}

func (d *Discoverer) fromLinks(ctx context.Context, start string, scope Scope) ([]string, error) {
	q := newQueue()
	q.add(start)

	for q.hasNext() && len(q.all()) < d.maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := q.next()

		res, err := d.fetcher.Fetch(ctx, page)
		if err != nil {
			// A broken page must not stop the crawl.
			d.logger.Warn("skipping page", "url", page, "err", err)
			continue
		}

		for _, link := range links(res.HTML, page) {
			if scope.Allows(link) {
				q.add(link)
			}
		}
	}

	found := q.all()
	if len(found) > d.maxPages {
		found = found[:d.maxPages]
	}
	return found, nil
}

// links returns the resolved href of every anchor in raw.
func links(raw, base string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := baseURL.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""
		out = append(out, resolved.String())
	})
	return out
}
