package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/markify"
)

// Ensure SitemapService implements markify.SitemapService.
var _ markify.SitemapService = (*SitemapService)(nil)

// SitemapService lists page URLs from sitemaps fetched over HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// URLs returns the page URLs listed by a sitemap.
//
// sitemapURL is either a sitemap document (path ending in .xml) or a site
// URL, in which case the sitemaps are located through robots.txt with a
// fallback to /sitemap.xml. Returns an empty slice (not nil) when the site
// has no sitemap.
func (s *SitemapService) URLs(ctx context.Context, sitemapURL string, filter *markify.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := url.Parse(sitemapURL)
	if err != nil || u.Host == "" {
		return nil, markify.Errorf(markify.EINVALID, "invalid sitemap URL %q", sitemapURL)
	}

	sitemaps := []string{sitemapURL}
	if !strings.HasSuffix(u.Path, ".xml") {
		sitemaps, err = s.locate(ctx, u)
		if err != nil {
			return nil, err
		}
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sm := range sitemaps {
		found, err := s.collect(ctx, sm, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, loc := range found {
			if seenURLs[loc] || !filter.Match(loc) {
				continue
			}
			seenURLs[loc] = true
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

// locate finds sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (s *SitemapService) locate(ctx context.Context, site *url.URL) ([]string, error) {
	root := &url.URL{Scheme: site.Scheme, Host: site.Host}

	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robots); err == nil {
		defer body.Close()
		if sitemaps := sitemapDirectives(body); len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	body, err := s.get(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	body.Close()
	return []string{fallback}, nil
}

// sitemapDirectives extracts Sitemap: lines from a robots.txt body.
func sitemapDirectives(r io.Reader) []string {
	var sitemaps []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			sitemaps = append(sitemaps, value)
		}
	}
	return sitemaps
}

// collect fetches a sitemap and returns its page URLs, descending into
// sitemap indexes. seen prevents processing a sitemap twice.
func (s *SitemapService) collect(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return locs(root, "url"), nil
	}

	var urls []string
	for _, child := range locs(root, "sitemap") {
		found, err := s.collect(ctx, child, seen)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	return urls, nil
}

// locs returns the trimmed <loc> text of every tag child of root.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	return resp.Body, nil
}
