package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"

	"sitesmith"
)

// sitemapTimeout bounds each sitemap fetch.
const sitemapTimeout = 10 * time.Second

// maxNestedSitemaps bounds recursion into sitemap indexes; discovery only
// needs to fill a small page budget, not enumerate the site.
const maxNestedSitemaps = 3

// Ensure SitemapSource implements sitesmith.SitemapSource at compile time.
var _ sitesmith.SitemapSource = (*SitemapSource)(nil)

// SitemapSource discovers candidate page URLs from /sitemap.xml.
// It is a fallback for sites whose homepages carry no usable links.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a new SitemapSource.
func NewSitemapSource() *SitemapSource {
	return &SitemapSource{
		client: &http.Client{Timeout: sitemapTimeout},
	}
}

// DiscoverURLs fetches the site's sitemap and returns up to limit same-host
// URLs in document order. Sitemap indexes are followed up to
// maxNestedSitemaps nested sitemaps. The base URL itself is excluded.
func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	base, err := url.Parse(sitesmith.NormalizeURL(baseURL))
	if err != nil || base.Host == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "invalid base URL %q", baseURL)
	}
	if limit <= 0 {
		return []string{}, nil
	}

	sitemapURL := base.Scheme + "://" + base.Host + "/sitemap.xml"

	doc, err := s.fetchXML(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{strings.TrimRight(base.String(), "/"): true}
	var urls []string

	collect := func(d *etree.Document) {
		for _, loc := range d.FindElements("//url/loc") {
			if len(urls) >= limit {
				return
			}
			u := strings.TrimSpace(loc.Text())
			normalized := strings.TrimRight(u, "/")
			if normalized == "" || seen[normalized] {
				continue
			}
			parsed, err := url.Parse(u)
			if err != nil || !strings.EqualFold(parsed.Host, base.Host) {
				continue
			}
			seen[normalized] = true
			urls = append(urls, normalized)
		}
	}

	collect(doc)

	// Sitemap index: descend into the first few child sitemaps.
	if len(urls) < limit {
		nested := doc.FindElements("//sitemap/loc")
		for i, loc := range nested {
			if i >= maxNestedSitemaps || len(urls) >= limit {
				break
			}
			child, err := s.fetchXML(ctx, strings.TrimSpace(loc.Text()))
			if err != nil {
				continue
			}
			collect(child)
		}
	}

	return urls, nil
}

// fetchXML retrieves and parses one sitemap document.
func (s *SitemapSource) fetchXML(ctx context.Context, rawURL string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.EUNAVAILABLE, "sitemap fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, sitesmith.Errorf(sitesmith.ENOTFOUND, "sitemap not available: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "malformed sitemap XML: %v", err)
	}

	return doc, nil
}
