package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sitesmith"
)

// importantPageKeywords mark pages worth crawling across business,
// personal and academic sites. First match wins; scoring is not
// cumulative across keywords.
var importantPageKeywords = []string{
	// Company/business pages
	"about", "about-us", "aboutus", "who-we-are",
	"services", "service", "what-we-do", "solutions",
	"products", "product", "offerings",
	"contact", "contact-us", "contactus", "get-in-touch",
	"faq", "faqs", "help", "support",
	"team", "our-team", "leadership", "people",
	"pricing", "plans", "packages",
	"features", "benefits", "why-us",
	"blog", "news", "resources",
	"careers", "jobs", "work-with-us",
	// Personal/academic sites
	"publications", "papers", "research",
	"projects", "portfolio", "work",
	"resume", "cv", "bio", "biography",
	"talks", "speaking", "presentations",
	"courses", "teaching", "education",
	"books", "articles", "writing",
	// Social/connect pages
	"connect", "social", "links",
}

// skipPatterns exclude auth, commerce and binary-asset links.
var skipPatterns = []string{
	"login", "signin", "signup", "register", "cart", "checkout",
	"account", "password", "download", ".pdf", ".jpg", ".png",
	".zip", "mailto:", "tel:", "javascript:",
}

// Link score weights.
const (
	keywordScore   = 10
	shortPathScore = 5
	navScore       = 3
	maxPathDepth   = 2
)

// Ensure Discoverer implements sitesmith.LinkDiscoverer at compile time.
var _ sitesmith.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds and ranks internal links on a fetched page.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Discover parses anchors, keeps same-domain http(s) links that aren't
// non-content pages, normalizes them (scheme+host+path, trailing slash
// stripped, query/fragment dropped), deduplicates, scores by relevance
// and returns up to limit URLs. Ties keep first-discovered order.
func (d *Discoverer) Discover(rawHTML string, baseURL string, limit int) ([]string, error) {
	if strings.TrimSpace(rawHTML) == "" || limit <= 0 {
		return []string{}, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "invalid base URL: %v", err)
	}
	baseDomain := strings.ToLower(base.Host)
	baseNormalized := strings.TrimRight(baseURL, "/")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []sitesmith.ScoredLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		if !strings.EqualFold(resolved.Host, baseDomain) {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		lowerFull := strings.ToLower(resolved.String())
		for _, pattern := range skipPatterns {
			if strings.Contains(lowerFull, pattern) {
				return
			}
		}
		// Anchor-only links point back at the page itself.
		if resolved.Fragment != "" && resolved.Path == "" {
			return
		}

		normalized := strings.TrimRight(resolved.Scheme+"://"+resolved.Host+resolved.Path, "/")
		if seen[normalized] || normalized == baseNormalized {
			return
		}
		seen[normalized] = true

		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		links = append(links, sitesmith.ScoredLink{
			URL:   normalized,
			Score: scoreLink(resolved, text, sel),
			Text:  text,
		})
	})

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Score > links[j].Score
	})

	urls := make([]string, 0, limit)
	for _, link := range links {
		if len(urls) >= limit {
			break
		}
		urls = append(urls, link.URL)
	}
	return urls, nil
}

// scoreLink ranks a candidate: +10 for an important-page keyword in the
// path or anchor text (first match only), +5 for a path depth of at most
// two segments, +3 for an ancestor nav or header element.
func scoreLink(u *url.URL, anchorText string, sel *goquery.Selection) int {
	score := 0
	path := strings.ToLower(u.Path)

	for _, kw := range importantPageKeywords {
		if strings.Contains(path, kw) || strings.Contains(anchorText, kw) {
			score += keywordScore
			break
		}
	}

	depth := 0
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			depth++
		}
	}
	if depth <= maxPathDepth {
		score += shortPathScore
	}

	if sel.ParentsFiltered("nav, header").Length() > 0 {
		score += navScore
	}

	return score
}
