package sitesmith

import (
	"context"
	"net/url"
	"strings"
	"unicode"
)

// Caps on text handed to the LLM-backed capabilities.
const (
	MaxGapContextChars  = 6000
	MaxPlanContextChars = 4000
	MaxNameSampleChars  = 2000
	MaxSearches         = 5
)

// GapAnalysis is the gap detector's verdict on extracted content.
type GapAnalysis struct {
	HasGaps             bool     `json:"has_gaps"`
	ConfidenceScore     int      `json:"confidence_score"`
	GapsFound           []string `json:"gaps_found"`
	RecommendedSearches []string `json:"recommended_searches"`
	Reasoning           string   `json:"reasoning"`
}

// GapAnalyzer judges whether extracted site content has information gaps
// worth filling with web searches.
type GapAnalyzer interface {
	AnalyzeGaps(ctx context.Context, content string, url string) (*GapAnalysis, error)
}

// SearchItem is one planned gap-filling web search.
type SearchItem struct {
	Reason string `json:"reason"`
	Query  string `json:"query"`
}

// SearchPlanner plans targeted web searches for content gaps.
// Returns at most MaxSearches items.
type SearchPlanner interface {
	PlanSearches(ctx context.Context, url string, content string) ([]SearchItem, error)
}

// WebSearcher runs one planned search and returns a free-text summary.
type WebSearcher interface {
	Search(ctx context.Context, item SearchItem) (string, error)
}

// NameExtractor derives the name of the site's main subject from a text
// sample. An empty result means the caller should fall back to
// SiteNameFromURL.
type NameExtractor interface {
	ExtractName(ctx context.Context, text string, url string) (string, error)
}

// Report is a generated research report about a site.
type Report struct {
	ShortSummary   string `json:"short_summary"`
	MarkdownReport string `json:"markdown_report"`
}

// ReportWriter turns a rendered knowledge context into a long-form report.
type ReportWriter interface {
	WriteReport(ctx context.Context, url string, content string) (*Report, error)
}

// Asker answers a question about a site from its rendered knowledge
// context.
type Asker interface {
	Ask(ctx context.Context, name, url, content, question string) (string, error)
}

// SiteNameFromURL derives a display name from a URL's host: the first
// label with any leading "www." stripped, title-cased. Returns "the site"
// when nothing usable remains.
func SiteNameFromURL(rawURL string) string {
	u, err := url.Parse(NormalizeURL(rawURL))
	if err != nil || u.Host == "" {
		return "the site"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return "the site"
	}
	r := []rune(label)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
