package sitesmith

import "strings"

// PageType distinguishes the crawl entry point from discovered pages.
type PageType string

// Page types.
const (
	PageTypeHomepage PageType = "homepage"
	PageTypeSubpage  PageType = "subpage"
)

// Content caps applied during extraction.
const (
	MaxSections     = 10
	MaxSectionChars = 1000
	MaxContentChars = 3000
)

// Section is a heading-delimited slice of page content.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// PageRecord is the structured content of one fetched page.
// Title and Description may be empty but are never null; Sections holds at
// most MaxSections entries, each capped at MaxSectionChars; Content is the
// whitespace-collapsed fallback body text capped at MaxContentChars.
type PageRecord struct {
	URL         string    `json:"url"`
	PageType    PageType  `json:"page_type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	Content     string    `json:"content"`

	// ContentHTML is the raw markup of the page's main element, kept in
	// memory for markdown export. It is never persisted to the cache.
	ContentHTML string `json:"-"`
}

// Validate returns an error if the record violates its content caps.
func (p *PageRecord) Validate() error {
	if len(p.Sections) > MaxSections {
		return Errorf(EINVALID, "page has %d sections, max is %d", len(p.Sections), MaxSections)
	}
	for _, s := range p.Sections {
		if len([]rune(s.Content)) > MaxSectionChars {
			return Errorf(EINVALID, "section %q exceeds %d characters", s.Heading, MaxSectionChars)
		}
	}
	if len([]rune(p.Content)) > MaxContentChars {
		return Errorf(EINVALID, "page content exceeds %d characters", MaxContentChars)
	}
	return nil
}

// Extractor turns raw markup into a structured page record.
// The URL and PageType fields are left for the caller to fill in.
// Empty input yields an all-empty record, never an error.
type Extractor interface {
	Extract(html string) (*PageRecord, error)
}

// Truncate caps s at n characters (runes, not bytes).
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// CollapseWhitespace replaces runs of whitespace with a single space
// and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
