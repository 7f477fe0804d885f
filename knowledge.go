package sitesmith

import (
	"context"
	"time"
)

// MaxSearchResultChars caps each secondary search result stored in a
// knowledge document.
const MaxSearchResultChars = 1000

// Metadata describes a knowledge document's provenance.
type Metadata struct {
	URL          string    `json:"url"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	PagesScraped int       `json:"pages_scraped"`
	HasSecondary bool      `json:"has_secondary"`
}

// PrimaryContent holds the crawled pages, homepage first.
type PrimaryContent struct {
	Pages []PageRecord `json:"pages"`
}

// SearchResult is one secondary (web-search-derived) supplement entry.
type SearchResult struct {
	Index  int    `json:"index"`
	Result string `json:"result"`
}

// SecondaryContent holds the search supplement in plan order.
type SecondaryContent struct {
	Searches []SearchResult `json:"searches"`
}

// KnowledgeDocument is the persisted, assembled representation of one
// researched site: primary (crawled) content plus an optional secondary
// (search-derived) supplement. It is built once and read back unchanged.
type KnowledgeDocument struct {
	Metadata  Metadata         `json:"metadata"`
	Primary   PrimaryContent   `json:"primary"`
	Secondary SecondaryContent `json:"secondary"`
}

// NewKnowledgeDocument assembles a knowledge document from a scrape result
// and an optional search supplement. Pages are copied verbatim; each
// search result is truncated to MaxSearchResultChars and indexed from 1.
// A nil scrape result yields a document with empty primary content.
func NewKnowledgeDocument(url string, scraped *ScrapeResult, name string, searchResults []string) *KnowledgeDocument {
	doc := &KnowledgeDocument{
		Metadata: Metadata{
			URL:          url,
			Name:         name,
			CreatedAt:    time.Now().UTC(),
			HasSecondary: len(searchResults) > 0,
		},
		Primary:   PrimaryContent{Pages: []PageRecord{}},
		Secondary: SecondaryContent{Searches: []SearchResult{}},
	}

	if scraped != nil {
		doc.Metadata.PagesScraped = scraped.TotalPages
		doc.Primary.Pages = append(doc.Primary.Pages, scraped.Pages...)
	}

	for i, result := range searchResults {
		doc.Secondary.Searches = append(doc.Secondary.Searches, SearchResult{
			Index:  i + 1,
			Result: Truncate(result, MaxSearchResultChars),
		})
	}

	return doc
}

// KnowledgeStore persists knowledge documents keyed deterministically by
// source URL. Load treats corrupt content as a miss (ENOTFOUND), never a
// fatal error; the caller re-derives and overwrites.
type KnowledgeStore interface {
	// Key returns the deterministic cache key for a URL.
	Key(url string) string

	// Has reports whether a document is cached for the URL.
	Has(ctx context.Context, url string) bool

	// Load retrieves the cached document for a URL.
	// Returns ENOTFOUND if absent or unreadable.
	Load(ctx context.Context, url string) (*KnowledgeDocument, error)

	// Save persists the document and returns its storage location.
	Save(ctx context.Context, doc *KnowledgeDocument, url string) (string, error)
}
