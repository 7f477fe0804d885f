package sitesmith

import (
	"fmt"
	"strings"
)

// MaxContextChars caps the rendered knowledge context handed to the
// prompt layer.
const MaxContextChars = 10000

// KeyPageKeywords is the vocabulary that promotes a subpage to a key page
// during context rendering.
var KeyPageKeywords = []string{
	"about", "contact", "services", "products", "team",
	"pricing", "faq", "books", "publications", "cv", "resume",
}

// Rendering caps. Homepage gets the most room because the context is
// truncated at MaxContextChars and the most decision-relevant content
// must survive truncation.
const (
	homepageSectionChars = 800
	homepageContentChars = 1500
	maxKeyPages          = 5
	keyPageSections      = 4
	keyPageSectionChars  = 400
	keyPageContentChars  = 600
	maxArticlePages      = 3
	articleDescChars     = 200
	maxSecondaryEntries  = 5
	secondaryEntryChars  = 500
)

// RenderContext serializes a knowledge document into the prompt context
// string, capped at MaxContextChars. Pages are ranked: homepage first with
// full detail, then key pages (URL matches KeyPageKeywords), then the
// remaining pages as title-only article entries, then the lower-reliability
// search supplement.
func RenderContext(doc *KnowledgeDocument) string {
	var parts []string

	parts = append(parts,
		"=== WEBSITE INFORMATION ===",
		"Name: "+orUnknown(doc.Metadata.Name),
		"URL: "+doc.Metadata.URL,
		fmt.Sprintf("Pages analyzed: %d", doc.Metadata.PagesScraped),
		"",
	)

	var homepage *PageRecord
	var keyPages, articlePages []PageRecord

	for i := range doc.Primary.Pages {
		page := doc.Primary.Pages[i]
		switch {
		case page.PageType == PageTypeHomepage && homepage == nil:
			homepage = &doc.Primary.Pages[i]
		case isKeyPage(page.URL):
			keyPages = append(keyPages, page)
		default:
			articlePages = append(articlePages, page)
		}
	}

	parts = append(parts,
		"=== PRIMARY SOURCE (Website Content) ===",
		"[This is the most reliable information - directly from the website]",
		"",
	)

	if homepage != nil {
		parts = append(parts, "## HOMEPAGE (Main Information)")
		if homepage.Title != "" {
			parts = append(parts, "Title: "+homepage.Title)
		}
		if homepage.Description != "" {
			parts = append(parts, "Description: "+homepage.Description)
		}
		for _, section := range homepage.Sections {
			if section.Heading != "" {
				parts = append(parts, "\n### "+section.Heading)
			}
			if section.Content != "" {
				parts = append(parts, Truncate(section.Content, homepageSectionChars))
			}
		}
		if homepage.Content != "" {
			parts = append(parts, "\nMain content: "+Truncate(homepage.Content, homepageContentChars))
		}
		parts = append(parts, "\n---\n")
	}

	for i, page := range keyPages {
		if i >= maxKeyPages {
			break
		}
		if page.Title != "" {
			parts = append(parts, "## "+page.Title)
		}
		if page.Description != "" {
			parts = append(parts, "Description: "+page.Description)
		}
		for j, section := range page.Sections {
			if j >= keyPageSections {
				break
			}
			if section.Heading != "" {
				parts = append(parts, "\n### "+section.Heading)
			}
			if section.Content != "" {
				parts = append(parts, Truncate(section.Content, keyPageSectionChars))
			}
		}
		if len(page.Sections) == 0 && page.Content != "" {
			parts = append(parts, Truncate(page.Content, keyPageContentChars))
		}
		parts = append(parts, "\n---\n")
	}

	if len(articlePages) > 0 {
		parts = append(parts, "\n## OTHER PAGES (Summaries)")
		for i, page := range articlePages {
			if i >= maxArticlePages {
				break
			}
			if page.Title != "" {
				parts = append(parts, "- "+page.Title)
			}
			if page.Description != "" {
				parts = append(parts, "  "+Truncate(page.Description, articleDescChars))
			}
		}
		parts = append(parts, "\n---\n")
	}

	if len(doc.Secondary.Searches) > 0 {
		parts = append(parts,
			"\n=== SECONDARY SOURCE (Web Search Supplement) ===",
			"[Use this only if primary source doesn't have the answer]",
			"",
		)
		for i, search := range doc.Secondary.Searches {
			if i >= maxSecondaryEntries {
				break
			}
			parts = append(parts, fmt.Sprintf("Search result %d:", search.Index))
			parts = append(parts, Truncate(search.Result, secondaryEntryChars))
			parts = append(parts, "")
		}
	}

	return Truncate(strings.Join(parts, "\n"), MaxContextChars)
}

// RenderScrapeContext serializes raw scrape output for gap analysis,
// before any knowledge document exists.
func RenderScrapeContext(scraped *ScrapeResult) string {
	if scraped == nil || !scraped.Success {
		return ""
	}

	var parts []string
	parts = append(parts,
		"=== WEBSITE CONTENT (Primary Source) ===",
		"Source: "+scraped.SourceURL,
		fmt.Sprintf("Pages scraped: %d", scraped.TotalPages),
		"",
	)

	for _, page := range scraped.Pages {
		if page.Title != "" {
			parts = append(parts, "## "+page.Title)
		}
		if page.URL != "" {
			parts = append(parts, "URL: "+page.URL)
		}
		if page.Description != "" {
			parts = append(parts, "Description: "+page.Description)
		}
		for i, section := range page.Sections {
			if i >= 5 {
				break
			}
			if section.Heading != "" {
				parts = append(parts, "\n### "+section.Heading)
			}
			if section.Content != "" {
				parts = append(parts, Truncate(section.Content, 500))
			}
		}
		if len(page.Sections) == 0 && page.Content != "" {
			parts = append(parts, Truncate(page.Content, 800))
		}
		parts = append(parts, "\n---\n")
	}

	return strings.Join(parts, "\n")
}

func isKeyPage(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, kw := range KeyPageKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
