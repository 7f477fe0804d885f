// Package goquery provides HTML content extraction and internal link
// discovery on top of the goquery DOM library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"sitesmith"
)

// strippedElements are structurally non-content elements removed before
// extraction.
const strippedElements = "script, style, nav, header, footer, aside, noscript, iframe, svg, form"

// noiseKeywords flag boilerplate elements by class or id attribute.
var noiseKeywords = []string{
	"cookie", "popup", "modal", "advertisement", "ad-", "sidebar",
	"newsletter", "subscribe", "social", "share", "comment",
}

// minHeadingChars filters out decorative or icon-only headings.
const minHeadingChars = 3

// minSectionPartChars filters out trivial sibling fragments when
// collecting section content.
const minSectionPartChars = 20

// Ensure Extractor implements sitesmith.Extractor at compile time.
var _ sitesmith.Extractor = (*Extractor)(nil)

// Extractor turns raw markup into a structured page record using a
// deterministic pipeline: strip noise, read title and description, collect
// heading-delimited sections, and fall back to the main element's text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML into a page record. The URL and PageType
// fields are left empty for the caller. Empty input yields an all-empty
// record, never an error.
func (e *Extractor) Extract(rawHTML string) (*sitesmith.PageRecord, error) {
	record := &sitesmith.PageRecord{Sections: []sitesmith.Section{}}

	if strings.TrimSpace(rawHTML) == "" {
		return record, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strippedElements).Remove()
	removeNoise(doc)

	record.Title = extractTitle(doc)
	record.Description, _ = doc.Find(`meta[name="description"]`).Attr("content")
	record.Sections = extractSections(doc)

	main := doc.Find("main")
	if main.Length() == 0 {
		main = doc.Find("article")
	}
	if main.Length() == 0 {
		main = doc.Find("body")
	}
	if main.Length() > 0 {
		record.Content = sitesmith.Truncate(sitesmith.CollapseWhitespace(main.First().Text()), sitesmith.MaxContentChars)
		if contentHTML, err := main.First().Html(); err == nil {
			record.ContentHTML = contentHTML
		}
	}

	return record, nil
}

// removeNoise drops elements whose class or id matches a noise keyword.
func removeNoise(doc *goquery.Document) {
	doc.Find("[class], [id]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		attrs := strings.ToLower(class + " " + id)
		for _, kw := range noiseKeywords {
			if strings.Contains(attrs, kw) {
				sel.Remove()
				return
			}
		}
	})
}

// extractTitle reads the document title, falling back to the first h1.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// extractSections collects, for each h1/h2/h3 with visible text, the text
// of its following siblings up to the next heading. At most MaxSections
// sections are kept in document order, each capped at MaxSectionChars.
func extractSections(doc *goquery.Document) []sitesmith.Section {
	sections := []sitesmith.Section{}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		heading := strings.TrimSpace(sel.Text())
		if len([]rune(heading)) < minHeadingChars {
			return true
		}

		var parts []string
		for node := sel.Get(0).NextSibling; node != nil; node = node.NextSibling {
			if isHeading(node) {
				break
			}
			text := sitesmith.CollapseWhitespace(nodeText(node))
			if len([]rune(text)) > minSectionPartChars {
				parts = append(parts, text)
			}
		}
		if len(parts) == 0 {
			return true
		}

		sections = append(sections, sitesmith.Section{
			Heading: heading,
			Content: sitesmith.Truncate(strings.Join(parts, " "), sitesmith.MaxSectionChars),
		})
		return len(sections) < sitesmith.MaxSections
	})

	return sections
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3":
		return true
	}
	return false
}

// nodeText concatenates the text nodes under n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
