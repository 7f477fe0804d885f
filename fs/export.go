package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"sitesmith"
)

// Exporter writes scraped pages as markdown files for human review, one
// file per page under a site-named directory.
type Exporter struct {
	dir  string
	conv sitesmith.Converter
}

// NewExporter creates an Exporter rooted at dir that converts page HTML
// with conv.
func NewExporter(dir string, conv sitesmith.Converter) *Exporter {
	return &Exporter{dir: dir, conv: conv}
}

// Export writes every page of a scrape result as a markdown file and
// returns the export directory. Pages whose HTML fails conversion fall
// back to their plain-text content.
func (e *Exporter) Export(ctx context.Context, result *sitesmith.ScrapeResult) (string, error) {
	if result == nil || len(result.Pages) == 0 {
		return "", sitesmith.Errorf(sitesmith.EINVALID, "nothing to export")
	}

	siteDir := filepath.Join(e.dir, exportDirName(result.SourceURL))
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "failed to create export dir: %v", err)
	}

	for _, page := range result.Pages {
		body := page.Content
		if page.ContentHTML != "" {
			if md, err := e.conv.Convert(ctx, page.ContentHTML); err == nil && strings.TrimSpace(md) != "" {
				body = md
			}
		}

		var sb strings.Builder
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "url: %s\n", page.URL)
		fmt.Fprintf(&sb, "title: %q\n", page.Title)
		fmt.Fprintf(&sb, "type: %s\n", page.PageType)
		sb.WriteString("---\n\n")
		sb.WriteString(body)
		sb.WriteString("\n")

		path := filepath.Join(siteDir, pageFileName(page.URL))
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			return "", sitesmith.Errorf(sitesmith.EINTERNAL, "failed to write %s: %v", path, err)
		}
	}

	return siteDir, nil
}

// exportDirName names the site directory after its domain.
func exportDirName(siteURL string) string {
	domain := strings.ToLower(sitesmith.URLDomain(siteURL))
	domain = strings.TrimPrefix(domain, "www.")
	if domain == "" {
		return "site"
	}
	return strings.ReplaceAll(domain, ".", "_")
}

// pageFileName maps a page URL to a flat markdown filename. The site
// root becomes index.md; other paths join their segments with
// underscores.
func pageFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "page.md"
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "index.md"
	}

	name := strings.ReplaceAll(path, "/", "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		}
		return '-'
	}, name)

	return name + ".md"
}
