// Package fs persists knowledge documents and markdown exports on the
// local filesystem.
package fs

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"sitesmith"
)

// Ensure KnowledgeStore implements sitesmith.KnowledgeStore at compile time.
var _ sitesmith.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore reads and writes knowledge documents as pretty-printed
// JSON files, one per site, under a base directory.
type KnowledgeStore struct {
	dir string
}

// NewKnowledgeStore creates a store rooted at dir. The directory is
// created lazily on first save.
func NewKnowledgeStore(dir string) *KnowledgeStore {
	return &KnowledgeStore{dir: dir}
}

// Key derives the cache filename stem for a URL: the lowercased domain
// with any leading "www." removed and dots replaced by underscores,
// joined with the first 12 hex chars of the URL's MD5. The hash suffix
// keeps distinct URLs on the same domain from colliding.
func (s *KnowledgeStore) Key(rawURL string) string {
	normalized := sitesmith.NormalizeURL(rawURL)

	domain := strings.ToLower(sitesmith.URLDomain(normalized))
	domain = strings.TrimPrefix(domain, "www.")
	domain = strings.ReplaceAll(domain, ".", "_")
	if domain == "" {
		domain = "site"
	}

	sum := md5.Sum([]byte(normalized))
	return domain + "_" + hex.EncodeToString(sum[:])[:12]
}

// Has reports whether a knowledge document exists for the URL.
func (s *KnowledgeStore) Has(ctx context.Context, rawURL string) bool {
	_, err := os.Stat(s.path(rawURL))
	return err == nil
}

// Load reads the knowledge document for a URL. A missing or unreadable
// file returns ENOTFOUND so callers fall through to a fresh scrape.
func (s *KnowledgeStore) Load(ctx context.Context, rawURL string) (*sitesmith.KnowledgeDocument, error) {
	data, err := os.ReadFile(s.path(rawURL))
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.ENOTFOUND, "no cached knowledge for %q", rawURL)
	}

	var doc sitesmith.KnowledgeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, sitesmith.Errorf(sitesmith.ENOTFOUND, "cached knowledge for %q is corrupt", rawURL)
	}

	return &doc, nil
}

// Save writes the knowledge document for a URL and returns its location.
func (s *KnowledgeStore) Save(ctx context.Context, doc *sitesmith.KnowledgeDocument, rawURL string) (string, error) {
	if doc == nil {
		return "", sitesmith.Errorf(sitesmith.EINVALID, "document is required")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "failed to create knowledge dir: %v", err)
	}

	path := s.path(rawURL)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "failed to write knowledge file: %v", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "failed to encode knowledge document: %v", err)
	}

	return path, nil
}

func (s *KnowledgeStore) path(rawURL string) string {
	return filepath.Join(s.dir, s.Key(rawURL)+".json")
}
