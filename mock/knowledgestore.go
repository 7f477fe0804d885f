package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore is a mock implementation of sitesmith.KnowledgeStore.
type KnowledgeStore struct {
	KeyFn  func(url string) string
	HasFn  func(ctx context.Context, url string) bool
	LoadFn func(ctx context.Context, url string) (*sitesmith.KnowledgeDocument, error)
	SaveFn func(ctx context.Context, doc *sitesmith.KnowledgeDocument, url string) (string, error)
}

func (s *KnowledgeStore) Key(url string) string {
	return s.KeyFn(url)
}

func (s *KnowledgeStore) Has(ctx context.Context, url string) bool {
	return s.HasFn(ctx, url)
}

func (s *KnowledgeStore) Load(ctx context.Context, url string) (*sitesmith.KnowledgeDocument, error) {
	return s.LoadFn(ctx, url)
}

func (s *KnowledgeStore) Save(ctx context.Context, doc *sitesmith.KnowledgeDocument, url string) (string, error) {
	return s.SaveFn(ctx, doc, url)
}
