package slog

import (
	"context"
	"log/slog"
	"time"

	"sitesmith"
)

// Ensure LoggingKnowledgeStore implements sitesmith.KnowledgeStore.
var _ sitesmith.KnowledgeStore = (*LoggingKnowledgeStore)(nil)

// LoggingKnowledgeStore wraps a KnowledgeStore with logging on load and
// save.
type LoggingKnowledgeStore struct {
	next   sitesmith.KnowledgeStore
	logger *slog.Logger
}

// NewLoggingKnowledgeStore creates a new LoggingKnowledgeStore.
func NewLoggingKnowledgeStore(next sitesmith.KnowledgeStore, logger *slog.Logger) *LoggingKnowledgeStore {
	return &LoggingKnowledgeStore{next: next, logger: logger}
}

// Key delegates to the wrapped store.
func (s *LoggingKnowledgeStore) Key(url string) string {
	return s.next.Key(url)
}

// Has delegates to the wrapped store.
func (s *LoggingKnowledgeStore) Has(ctx context.Context, url string) bool {
	return s.next.Has(ctx, url)
}

// Load delegates to the wrapped store and logs the outcome.
func (s *LoggingKnowledgeStore) Load(ctx context.Context, url string) (doc *sitesmith.KnowledgeDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("knowledge load",
			"url", url,
			"hit", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Load(ctx, url)
}

// Save delegates to the wrapped store and logs the location.
func (s *LoggingKnowledgeStore) Save(ctx context.Context, doc *sitesmith.KnowledgeDocument, url string) (location string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("knowledge save",
			"url", url,
			"location", location,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, doc, url)
}
