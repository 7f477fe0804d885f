// Package research orchestrates the full pipeline for one site: cache
// lookup, scrape, gap analysis, supplemental web searches, knowledge
// assembly and persistence.
package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"sitesmith"
)

// Status summarizes how a research run went.
type Status struct {
	FromCache    bool     `json:"from_cache"`
	PagesScraped int      `json:"pages_scraped"`
	SearchesRun  int      `json:"searches_run"`
	GapsFound    int      `json:"gaps_found"`
	Warnings     []string `json:"warnings"`
}

// Result is the outcome of a research run: the assembled knowledge
// document plus the rendered prompt context derived from it.
type Result struct {
	Status     Status
	Context    string
	Name       string
	Document   *sitesmith.KnowledgeDocument
	PageErrors []sitesmith.PageError
}

// Service runs site research end to end. Scraper and Store are required;
// the LLM-backed collaborators and Runs are optional and skipped when nil,
// degrading to scrape-only research without history.
type Service struct {
	Scraper sitesmith.SiteScraper
	Store   sitesmith.KnowledgeStore

	Gaps     sitesmith.GapAnalyzer
	Planner  sitesmith.SearchPlanner
	Searcher sitesmith.WebSearcher
	Names    sitesmith.NameExtractor

	Runs sitesmith.RunService
}

// HasCached reports whether knowledge for the URL is already stored.
func (s *Service) HasCached(ctx context.Context, rawURL string) bool {
	url := sitesmith.NormalizeURL(rawURL)
	if url == "" {
		return false
	}
	return s.Store.Has(ctx, url)
}

// RunResearch researches a site and returns its knowledge context. A
// cached document is reused unless forceRefresh is set. Fresh runs scrape
// the site, fill detected content gaps with web searches, fall back to
// search-only research when the scrape fails entirely, and persist the
// assembled document. Non-fatal problems surface as warnings, not errors.
func (s *Service) RunResearch(ctx context.Context, rawURL string, forceRefresh bool) (*Result, error) {
	url := sitesmith.NormalizeURL(rawURL)
	if url == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "URL is required")
	}

	begin := time.Now()

	if !forceRefresh {
		if doc, err := s.Store.Load(ctx, url); err == nil {
			result := &Result{
				Status: Status{
					FromCache:    true,
					PagesScraped: doc.Metadata.PagesScraped,
					Warnings:     []string{},
				},
				Context:  sitesmith.RenderContext(doc),
				Name:     doc.Metadata.Name,
				Document: doc,
			}
			s.record(ctx, url, result, time.Since(begin))
			return result, nil
		}
	}

	result := &Result{Status: Status{Warnings: []string{}}}

	scraped, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	result.PageErrors = scraped.Errors
	result.Status.PagesScraped = scraped.TotalPages

	var searchResults []string
	if scraped.Success {
		searchResults = s.fillGaps(ctx, url, scraped, result)
	} else {
		result.warn("scrape failed, falling back to web search only")
		searchResults = s.searchOnly(ctx, url, result)
	}

	if !scraped.Success && len(searchResults) == 0 {
		return nil, sitesmith.Errorf(sitesmith.EUNAVAILABLE, "no content available for %q", url)
	}

	name := s.resolveName(ctx, url, scraped, searchResults, result)

	doc := sitesmith.NewKnowledgeDocument(url, scraped, name, searchResults)
	if _, err := s.Store.Save(ctx, doc, url); err != nil {
		result.warn(fmt.Sprintf("failed to save knowledge: %v", err))
	}

	result.Context = sitesmith.RenderContext(doc)
	result.Name = name
	result.Document = doc

	s.record(ctx, url, result, time.Since(begin))
	return result, nil
}

// fillGaps analyzes the scraped content for missing information and runs
// the recommended searches. Analyzer or search failures degrade to
// warnings.
func (s *Service) fillGaps(ctx context.Context, url string, scraped *sitesmith.ScrapeResult, result *Result) []string {
	if s.Gaps == nil || s.Searcher == nil {
		return nil
	}

	analysis, err := s.Gaps.AnalyzeGaps(ctx, sitesmith.RenderScrapeContext(scraped), url)
	if err != nil {
		result.warn(fmt.Sprintf("gap analysis failed: %v", err))
		return nil
	}
	result.Status.GapsFound = len(analysis.GapsFound)

	if !analysis.HasGaps {
		return nil
	}

	var searchResults []string
	for i, query := range analysis.RecommendedSearches {
		if i >= sitesmith.MaxSearches {
			break
		}
		item := sitesmith.SearchItem{Query: query, Reason: "fill a gap in the scraped content"}
		if i < len(analysis.GapsFound) {
			item.Reason = analysis.GapsFound[i]
		}

		summary, err := s.Searcher.Search(ctx, item)
		if err != nil {
			result.warn(fmt.Sprintf("search %q failed: %v", item.Query, err))
			continue
		}
		result.Status.SearchesRun++
		searchResults = append(searchResults, summary)
	}

	return searchResults
}

// searchOnly plans and runs searches about a site that could not be
// scraped.
func (s *Service) searchOnly(ctx context.Context, url string, result *Result) []string {
	if s.Planner == nil || s.Searcher == nil {
		return nil
	}

	plan, err := s.Planner.PlanSearches(ctx, url, "")
	if err != nil {
		result.warn(fmt.Sprintf("search planning failed: %v", err))
		return nil
	}

	var searchResults []string
	for i, item := range plan {
		if i >= sitesmith.MaxSearches {
			break
		}
		summary, err := s.Searcher.Search(ctx, item)
		if err != nil {
			result.warn(fmt.Sprintf("search %q failed: %v", item.Query, err))
			continue
		}
		result.Status.SearchesRun++
		searchResults = append(searchResults, summary)
	}

	return searchResults
}

// resolveName extracts the site's subject name from whatever content the
// run produced, falling back to a name derived from the URL.
func (s *Service) resolveName(ctx context.Context, url string, scraped *sitesmith.ScrapeResult, searchResults []string, result *Result) string {
	sample := nameSample(scraped, searchResults)

	if s.Names != nil && sample != "" {
		name, err := s.Names.ExtractName(ctx, sample, url)
		if err != nil {
			result.warn(fmt.Sprintf("name extraction failed: %v", err))
		} else if name != "" {
			return name
		}
	}

	return sitesmith.SiteNameFromURL(url)
}

// nameSample picks the text most likely to contain the subject's name:
// the homepage, else the search results.
func nameSample(scraped *sitesmith.ScrapeResult, searchResults []string) string {
	if scraped != nil && len(scraped.Pages) > 0 {
		page := scraped.Pages[0]
		return sitesmith.Truncate(strings.TrimSpace(page.Title+"\n"+page.Description+"\n"+page.Content), sitesmith.MaxNameSampleChars)
	}
	return sitesmith.Truncate(strings.Join(searchResults, "\n"), sitesmith.MaxNameSampleChars)
}

// record writes the run to history. History failures are silent; the
// research result is already complete.
func (s *Service) record(ctx context.Context, url string, result *Result, duration time.Duration) {
	if s.Runs == nil {
		return
	}

	run := &sitesmith.Run{
		URL:          url,
		Name:         result.Name,
		FromCache:    result.Status.FromCache,
		PagesScraped: result.Status.PagesScraped,
		SearchesRun:  result.Status.SearchesRun,
		GapsFound:    result.Status.GapsFound,
		Warnings:     len(result.Status.Warnings),
		ContextHash:  ContextHash(result.Context),
		Duration:     duration,
	}
	_ = s.Runs.CreateRun(ctx, run)
}

func (r *Result) warn(msg string) {
	r.Status.Warnings = append(r.Status.Warnings, msg)
}

// ContextHash fingerprints a rendered context so runs with identical
// knowledge can be spotted in history.
func ContextHash(context string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(context))
}
