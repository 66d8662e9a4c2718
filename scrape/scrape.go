// Package scrape provides the ingestion pipeline. It fetches the source
// page, replaces the stored articles with the ones extracted from it and
// reports how many were saved.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/newsscraper"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight article inserts.
const DefaultConcurrency = 10

// Scraper orchestrates a fetch, extract and store pass over the source page.
type Scraper struct {
	SourceURL   string
	Fetcher     newsscraper.Fetcher
	Extractor   newsscraper.Extractor
	Articles    newsscraper.ArticleService
	Store       newsscraper.Store
	RateLimiter newsscraper.DomainLimiter
	Logger      *slog.Logger
	Concurrency int
	RetryDelays []time.Duration

	// mu serializes runs so one run's reset cannot remove another run's
	// freshly inserted articles.
	mu sync.Mutex
}

// Result holds the outcome of a scrape.
type Result struct {
	Saved    int
	Failed   int
	Failures []Failure
}

// Failure describes a candidate that could not be stored.
type Failure struct {
	Position int
	Link     string
	Err      error
}

// ResetAndReplace fetches the source page, drops every stored article and
// note, and creates one article per extracted candidate.
//
// A fetch failure returns an error and leaves the store untouched. Once the
// store has been reset, individual insert failures are logged and reported
// in the Result rather than returned; the reset is not rolled back. All
// inserts have completed when ResetAndReplace returns.
func (s *Scraper) ResetAndReplace(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	begin := time.Now()
	logger := s.logger()

	html, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch source: %w", err)
	}

	// Parse before the reset so unparseable markup cannot empty the store.
	candidates, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract articles: %w", err)
	}

	if err := s.Store.DropAll(ctx); err != nil {
		return nil, fmt.Errorf("reset store: %w", err)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		result   Result
		position int
	)
	g.SetLimit(concurrency)

	for c := range candidates {
		pos := position
		position++
		g.Go(func() error {
			article := &newsscraper.Article{
				Title:    c.Title,
				Text:     c.Text,
				Link:     c.Link,
				Position: pos,
			}
			err := s.Articles.CreateArticle(ctx, article)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("create article", "position", pos, "link", c.Link, "err", err)
				result.Failed++
				result.Failures = append(result.Failures, Failure{Position: pos, Link: c.Link, Err: err})
				return nil
			}
			result.Saved++
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Position < result.Failures[j].Position
	})

	logger.Info("scrape",
		"url", s.SourceURL,
		"saved", result.Saved,
		"failed", result.Failed,
		"duration", time.Since(begin),
	)

	return &result, nil
}

func (s *Scraper) fetch(ctx context.Context) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(s.SourceURL)
		if err != nil {
			return "", newsscraper.Errorf(newsscraper.EINVALID, "invalid source URL %q: %v", s.SourceURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	return FetchWithRetryDelays(ctx, s.SourceURL, s.Fetcher.Fetch, s.logger(), s.RetryDelays)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
