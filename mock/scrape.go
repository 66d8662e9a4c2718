package mock

import (
	"context"

	"github.com/fwojciec/newsscraper/scrape"
)

// Scraper is a mock of the ingestion pipeline.
type Scraper struct {
	ResetAndReplaceFn func(ctx context.Context) (*scrape.Result, error)
}

func (s *Scraper) ResetAndReplace(ctx context.Context) (*scrape.Result, error) {
	return s.ResetAndReplaceFn(ctx)
}
