package mock

import (
	"iter"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsscraper.Extractor.
type Extractor struct {
	ExtractFn func(html string) (iter.Seq[newsscraper.Candidate], error)
}

func (e *Extractor) Extract(html string) (iter.Seq[newsscraper.Candidate], error) {
	return e.ExtractFn(html)
}
