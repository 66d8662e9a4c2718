package mock

import (
	"context"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.Store = (*Store)(nil)

// Store is a mock implementation of newsscraper.Store.
type Store struct {
	DropAllFn func(ctx context.Context) error
}

func (s *Store) DropAll(ctx context.Context) error {
	return s.DropAllFn(ctx)
}
