package newsscraper

import "context"

// Store represents the document store as a whole.
type Store interface {
	// DropAll irreversibly removes every article and note.
	DropAll(ctx context.Context) error
}
