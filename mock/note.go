package mock

import (
	"context"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of newsscraper.NoteService.
type NoteService struct {
	CreateNoteFn   func(ctx context.Context, note *newsscraper.Note) error
	FindNoteByIDFn func(ctx context.Context, id string) (*newsscraper.Note, error)
	FindNotesFn    func(ctx context.Context, filter newsscraper.NoteFilter) ([]*newsscraper.Note, error)
}

func (s *NoteService) CreateNote(ctx context.Context, note *newsscraper.Note) error {
	return s.CreateNoteFn(ctx, note)
}

func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*newsscraper.Note, error) {
	return s.FindNoteByIDFn(ctx, id)
}

func (s *NoteService) FindNotes(ctx context.Context, filter newsscraper.NoteFilter) ([]*newsscraper.Note, error) {
	return s.FindNotesFn(ctx, filter)
}

var _ newsscraper.NoteAttacher = (*NoteAttacher)(nil)

// NoteAttacher is a mock implementation of newsscraper.NoteAttacher.
type NoteAttacher struct {
	AttachNoteFn func(ctx context.Context, articleID string, fields map[string]string) (*newsscraper.Article, error)
}

func (a *NoteAttacher) AttachNote(ctx context.Context, articleID string, fields map[string]string) (*newsscraper.Article, error) {
	return a.AttachNoteFn(ctx, articleID, fields)
}
