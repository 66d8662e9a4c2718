package newsscraper

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Limits enforced by Note.Validate.
const (
	MaxNoteFields      = 32
	MaxNoteValueLength = 16 * 1024
)

// Note represents a free-form user note. Its fields have no fixed schema.
type Note struct {
	ID        string            `json:"id"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	err := validation.Validate(n.Fields,
		validation.Length(0, MaxNoteFields),
		validation.By(noteKeysPresent),
		validation.Each(validation.Length(0, MaxNoteValueLength)),
	)
	if err != nil {
		return Errorf(EINVALID, "invalid note: %v", err)
	}
	return nil
}

func noteKeysPresent(value any) error {
	fields, _ := value.(map[string]string)
	for k := range fields {
		if k == "" {
			return errors.New("field names must not be empty")
		}
	}
	return nil
}

// NoteService represents a service for managing notes.
type NoteService interface {
	// CreateNote creates a new note.
	CreateNote(ctx context.Context, note *Note) error

	// FindNoteByID retrieves a note by ID.
	// Returns ENOTFOUND if note does not exist.
	FindNoteByID(ctx context.Context, id string) (*Note, error)

	// FindNotes retrieves notes matching the filter.
	FindNotes(ctx context.Context, filter NoteFilter) ([]*Note, error)
}

// NoteFilter represents a filter for FindNotes.
type NoteFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NoteAttacher creates notes and associates them with articles.
type NoteAttacher interface {
	// AttachNote creates a note from fields and makes it the article's note.
	// The note is created even when the article does not exist, in which
	// case ENOTFOUND is returned.
	AttachNote(ctx context.Context, articleID string, fields map[string]string) (*Article, error)
}
