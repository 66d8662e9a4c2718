package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsscraper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsscraper.NoteService = (*NoteService)(nil)

// NoteService implements newsscraper.NoteService using SQLite.
type NoteService struct {
	db *DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db}
}

// CreateNote creates a new note.
func (s *NoteService) CreateNote(ctx context.Context, note *newsscraper.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	fields := note.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode note fields: %w", err)
	}

	note.ID = uuid.New().String()
	note.CreatedAt = time.Now().UTC()
	note.Fields = fields

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO notes (id, fields, created_at)
		VALUES (?, ?, ?)
	`, note.ID, string(data), note.CreatedAt.Format(timeFormat))

	return err
}

// FindNoteByID retrieves a note by ID.
func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*newsscraper.Note, error) {
	return findNoteByID(ctx, s.db, id)
}

// FindNotes retrieves notes matching the filter, oldest first.
func (s *NoteService) FindNotes(ctx context.Context, filter newsscraper.NoteFilter) ([]*newsscraper.Note, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, fields, created_at FROM notes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*newsscraper.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

func findNoteByID(ctx context.Context, db *DB, id string) (*newsscraper.Note, error) {
	row := db.QueryRowContext(ctx, "SELECT id, fields, created_at FROM notes WHERE id = ?", id)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsscraper.Errorf(newsscraper.ENOTFOUND, "note not found")
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

func scanNote(row scanner) (*newsscraper.Note, error) {
	var note newsscraper.Note
	var fields, createdAt string

	if err := row.Scan(&note.ID, &fields, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fields), &note.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode note fields: %w", err)
	}

	var err error
	note.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &note, nil
}
