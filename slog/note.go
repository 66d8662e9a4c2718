package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsscraper"
)

// Ensure LoggingNoteAttacher implements newsscraper.NoteAttacher.
var _ newsscraper.NoteAttacher = (*LoggingNoteAttacher)(nil)

// LoggingNoteAttacher wraps a NoteAttacher with logging.
type LoggingNoteAttacher struct {
	next   newsscraper.NoteAttacher
	logger *slog.Logger
}

// NewLoggingNoteAttacher creates a new LoggingNoteAttacher.
func NewLoggingNoteAttacher(next newsscraper.NoteAttacher, logger *slog.Logger) *LoggingNoteAttacher {
	return &LoggingNoteAttacher{next: next, logger: logger}
}

// AttachNote delegates to the wrapped attacher and logs the outcome.
func (a *LoggingNoteAttacher) AttachNote(ctx context.Context, articleID string, fields map[string]string) (article *newsscraper.Article, err error) {
	defer func(begin time.Time) {
		var noteID string
		if article != nil && article.NoteID != nil {
			noteID = *article.NoteID
		}
		a.logger.Info("attach note",
			"article", articleID,
			"note", noteID,
			"fields", len(fields),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AttachNote(ctx, articleID, fields)
}
