// Package annotate links user notes to stored articles.
package annotate

import (
	"context"
	"fmt"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.NoteAttacher = (*Annotator)(nil)

// Annotator implements newsscraper.NoteAttacher on top of the article and
// note services.
type Annotator struct {
	Articles newsscraper.ArticleService
	Notes    newsscraper.NoteService
}

// AttachNote creates a note and makes it the article's note, replacing any
// previous reference. Replaced notes are kept. The note is created before
// the article is looked up, so a missing article leaves an orphaned note
// behind and returns ENOTFOUND.
func (a *Annotator) AttachNote(ctx context.Context, articleID string, fields map[string]string) (*newsscraper.Article, error) {
	note := &newsscraper.Note{Fields: fields}
	if err := a.Notes.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	article, err := a.Articles.UpdateArticleNote(ctx, articleID, note.ID)
	if err != nil {
		return nil, fmt.Errorf("attach note %s: %w", note.ID, err)
	}

	return article, nil
}
