package newsscraper

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field length limits enforced by Article.Validate.
const (
	MaxTitleLength = 1024
	MaxTextLength  = 64 * 1024
	MaxLinkLength  = 2048
)

// Article represents a news item scraped from the source site.
// Every field except the note reference is immutable once created.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Link        string    `json:"link"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`

	// NoteID references the attached note, if any.
	NoteID *string `json:"noteId,omitempty"`

	// Note is only set by lookups that resolve the reference.
	Note *Note `json:"note,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&a.Text, validation.Length(0, MaxTextLength)),
		validation.Field(&a.Link, validation.Length(0, MaxLinkLength)),
	)
	if err != nil {
		return Errorf(EINVALID, "invalid article: %v", err)
	}
	return nil
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID with its note resolved.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// UpdateArticleNote points the article's note reference at noteID,
	// replacing any previous reference, and returns the updated article.
	// Returns ENOTFOUND if article does not exist.
	UpdateArticleNote(ctx context.Context, id string, noteID string) (*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID   *string `json:"id"`
	Link *string `json:"link"`

	// PopulateNote resolves the note reference of every returned article.
	PopulateNote bool `json:"populateNote"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
