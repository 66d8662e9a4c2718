package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/newsscraper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsscraper.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsscraper.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = "id, title, text, link, content_hash, position, note_id, created_at"

// CreateArticle creates a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsscraper.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Title, article.Text, article.Link)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, text, link, content_hash, position, note_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Text, article.Link, article.ContentHash,
		article.Position, nullString(article.NoteID), article.CreatedAt.Format(timeFormat))

	return err
}

// FindArticleByID retrieves an article by ID and resolves its note.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsscraper.Article, error) {
	article, err := s.findArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populateNote(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter in page order.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsscraper.ArticleFilter) ([]*newsscraper.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Link != nil {
		query.WriteString(" AND link = ?")
		args = append(args, *filter.Link)
	}

	query.WriteString(" ORDER BY position ASC, created_at ASC, rowid ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsscraper.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if filter.PopulateNote {
		for _, article := range articles {
			if err := s.populateNote(ctx, article); err != nil {
				return nil, err
			}
		}
	}

	return articles, nil
}

// UpdateArticleNote sets the article's note reference and returns the
// article as it is after the update.
func (s *ArticleService) UpdateArticleNote(ctx context.Context, id string, noteID string) (*newsscraper.Article, error) {
	result, err := s.db.ExecContext(ctx, "UPDATE articles SET note_id = ? WHERE id = ?", noteID, id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, newsscraper.Errorf(newsscraper.ENOTFOUND, "article not found")
	}

	return s.findArticleByID(ctx, id)
}

func (s *ArticleService) findArticleByID(ctx context.Context, id string) (*newsscraper.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsscraper.Errorf(newsscraper.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// populateNote resolves the note reference. A dangling reference leaves
// Note nil.
func (s *ArticleService) populateNote(ctx context.Context, article *newsscraper.Article) error {
	if article.NoteID == nil {
		return nil
	}
	note, err := findNoteByID(ctx, s.db, *article.NoteID)
	if newsscraper.ErrorCode(err) == newsscraper.ENOTFOUND {
		return nil
	}
	if err != nil {
		return err
	}
	article.Note = note
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*newsscraper.Article, error) {
	var article newsscraper.Article
	var noteID sql.NullString
	var createdAt string

	if err := row.Scan(&article.ID, &article.Title, &article.Text, &article.Link,
		&article.ContentHash, &article.Position, &noteID, &createdAt); err != nil {
		return nil, err
	}

	if noteID.Valid {
		article.NoteID = &noteID.String
	}

	var err error
	article.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}
