package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/newsscraper"
	"github.com/fwojciec/newsscraper/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("creates article with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := &newsscraper.Article{
			Title: "Open Source Initiative announces",
			Text:  "Body text.",
			Link:  "https://opensource.org/news/announcement",
		}

		err := svc.CreateArticle(ctx, article)
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID, "ID should be generated")
		assert.NotEmpty(t, article.ContentHash, "ContentHash should be generated")
		assert.False(t, article.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.Nil(t, article.NoteID)
	})

	t.Run("accepts article with empty fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		article := &newsscraper.Article{}

		require.NoError(t, svc.CreateArticle(context.Background(), article))
		assert.NotEmpty(t, article.ID)
	})

	t.Run("returns EINVALID for oversized fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		article := &newsscraper.Article{Link: strings.Repeat("x", newsscraper.MaxLinkLength+1)}

		err := svc.CreateArticle(context.Background(), article)
		require.Error(t, err)
		assert.Equal(t, newsscraper.EINVALID, newsscraper.ErrorCode(err))
	})

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		a := &newsscraper.Article{Title: "Same", Text: "Body", Link: "https://example.com/x"}
		b := &newsscraper.Article{Title: "Same", Text: "Body", Link: "https://example.com/x"}
		c := &newsscraper.Article{Title: "SameBody", Link: "https://example.com/x"}
		require.NoError(t, svc.CreateArticle(ctx, a))
		require.NoError(t, svc.CreateArticle(ctx, b))
		require.NoError(t, svc.CreateArticle(ctx, c))

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("returns article when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := &newsscraper.Article{
			Title:    "Title",
			Text:     "Body",
			Link:     "https://example.test/x",
			Position: 3,
		}
		require.NoError(t, svc.CreateArticle(ctx, article))

		found, err := svc.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, article.ID, found.ID)
		assert.Equal(t, "Title", found.Title)
		assert.Equal(t, "Body", found.Text)
		assert.Equal(t, "https://example.test/x", found.Link)
		assert.Equal(t, 3, found.Position)
		assert.Equal(t, article.ContentHash, found.ContentHash)
		assert.True(t, article.CreatedAt.Equal(found.CreatedAt))
		assert.Nil(t, found.Note)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		_, err := svc.FindArticleByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, newsscraper.ENOTFOUND, newsscraper.ErrorCode(err))
	})

	t.Run("populates attached note", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		articles := sqlite.NewArticleService(db)
		notes := sqlite.NewNoteService(db)
		ctx := context.Background()

		article := &newsscraper.Article{Title: "With note"}
		require.NoError(t, articles.CreateArticle(ctx, article))
		note := &newsscraper.Note{Fields: map[string]string{"title": "Mine", "body": "Thoughts"}}
		require.NoError(t, notes.CreateNote(ctx, note))
		_, err := articles.UpdateArticleNote(ctx, article.ID, note.ID)
		require.NoError(t, err)

		found, err := articles.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)
		require.NotNil(t, found.NoteID)
		assert.Equal(t, note.ID, *found.NoteID)
		require.NotNil(t, found.Note)
		assert.Equal(t, note.ID, found.Note.ID)
		assert.Equal(t, "Thoughts", found.Note.Fields["body"])
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	createArticles := func(t *testing.T, svc *sqlite.ArticleService, n int) []*newsscraper.Article {
		t.Helper()
		var out []*newsscraper.Article
		// Insert in reverse so ordering comes from Position, not insertion.
		for i := n - 1; i >= 0; i-- {
			a := &newsscraper.Article{
				Title:    fmt.Sprintf("Article %d", i),
				Link:     fmt.Sprintf("https://example.com/news/%d", i),
				Position: i,
			}
			require.NoError(t, svc.CreateArticle(context.Background(), a))
			out = append(out, a)
		}
		return out
	}

	t.Run("returns all articles in page order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		createArticles(t, svc, 3)

		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, "Article 0", articles[0].Title)
		assert.Equal(t, "Article 1", articles[1].Title)
		assert.Equal(t, "Article 2", articles[2].Title)
	})

	t.Run("returns empty slice when store is empty", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("filters by link", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		createArticles(t, svc, 3)

		link := "https://example.com/news/1"
		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{Link: &link})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "Article 1", articles[0].Title)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		created := createArticles(t, svc, 2)

		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{ID: &created[0].ID})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, created[0].ID, articles[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		createArticles(t, svc, 5)

		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "Article 1", articles[0].Title)
		assert.Equal(t, "Article 2", articles[1].Title)
	})

	t.Run("respects offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		createArticles(t, svc, 3)

		articles, err := svc.FindArticles(context.Background(), newsscraper.ArticleFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "Article 2", articles[0].Title)
	})

	t.Run("populates notes when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		notes := sqlite.NewNoteService(db)
		ctx := context.Background()
		created := createArticles(t, svc, 2)
		note := &newsscraper.Note{Fields: map[string]string{"body": "x"}}
		require.NoError(t, notes.CreateNote(ctx, note))
		_, err := svc.UpdateArticleNote(ctx, created[0].ID, note.ID)
		require.NoError(t, err)

		plain, err := svc.FindArticles(ctx, newsscraper.ArticleFilter{ID: &created[0].ID})
		require.NoError(t, err)
		require.Len(t, plain, 1)
		assert.Nil(t, plain[0].Note)

		populated, err := svc.FindArticles(ctx, newsscraper.ArticleFilter{ID: &created[0].ID, PopulateNote: true})
		require.NoError(t, err)
		require.Len(t, populated, 1)
		require.NotNil(t, populated[0].Note)
		assert.Equal(t, note.ID, populated[0].Note.ID)
	})
}

func TestArticleService_UpdateArticleNote(t *testing.T) {
	t.Parallel()

	t.Run("returns post-update article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		articles := sqlite.NewArticleService(db)
		notes := sqlite.NewNoteService(db)
		ctx := context.Background()

		article := &newsscraper.Article{Title: "Target"}
		require.NoError(t, articles.CreateArticle(ctx, article))
		note := &newsscraper.Note{Fields: map[string]string{"body": "first"}}
		require.NoError(t, notes.CreateNote(ctx, note))

		updated, err := articles.UpdateArticleNote(ctx, article.ID, note.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.NoteID)
		assert.Equal(t, note.ID, *updated.NoteID)
		assert.Equal(t, "Target", updated.Title)
	})

	t.Run("replaces previous reference", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		articles := sqlite.NewArticleService(db)
		notes := sqlite.NewNoteService(db)
		ctx := context.Background()

		article := &newsscraper.Article{Title: "Target"}
		require.NoError(t, articles.CreateArticle(ctx, article))
		first := &newsscraper.Note{Fields: map[string]string{"body": "first"}}
		second := &newsscraper.Note{Fields: map[string]string{"body": "second"}}
		require.NoError(t, notes.CreateNote(ctx, first))
		require.NoError(t, notes.CreateNote(ctx, second))

		_, err := articles.UpdateArticleNote(ctx, article.ID, first.ID)
		require.NoError(t, err)
		updated, err := articles.UpdateArticleNote(ctx, article.ID, second.ID)
		require.NoError(t, err)

		require.NotNil(t, updated.NoteID)
		assert.Equal(t, second.ID, *updated.NoteID)

		// The replaced note is left in place.
		_, err = notes.FindNoteByID(ctx, first.ID)
		require.NoError(t, err)
	})

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		articles := sqlite.NewArticleService(db)
		notes := sqlite.NewNoteService(db)
		ctx := context.Background()

		note := &newsscraper.Note{Fields: map[string]string{"body": "x"}}
		require.NoError(t, notes.CreateNote(ctx, note))

		_, err := articles.UpdateArticleNote(ctx, "nonexistent", note.ID)
		require.Error(t, err)
		assert.Equal(t, newsscraper.ENOTFOUND, newsscraper.ErrorCode(err))
	})

	t.Run("rejects reference to missing note", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		articles := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := &newsscraper.Article{Title: "Target"}
		require.NoError(t, articles.CreateArticle(ctx, article))

		_, err := articles.UpdateArticleNote(ctx, article.ID, "missing-note")
		require.Error(t, err)
	})
}
