package http

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsscraper"
)

func errUnknownPage(name string) error {
	return fmt.Errorf("unknown page %q", name)
}

// handleIndex renders every stored article.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	articles, err := s.Articles.FindArticles(r.Context(), newsscraper.ArticleFilter{})
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.render(w, r, "home", struct {
		Articles []*newsscraper.Article
	}{articles})
}

// handleScrape runs the ingestion pipeline and redirects to the listing.
// The run is detached from the request so a disconnecting client cannot
// interrupt it after the store has been reset.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := s.Scraper.ResetAndReplace(context.WithoutCancel(r.Context()))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if result.Failed > 0 {
		s.logger().Warn("scrape completed with failures",
			"saved", result.Saved,
			"failed", result.Failed,
		)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleArticleList returns every stored article as JSON. The response
// carries an ETag derived from its body.
func (s *Server) handleArticleList(w http.ResponseWriter, r *http.Request) {
	articles, err := s.Articles.FindArticles(r.Context(), newsscraper.ArticleFilter{})
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if articles == nil {
		articles = []*newsscraper.Article{}
	}

	body, err := json.Marshal(articles)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("\n"))
}

// handleArticleView renders one article with its note.
func (s *Server) handleArticleView(w http.ResponseWriter, r *http.Request) {
	article, err := s.Articles.FindArticleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.render(w, r, "article", struct {
		Article *newsscraper.Article
	}{article})
}

// handleArticleNote creates a note from the request body and attaches it
// to the article. Accepts a JSON object of strings or a form body.
func (s *Server) handleArticleNote(w http.ResponseWriter, r *http.Request) {
	fields, err := noteFields(w, r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	article, err := s.Attacher.AttachNote(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// maxNoteBody bounds the size of a note request body.
const maxNoteBody = 1 << 20

func noteFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxNoteBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		fields := map[string]string{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			return nil, newsscraper.Errorf(newsscraper.EINVALID, "invalid JSON body: %v", err)
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, newsscraper.Errorf(newsscraper.EINVALID, "invalid form body: %v", err)
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	return fields, nil
}
