package http

import (
	"context"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/newsscraper"
	"github.com/fwojciec/newsscraper/scrape"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

// Scraper runs the ingestion pipeline.
type Scraper interface {
	ResetAndReplace(ctx context.Context) (*scrape.Result, error)
}

// Server serves the article listing, the scrape trigger and the note API.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux
	pages  map[string]*template.Template

	// Bind address to open.
	Addr string

	// Services used by the handlers. Set before calling Open().
	Articles newsscraper.ArticleService
	Attacher newsscraper.NoteAttacher
	Scraper  Scraper
	Logger   *slog.Logger
}

// NewServer returns a new instance of Server with routes registered.
func NewServer() *Server {
	s := &Server{
		mux:   http.NewServeMux(),
		pages: mustParsePages(),
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /scrape", s.handleScrape)
	s.mux.HandleFunc("GET /articles", s.handleArticleList)
	s.mux.HandleFunc("GET /articles/{id}", s.handleArticleView)
	s.mux.HandleFunc("POST /articles/{id}", s.handleArticleNote)
	s.mux.Handle("GET /public/", http.StripPrefix("/public/", http.FileServerFS(publicFS())))

	return s
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.logger().Error("serve", "err", err)
		}
	}()

	return nil
}

// Port returns the TCP port for the running server.
// This is useful in tests where we allocate a random port by using ":0".
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP logs each request and dispatches it to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	s.logger().Info("http request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"bytes", rec.bytes,
		"duration", time.Since(begin),
	)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// statusRecorder captures the status code and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
