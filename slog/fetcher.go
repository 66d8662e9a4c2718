// Package slog provides logging decorators for newsscraper services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every source page fetch. Failed fetches are logged
// at warn level with their error code.
type LoggingFetcher struct {
	next   newsscraper.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next.
func NewLoggingFetcher(next newsscraper.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	begin := time.Now()
	html, err = f.next.Fetch(ctx, url)

	attrs := []any{"url", url, "bytes", len(html), "duration", time.Since(begin)}
	if err != nil {
		attrs = append(attrs, "code", newsscraper.ErrorCode(err), "err", err)
		f.logger.Log(ctx, slog.LevelWarn, "fetch", attrs...)
		return html, err
	}
	f.logger.Log(ctx, slog.LevelInfo, "fetch", attrs...)
	return html, nil
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
