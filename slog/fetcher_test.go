package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsscraper"
	"github.com/fwojciec/newsscraper/mock"
	nsslog "github.com/fwojciec/newsscraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		err     error
		want    []string
		notWant []string
	}{
		{
			name:    "successful fetch logs size",
			html:    "<html><article></article></html>",
			want:    []string{"msg=fetch", "url=https://opensource.org/news", "bytes=32", "duration="},
			notWant: []string{"err=", "level=WARN"},
		},
		{
			name: "failed fetch logs error",
			err:  newsscraper.Errorf(newsscraper.EFETCH, "HTTP 503 for https://opensource.org/news"),
			want: []string{"level=WARN", "msg=fetch", "bytes=0", "code=fetch", `err="HTTP 503 for https://opensource.org/news"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			inner := &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return tt.html, tt.err
				},
			}

			fetcher := nsslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
			html, err := fetcher.Fetch(context.Background(), "https://opensource.org/news")

			assert.Equal(t, tt.html, html)
			assert.Equal(t, tt.err, err)
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}

	t.Run("keeps error code", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", newsscraper.Errorf(newsscraper.EFETCH, "timeout")
			},
		}

		fetcher := nsslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))
		_, err := fetcher.Fetch(context.Background(), "https://opensource.org/news")

		assert.Equal(t, newsscraper.EFETCH, newsscraper.ErrorCode(err))
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("already closed")
	inner := &mock.Fetcher{
		CloseFn: func() error { return closeErr },
	}

	fetcher := nsslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

	require.ErrorIs(t, fetcher.Close(), closeErr)
}
