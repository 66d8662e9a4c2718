package newsscraper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/newsscraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := newsscraper.Errorf(newsscraper.ENOTFOUND, "article %q not found", "abc")

	assert.Equal(t, newsscraper.ENOTFOUND, newsscraper.ErrorCode(err))
	assert.Equal(t, "article \"abc\" not found", newsscraper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newsscraper.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newsscraper.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", newsscraper.Errorf(newsscraper.EFETCH, "connection refused"))

	assert.Equal(t, newsscraper.EFETCH, newsscraper.ErrorCode(err))
	assert.Equal(t, "connection refused", newsscraper.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, newsscraper.EINTERNAL, newsscraper.ErrorCode(err))
	assert.Equal(t, "Internal error.", newsscraper.ErrorMessage(err))
}
