package jobfetch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/jobfetch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobfetch.Errorf(jobfetch.ENOTFOUND, "File not found: %s", "job.html")

	assert.Equal(t, jobfetch.ENOTFOUND, jobfetch.ErrorCode(err))
	assert.Equal(t, "File not found: job.html", jobfetch.ErrorMessage(err))
}

func TestWrapErrorf(t *testing.T) {
	t.Parallel()

	cause := errors.New("HTTP 403")
	err := jobfetch.WrapErrorf(cause, jobfetch.EBLOCKED, "blocked")

	assert.Equal(t, jobfetch.EBLOCKED, jobfetch.ErrorCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", jobfetch.Errorf(jobfetch.ECAPTCHA, "captcha"))

	assert.Equal(t, jobfetch.ECAPTCHA, jobfetch.ErrorCode(err))
	assert.Equal(t, "captcha", jobfetch.ErrorMessage(err))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, jobfetch.EINTERNAL, jobfetch.ErrorCode(err))
	assert.Equal(t, "Internal error.", jobfetch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobfetch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobfetch.ErrorMessage(nil))
}
