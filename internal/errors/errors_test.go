package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("job not found")
	assert.Equal(t, "job not found", err.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), ErrCodeUpstream, "refresh call failed")
	assert.Equal(t, "refresh call failed: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, ErrCodeUpstream, "calling %s", "/jobs/")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrCodeUpstream, GetCode(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFoundf("user %s", "u-1")))
	assert.True(t, IsValidation(Validationf("bad field %q", "title")))
	assert.True(t, IsUnauthorized(Unauthorized("no session")))
	assert.True(t, IsBanned(Banned("account banned")))
	assert.True(t, IsUpstream(Upstreamf("status %d", 502)))

	// Predicates see through plain wrapping too.
	deep := fmt.Errorf("handler: %w", Banned("account banned"))
	assert.True(t, IsBanned(deep))

	assert.False(t, IsBanned(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
}
