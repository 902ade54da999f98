package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageIncludesStatusAndCause(t *testing.T) {
	err := WithStatus(ErrAuthentication, 401, "")
	assert.Equal(t, "unable to authenticate with canvas (status 401)", err.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), ErrRetrieval.Code, "request failed")
	assert.Equal(t, "request failed: dial tcp: refused", wrapped.Error())
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("run: %w", WithStatus(ErrRetrieval, 500, "courses request failed"))

	assert.True(t, errors.Is(err, ErrRetrieval))
	assert.False(t, errors.Is(err, ErrAuthentication))
	assert.Equal(t, ErrRetrieval.Code, CodeOf(err))
}

func TestCloneDoesNotMutatePredefined(t *testing.T) {
	clone := WithStatus(ErrValidation, 200, "element 3 invalid")
	require.NotSame(t, ErrValidation, clone)
	assert.Equal(t, "response failed schema validation", ErrValidation.Message)
	assert.Zero(t, ErrValidation.Status)
	assert.Equal(t, 200, clone.Status)
}

func TestFromErrorWrapsUntyped(t *testing.T) {
	assert.Nil(t, FromError(nil))

	e := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, e.Code)
	assert.EqualError(t, e.Unwrap(), "boom")
}
