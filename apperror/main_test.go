package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		InvalidInput: http.StatusBadRequest,
		Unauthorized: http.StatusUnauthorized,
		Forbidden:    http.StatusForbidden,
		NotFound:     http.StatusNotFound,
		Internal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.Status(), string(kind))
	}
	assert.Equal(t, http.StatusInternalServerError, Kind("other").Status())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "invalid_input: no data", NewInvalidInput("no data").Error())

	wrapped := Wrap(errors.New("boom"), Internal, "query failed")
	assert.Equal(t, "internal: query failed (caused by: boom)", wrapped.Error())
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := NewNotFound("no company: acme")
	err := fmt.Errorf("get company: %w", base)

	assert.True(t, IsKind(err, NotFound))
	assert.False(t, IsKind(err, InvalidInput))
	assert.Equal(t, NotFound, KindOf(err))
	assert.Equal(t, "no company: acme", Message(err))
}

func TestUnclassifiedErrors(t *testing.T) {
	err := errors.New("relation \"companies\" does not exist")

	assert.False(t, IsKind(err, InvalidInput))
	assert.Equal(t, Internal, KindOf(err))
	assert.Equal(t, "internal server error", Message(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, Internal, "query failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid_input: 3 keys", Newf(InvalidInput, "%d keys", 3).Error())
}
