package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "missing")))
	assert.Equal(t, Internal, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", New(PermissionDenied, "nope"))
	assert.Equal(t, PermissionDenied, KindOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(Internal, "failed to store", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to store")
	assert.Contains(t, err.Error(), "disk full")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		Unauthenticated:  http.StatusUnauthorized,
		PermissionDenied: http.StatusForbidden,
		InvalidArgument:  http.StatusBadRequest,
		NotFound:         http.StatusNotFound,
		Internal:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(New(kind, "x")))
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
