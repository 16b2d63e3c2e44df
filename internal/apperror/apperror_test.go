package apperror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf_wrapped(t *testing.T) {
	err := errors.Wrap(NotFound("Job not found"), "load job")

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Equal(t, "Job not found", Message(err))
}

func TestKindOf_unclassified(t *testing.T) {
	err := errors.New("connection refused")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.False(t, Is(nil, KindInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "connection refused", Message(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[*Error]int{
		Unauthorized("x"): http.StatusUnauthorized,
		Forbidden("x"):    http.StatusForbidden,
		NotFound("x"):     http.StatusNotFound,
		InvalidState("x"): http.StatusBadRequest,
		BadRequest("x"):   http.StatusBadRequest,
	}
	for err, status := range cases {
		assert.Equal(t, status, HTTPStatus(err), err.Kind.String())
	}
}

func TestWrap_keepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindInvalidState, "You have already applied for this job", cause)

	assert.Equal(t, "You have already applied for this job: duplicate key", err.Error())
	assert.Equal(t, "You have already applied for this job", Message(err))
	assert.ErrorIs(t, err, cause)
}
