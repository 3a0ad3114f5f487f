package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, OutcomeBadRequest.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, OutcomeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusOK, OutcomeOK.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Outcome(42).HTTPStatus())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ok", OutcomeOK.String())
	assert.Equal(t, "not_found", OutcomeNotFound.String())
	assert.Equal(t, "bad_request", OutcomeBadRequest.String())
	assert.Equal(t, "outcome(7)", Outcome(7).String())
}

func TestNewLocationRequest_Defaults(t *testing.T) {
	r := NewLocationRequest("foo.txt")
	assert.Equal(t, "foo.txt", r.File)
	assert.False(t, r.HasLine())
	assert.False(t, r.HasColumn())

	r.Line, r.Column = 0, 13
	assert.True(t, r.HasLine())
	assert.True(t, r.HasColumn())
}
