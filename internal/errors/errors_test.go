package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewError("client not found").Mark(ErrNotFound), http.StatusNotFound},
		{"validation", NewError("bad").WithHint("Invalid request format").Mark(ErrValidation), http.StatusBadRequest},
		{"conflict", NewError("dup").Mark(ErrAlreadyExists), http.StatusConflict},
		{"forbidden", NewError("expired").Mark(ErrPermissionDenied), http.StatusForbidden},
		{"rate limited", NewError("slow down").Mark(ErrRateLimited), http.StatusTooManyRequests},
		{"wrapped", errors.Wrap(NewError("gone").Mark(ErrNotFound), "loading invoice"), http.StatusNotFound},
		{"unmarked", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestHintOf(t *testing.T) {
	err := WithError(errors.New("pq: connection refused")).
		WithHint("Database not available").
		Mark(ErrDatabase)

	assert.Equal(t, "Database not available", HintOf(err))
	assert.True(t, IsDatabase(err))
	assert.False(t, IsNotFound(err))
	assert.Empty(t, HintOf(errors.New("plain")))
}
