package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errThing = New(NotFound, "Thing not found")

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", Validationf("bad input"), http.StatusBadRequest},
		{"not found", errThing, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", errThing), http.StatusNotFound},
		{"conflict", New(Conflict, "dup"), http.StatusConflict},
		{"forbidden", New(Forbidden, "no"), http.StatusForbidden},
		{"unauthorized", New(Unauthorized, "who"), http.StatusUnauthorized},
		{"rate limited", New(TooManyRequests, "slow down"), http.StatusTooManyRequests},
		{"plain error", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, StatusOf(tc.err))
		})
	}
}

func TestMessageOf_HidesInternalDetail(t *testing.T) {
	assert.Equal(t, "Internal Server Error", MessageOf(errors.New("pq: password authentication failed")))
	assert.Equal(t, "Internal Server Error", MessageOf(New(Internal, "stack detail")))
	assert.Equal(t, "Thing not found", MessageOf(errThing))
}

func TestWrap_KeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(errThing, cause)

	assert.True(t, errors.Is(err, errThing))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "duplicate key")
	assert.False(t, errors.Is(err, New(Conflict, "Thing not found")))
}
