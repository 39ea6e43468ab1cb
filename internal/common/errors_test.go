package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Podcast with id p-1 not found", (&PodcastNotFoundError{ID: "p-1"}).Error())
	assert.Equal(t, "Episode with id e-1 not found in podcast with id p-1",
		(&EpisodeNotFoundError{EpisodeID: "e-1", PodcastID: "p-1"}).Error())
	assert.Equal(t, "There is a user with that email already", ErrDuplicateAccount.Error())
	assert.Equal(t, "Wrong password", ErrWrongPassword.Error())
	assert.Equal(t, "User not found", ErrUserNotFound.Error())
	assert.Equal(t, "You are not allowed to do that", ErrNotOwner.Error())
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, &PodcastNotFoundError{ID: "x"}, ErrNotFound)
	assert.ErrorIs(t, &EpisodeNotFoundError{EpisodeID: "x", PodcastID: "y"}, ErrNotFound)
	assert.ErrorIs(t, ErrDuplicateAccount, ErrConflict)
	assert.ErrorIs(t, ErrWrongPassword, ErrUnauthorized)
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrNotOwner, ErrForbidden)
	assert.ErrorIs(t, ErrNotHost, ErrForbidden)
}

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", &PodcastNotFoundError{ID: "x"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrWrongPassword, http.StatusUnauthorized},
		{"forbidden", ErrNotOwner, http.StatusForbidden},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"conflict", ErrDuplicateAccount, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}
