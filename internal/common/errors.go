package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., email already registered
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")
)

// messageError carries the exact client-facing message for a business failure
// while still matching the sentinel taxonomy through errors.Is.
type messageError struct {
	msg  string
	kind error
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.kind }

var (
	ErrUserNotFound     error = &messageError{"User not found", ErrNotFound}
	ErrWrongPassword    error = &messageError{"Wrong password", ErrUnauthorized}
	ErrDuplicateAccount error = &messageError{"There is a user with that email already", ErrConflict}
	ErrNotOwner         error = &messageError{"You are not allowed to do that", ErrForbidden}
	ErrNotHost          error = &messageError{"Only hosts can create podcasts", ErrForbidden}
)

// PodcastNotFoundError reports a missing podcast. The message shape is part of
// the API contract and never mentions episode context.
type PodcastNotFoundError struct {
	ID string
}

func (e *PodcastNotFoundError) Error() string {
	return fmt.Sprintf("Podcast with id %s not found", e.ID)
}

func (e *PodcastNotFoundError) Unwrap() error { return ErrNotFound }

// EpisodeNotFoundError reports a miss on the (podcastID, episodeID) scoped
// lookup. The parent podcast id is part of the message, exactly.
type EpisodeNotFoundError struct {
	EpisodeID string
	PodcastID string
}

func (e *EpisodeNotFoundError) Error() string {
	return fmt.Sprintf("Episode with id %s not found in podcast with id %s", e.EpisodeID, e.PodcastID)
}

func (e *EpisodeNotFoundError) Unwrap() error { return ErrNotFound }

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}

	// Check for pgx specific errors (example for unique constraint)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
