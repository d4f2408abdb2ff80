// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/bannerhub/bannerhub/internal/shared"
)

// StatusOf maps a domain error to its HTTP status code.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to JSON error responses. Internal errors
// are reported with the fallback message only.
func RespondError(w http.ResponseWriter, err error, fallback string) {
	status := StatusOf(err)
	switch status {
	case http.StatusUnauthorized:
		Error(w, status, "Invalid credentials", "")
	case http.StatusInternalServerError:
		Error(w, status, fallback, "")
	default:
		Error(w, status, http.StatusText(status), err.Error())
	}
}
