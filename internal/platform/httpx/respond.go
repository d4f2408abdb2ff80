package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bannerhub/bannerhub/internal/shared"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an ErrorBody response.
func Error(w http.ResponseWriter, status int, title, detail string) {
	JSON(w, status, ErrorBody{Error: title, Message: detail})
}

// DecodeJSON decodes a single JSON object from the request body into target.
// Unknown fields and trailing data are rejected as validation errors and
// bodies over maxBodyBytes as ErrTooLarge. The returned message never
// carries decoder internals such as Go type names.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return decodeError(err)
		}
		return fmt.Errorf("%w: request body must contain a single JSON object", shared.ErrValidation)
	}
	return nil
}

const unknownFieldPrefix = "json: unknown field "

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is empty", shared.ErrValidation)
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: limit is %d bytes", shared.ErrTooLarge, tooLarge.Limit)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: malformed JSON", shared.ErrValidation)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return fmt.Errorf("%w: request body must be a JSON object", shared.ErrValidation)
		}
		return fmt.Errorf("%w: %s has the wrong type", shared.ErrValidation, typeErr.Field)
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		name := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)
		return fmt.Errorf("%w: unknown field %s", shared.ErrValidation, name)
	default:
		return fmt.Errorf("%w: malformed request body", shared.ErrValidation)
	}
}
