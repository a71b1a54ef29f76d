package shared

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes int64 = 1 << 20

// ErrBodyTooLarge is returned by ReadBody when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// Validate is the shared validator instance used for query and path values.
var Validate = validator.New()

// ReadBody reads the whole request body, enforcing MaxBodyBytes.
// A missing body yields an empty slice, not an error.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, err
	}
	return body, nil
}

// ValidateVar validates a single value against a validator tag.
func ValidateVar(value interface{}, tag string) error {
	return Validate.Var(value, tag)
}
