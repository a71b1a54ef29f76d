package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
)

// Recoverer turns a handler panic into a 500 JSON error response. The panic
// value and stack are logged in redacted form and never sent to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error", err)
		}()

		next.ServeHTTP(w, r)
	})
}
