package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
)

// withRecoverer converts a panic in any later handler into a 500 response.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
// Nothing is written when the handler had already sent its status.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			// the client already has a status line; a second one cannot be sent
			if rw, ok := w.(*responseWriter); ok && rw.wroteHeader {
				return
			}

			h.writeError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
