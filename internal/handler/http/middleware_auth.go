package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces HTTP Basic authentication.
//
// The Basic user name is the account's email address. Credentials are
// checked by [service.AuthService.Authenticate]; on success the user (without
// its password hash) is stored in the request context via [utils.WithUser]
// before delegating to the next handler.
//
// Every rejection is answered with 401 {"message": "Access Denied"}; the
// response does not reveal which check failed. A store failure during the
// lookup is answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Msg("Auth header not found")
			h.writeError(w, r, ErrAuthHeaderNotFound)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, email, password)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
