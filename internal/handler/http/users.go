package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

// getCurrentUser answers with the public fields of the authenticated caller.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		return service.ErrAccessDenied
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
	return nil
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	var registration models.UserRegistration
	if err := decodeJSON(r, &registration); err != nil {
		return err
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), registration)
	if err != nil {
		return err
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully registered")

	utils.WriteCreated(w, "/")
	return nil
}
