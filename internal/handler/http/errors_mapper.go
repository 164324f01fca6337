package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// errorStatusMap lists the errors whose message is safe to send back as is.
// Entries must not wrap one another.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:               http.StatusBadRequest,
	service.ErrEmailAlreadyInUse: http.StatusBadRequest,
	service.ErrNotCourseOwner:    http.StatusForbidden,
	ErrNoCourseMatches:           http.StatusNotFound,
	ErrNoExistingCourse:          http.StatusNotFound,
}

// statusFromError returns the status and the matched sentinel for err, or
// 500 and nil when err is not classified.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err with one of the three error envelopes:
//   - validation failures: 400 {"errors": [...]}
//   - access denial: 401 {"message": "Access Denied"}
//   - everything else: {"error": "..."} with the mapped status or 500
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn().Strs("errors", validationErr.Messages).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
		return
	}

	if errors.Is(err, service.ErrAccessDenied) {
		utils.WriteJSON(w, models.MessageResponse{Message: service.ErrAccessDenied.Error()}, http.StatusUnauthorized)
		return
	}

	status, target := statusFromError(err)
	if target != nil {
		log.Warn().Err(err).Int("status", status).Send()
		utils.WriteJSON(w, models.ErrorResponse{Error: target.Error()}, status)
		return
	}

	log.Err(err).Msg("unhandled error")
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
