package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []models.Course{}
	}

	utils.WriteJSON(w, courses, http.StatusOK)
	return nil
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) error {
	course, err := h.services.CourseService.GetCourse(r.Context(), courseIDFromRequest(r))
	if err != nil {
		return courseNotFound(err, ErrNoCourseMatches)
	}

	utils.WriteJSON(w, course, http.StatusOK)
	return nil
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) error {
	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		return err
	}

	id, err := h.services.CourseService.CreateCourse(r.Context(), course)
	if err != nil {
		return err
	}

	utils.WriteCreated(w, fmt.Sprintf("api/courses/%d", id))
	return nil
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) error {
	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		return err
	}

	course.ID = courseIDFromRequest(r)

	if err := h.services.CourseService.UpdateCourse(r.Context(), course); err != nil {
		return courseNotFound(err, ErrNoExistingCourse)
	}

	utils.WriteNoContent(w)
	return nil
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.CourseService.DeleteCourse(r.Context(), courseIDFromRequest(r)); err != nil {
		return courseNotFound(err, ErrNoExistingCourse)
	}

	utils.WriteNoContent(w)
	return nil
}

// courseIDFromRequest parses the {id} URL parameter. A value that is not an
// integer yields 0, which never names a stored course.
func courseIDFromRequest(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// courseNotFound replaces store.ErrCourseNotFound with the message the route
// answers with. Other errors are returned unchanged.
func courseNotFound(err, notFound error) error {
	if errors.Is(err, store.ErrCourseNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return err
}
