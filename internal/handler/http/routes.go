package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/users", h.handle(h.registerUser))

		r.Get("/api/courses", h.handle(h.listCourses))
		r.Get("/api/courses/{id}", h.handle(h.getCourse))
	})

	// routes with Basic authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.handle(h.getCurrentUser))

		r.Post("/api/courses", h.handle(h.createCourse))
		r.Put("/api/courses/{id}", h.handle(h.updateCourse))
		r.Delete("/api/courses/{id}", h.handle(h.deleteCourse))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
