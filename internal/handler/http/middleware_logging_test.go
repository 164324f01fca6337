package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		handler      http.HandlerFunc
		wantContains []string
	}{
		{
			name:   "GET 200 with body",
			method: http.MethodGet,
			path:   "/api/courses",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("[]"))
			},
			wantContains: []string{`"method":"GET"`, `"uri":"/api/courses"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "POST 201 without body",
			method: http.MethodPost,
			path:   "/api/users",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			wantContains: []string{`"method":"POST"`, `"status":201`, `"size":0`},
		},
		{
			name:         "handler writes nothing",
			method:       http.MethodDelete,
			path:         "/api/courses/1",
			handler:      func(w http.ResponseWriter, r *http.Request) {},
			wantContains: []string{`"method":"DELETE"`, `"status":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rr := httptest.NewRecorder()

			h.withLogging(tt.handler).ServeHTTP(rr, req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
