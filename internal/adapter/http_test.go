package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) CourseAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPCourseAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "host and port", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "scheme kept", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "whitespace trimmed", raw: "  127.0.0.1:5000  ", want: "http://127.0.0.1:5000"},
		{name: "empty", raw: "   ", wantErr: ErrEmptyAddress},
		{name: "scheme only", raw: "http://", wantErr: ErrAddressMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCourseAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPCourseAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestListCourses(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/courses", r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"id":1,"title":"Build a Basic Bookcase","description":"d","estimatedTime":"12 hours","materialsNeeded":null,"userId":1,
			 "user":{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}},
			{"id":2,"title":"Learn How to Program","description":"d","estimatedTime":null,"materialsNeeded":null,"userId":2}
		]`)
	})

	courses, err := a.ListCourses(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Build a Basic Bookcase", courses[0].Title)
	require.NotNil(t, courses[0].EstimatedTime)
	assert.Equal(t, "12 hours", *courses[0].EstimatedTime)
	require.NotNil(t, courses[0].User)
	assert.Equal(t, "Joe", courses[0].User.FirstName)
	assert.Nil(t, courses[1].User)
}

func TestListCourses_EmptyArray(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	courses, err := a.ListCourses(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestGetCourse(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/courses/7":
			writeJSON(w, http.StatusOK, `{"id":7,"title":"T","description":"D","userId":1}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"error":"no course matches the provided ID"}`)
		}
	})

	course, err := a.GetCourse(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), course.ID)
	assert.Equal(t, "D", course.Description)

	_, err = a.GetCourse(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "no course matches the provided ID")
}

func TestGetVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	})

	version, err := a.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "validation envelope", status: http.StatusBadRequest, body: `{"errors":["a","b"]}`, wantErr: ErrBadRequest, wantMsg: "bad request: a; b"},
		{name: "message envelope", status: http.StatusUnauthorized, body: `{"message":"Access Denied"}`, wantErr: ErrUnauthorized, wantMsg: "client unauthorized: Access Denied"},
		{name: "error envelope", status: http.StatusForbidden, body: `{"error":"nope"}`, wantErr: ErrForbidden, wantMsg: "forbidden: nope"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"db down"}`, wantErr: ErrInternalServerError, wantMsg: "internal server error: db down"},
		{name: "plain body", status: http.StatusBadGateway, body: "upstream gone", wantMsg: "http 502: upstream gone"},
		{name: "empty body", status: http.StatusServiceUnavailable, wantMsg: "http 503: Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := a.ListCourses(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
