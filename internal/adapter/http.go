package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

type httpCourseAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCourseAdapter constructs an HTTP/REST implementation of
// [CourseAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCourseAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CourseAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCourseAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressMissing
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCourseAdapter) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/api/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpCourseAdapter.ListCourses").Send()
		return nil, err
	}

	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (h *httpCourseAdapter) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&course).
		Get("/api/courses/{id}")
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpCourseAdapter.GetCourse").Int64("id", id).Send()
		return models.Course{}, err
	}

	return course, nil
}

func (h *httpCourseAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
