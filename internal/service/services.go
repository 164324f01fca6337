package service

import (
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/crypto"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. Registration and
// course writes are wrapped with their validators.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewUserValidationService().
		Wrap(NewAuthService(storages.UserRepository, hasher, logger))

	courseService := NewCourseValidationService().
		Wrap(NewCourseService(storages.CourseRepository, logger))

	return &Services{
		AuthService:    authService,
		CourseService:  courseService,
		AppInfoService: appInfoService,
	}, nil
}
