package store

import "github.com/MKhiriev/go-course-catalog/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		CourseRepository: NewCourseRepository(db, logger),
	}
}
