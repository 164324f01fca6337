package tui

import (
	"github.com/MKhiriev/go-course-catalog/models"
)

type coursesLoadedMsg struct {
	courses []models.Course
	err     error
}

type courseLoadedMsg struct {
	course models.Course
	err    error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
