// Package tui renders the course catalog in the terminal with bubbletea.
//
// The UI is read-only: it lists every course, opens a detail view for the
// selected one and copies titles to the clipboard.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-course-catalog/internal/adapter"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoAdapter = errors.New("course adapter is not set")

type TUI struct {
	adapter adapter.CourseAdapter
	logger  *logger.Logger

	// options are passed to every program; tests use them to swap the
	// terminal for buffers.
	options []tea.ProgramOption
}

func New(courseAdapter adapter.CourseAdapter, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if courseAdapter == nil {
		return nil, ErrNoAdapter
	}

	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}

	return &TUI{adapter: courseAdapter, logger: logger, options: options}, nil
}

// Run shows the course list and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	_, err := tea.NewProgram(newCourseModel(ctx, t.adapter, t.logger), options...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
