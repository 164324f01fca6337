package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/tui"
)

var ErrNoUI = errors.New("terminal ui is not set")

type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{tui: ui, logger: logger}, nil
}

// Run blocks until the user leaves the UI or the process receives a
// termination signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("client started")

	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
