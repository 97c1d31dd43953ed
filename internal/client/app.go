package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/tui"
)

// App is the interactive client application.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	log      *logger.Logger
}

// NewApp wires the client services and the terminal UI into a runnable
// application.
func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app: services and ui are required")
	}
	return &App{services: services, tui: ui, log: log}, nil
}

// Run resolves the persisted session exactly once, then hands control to the
// terminal UI. A restored session opens on the task list; anything else opens
// on the login form. Blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	session := a.services.SessionService.Restore(ctx)
	a.log.Debug().
		Str("session_state", session.State.String()).
		Msg("session restored on startup")

	if err := a.tui.Run(ctx, session.Authenticated()); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
