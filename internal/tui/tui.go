// Package tui is the terminal presentation layer. It only calls the client
// core (session, tasks, preferences) and renders whatever state comes back;
// all invariants live in the service layer.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
)

// TUI runs the interactive terminal client.
type TUI struct {
	services *service.ClientServices
	log      *logger.Logger
	version  string
}

// New builds the terminal UI on top of the client services.
func New(services *service.ClientServices, log *logger.Logger, version string) *TUI {
	return &TUI{services: services, log: log, version: version}
}

// Run starts the bubbletea program and blocks until the user quits.
// startAuthenticated selects the first screen: the task list when a session
// was restored, the login form otherwise.
func (t *TUI) Run(ctx context.Context, startAuthenticated bool) error {
	model := newAppModel(ctx, t.services, t.log, t.version, startAuthenticated)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
