package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenList
	screenForm
	screenConfirm
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	log      *logger.Logger
	version  string

	screen    screen
	login     loginModel
	register  registerModel
	list      listModel
	form      formModel
	confirmID string
}

func newAppModel(ctx context.Context, services *service.ClientServices, log *logger.Logger, version string, startAuthenticated bool) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		log:      log,
		version:  version,
		screen:   screenLogin,
		login:    newLoginModel(),
		register: newRegisterModel(),
		list:     newListModel(),
	}
	if startAuthenticated {
		m.screen = screenList
		m.list.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.screen == screenList {
		return m.initialLoad()
	}
	return m.login.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenLogin:
		return m.login.View(m.version)
	case screenRegister:
		return m.register.View()
	case screenList:
		return m.list.View(m.services.TaskService.View(), m.services.TaskService.Preferences(), m.services.SessionService.Session())
	case screenForm:
		return m.form.View()
	case screenConfirm:
		return m.confirmView()
	}
	return ""
}

// initialLoad restores saved view preferences and then loads the task list,
// mirroring the startup order: preferences and tasks resolve independently,
// the derived view consumes both.
func (m appModel) initialLoad() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		prefs := services.PreferenceService.Load(ctx)
		services.TaskService.ApplyPreferences(prefs)
		_, err := services.TaskService.Load(ctx)
		return tasksLoadedMsg{err: err}
	}
}

func (m appModel) reloadTasks() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		_, err := services.TaskService.Load(ctx)
		return tasksLoadedMsg{err: err}
	}
}

// toLoginOnLostSession drops back to the login screen when an operation
// discovered the session is gone (any 401 resets it behind the scenes).
func (m appModel) toLoginOnLostSession() (appModel, bool) {
	if m.services.SessionService.Session().Authenticated() {
		return m, false
	}

	m.screen = screenLogin
	m.login = newLoginModel()
	m.login.errMsg = "Session expired, please login again"
	return m, true
}
