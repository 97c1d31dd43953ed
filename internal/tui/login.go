package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	infoMsg    string
}

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return loginModel{inputs: []textinput.Model{username, password}}
}

func (l loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.login.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "tab", "down":
			m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
			return m.focusLogin()
		case "shift+tab", "up":
			m.login.focus = (m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs)
			return m.focusLogin()
		case "ctrl+n":
			m.screen = screenRegister
			m.register = newRegisterModel()
			return m, textinput.Blink
		case "enter":
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.login.errMsg = "Username and password are required"
				return m, nil
			}
			m.login.submitting = true
			m.login.errMsg = ""
			return m, m.submitLogin(username, password)
		}

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		m.list = newListModel()
		m.list.loading = true
		return m, m.initialLoad()
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) focusLogin() (tea.Model, tea.Cmd) {
	for i := range m.login.inputs {
		if i == m.login.focus {
			m.login.inputs[i].Focus()
		} else {
			m.login.inputs[i].Blur()
		}
	}
	return m, textinput.Blink
}

func (m appModel) submitLogin(username, password string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		session, err := services.SessionService.Login(ctx, username, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (l loginModel) View(version string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Tracker") + "\n")
	if version != "" {
		b.WriteString(dimStyle.Render("v"+version) + "\n")
	}
	b.WriteString("\n")

	labels := []string{"Username", "Password"}
	for i, input := range l.inputs {
		b.WriteString(labels[i] + ": " + input.View() + "\n")
	}

	if l.submitting {
		b.WriteString("\n" + statusStyle.Render("Logging in...") + "\n")
	}
	if l.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(l.errMsg) + "\n")
	}
	if l.infoMsg != "" {
		b.WriteString("\n" + statusStyle.Render(l.infoMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter login  ctrl+n register  esc quit"))
	return b.String()
}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "display name"
	name.Focus()

	username := textinput.New()
	username.Placeholder = "username"

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return registerModel{inputs: []textinput.Model{name, username, password}}
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.register.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.screen = screenLogin
			m.login = newLoginModel()
			return m, textinput.Blink
		case "tab", "down":
			m.register.focus = (m.register.focus + 1) % len(m.register.inputs)
			return m.focusRegister()
		case "shift+tab", "up":
			m.register.focus = (m.register.focus + len(m.register.inputs) - 1) % len(m.register.inputs)
			return m.focusRegister()
		case "enter":
			name := strings.TrimSpace(m.register.inputs[0].Value())
			username := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			if username == "" || password == "" {
				m.register.errMsg = "Username and password are required"
				return m, nil
			}
			m.register.submitting = true
			m.register.errMsg = ""
			return m, m.submitRegister(name, username, password)
		}

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = msg.err.Error()
			return m, nil
		}
		// Registration grants no session: back to login.
		m.screen = screenLogin
		m.login = newLoginModel()
		m.login.infoMsg = "Account created, please login"
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) focusRegister() (tea.Model, tea.Cmd) {
	for i := range m.register.inputs {
		if i == m.register.focus {
			m.register.inputs[i].Focus()
		} else {
			m.register.inputs[i].Blur()
		}
	}
	return m, textinput.Blink
}

func (m appModel) submitRegister(name, username, password string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		err := services.SessionService.Register(ctx, name, username, password)
		return registerDoneMsg{err: err}
	}
}

func (r registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account") + "\n\n")

	labels := []string{"Name", "Username", "Password"}
	for i, input := range r.inputs {
		b.WriteString(labels[i] + ": " + input.View() + "\n")
	}

	if r.submitting {
		b.WriteString("\n" + statusStyle.Render("Registering...") + "\n")
	}
	if r.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(r.errMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter register  esc back to login"))
	return b.String()
}
