package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-tracker/models"
)

// formModel is the create/edit screen. editID is empty for a new task; for an
// edit it holds the identity of the task being changed.
type formModel struct {
	editID     string
	inputs     []textinput.Model
	focus      int
	status     models.TaskStatus
	priority   models.TaskPriority
	submitting bool
	errMsg     string
}

func newFormModel(task *models.Task) formModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description"

	f := formModel{
		inputs:   []textinput.Model{title, description},
		status:   models.StatusPending,
		priority: models.PriorityMedium,
	}
	if task != nil {
		f.editID = task.ID
		f.inputs[0].SetValue(task.Title)
		f.inputs[1].SetValue(task.Description)
		f.status = task.Status
		f.priority = task.Priority
	}
	return f
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.screen = screenList
			return m, nil
		case "tab", "down":
			m.form.focus = (m.form.focus + 1) % len(m.form.inputs)
			return m.focusForm()
		case "shift+tab", "up":
			m.form.focus = (m.form.focus + len(m.form.inputs) - 1) % len(m.form.inputs)
			return m.focusForm()
		case "ctrl+t":
			m.form.status = nextStatus(m.form.status)
			return m, nil
		case "ctrl+p":
			m.form.priority = nextPriority(m.form.priority)
			return m, nil
		case "enter":
			title := strings.TrimSpace(m.form.inputs[0].Value())
			if title == "" {
				m.form.errMsg = "Title is required"
				return m, nil
			}
			m.form.submitting = true
			m.form.errMsg = ""
			return m, m.submitForm()
		}

	case taskSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if next, lost := m.toLoginOnLostSession(); lost {
				return next, textinput.Blink
			}
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		m.list.statusMsg = fmt.Sprintf("Saved %q", msg.task.Title)
		m.list.cursor = m.clampCursor(m.list.cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) focusForm() (tea.Model, tea.Cmd) {
	for i := range m.form.inputs {
		if i == m.form.focus {
			m.form.inputs[i].Focus()
		} else {
			m.form.inputs[i].Blur()
		}
	}
	return m, textinput.Blink
}

func (m appModel) submitForm() tea.Cmd {
	ctx, services := m.ctx, m.services
	form := m.form
	title := strings.TrimSpace(form.inputs[0].Value())
	description := strings.TrimSpace(form.inputs[1].Value())

	if form.editID == "" {
		draft := models.CreateTaskRequest{
			Title:       title,
			Description: description,
			Status:      form.status,
			Priority:    form.priority,
		}
		return func() tea.Msg {
			task, err := services.TaskService.Create(ctx, draft)
			return taskSavedMsg{task: task, err: err}
		}
	}

	status, priority := form.status, form.priority
	updates := models.UpdateTaskRequest{
		Title:       &title,
		Description: &description,
		Status:      &status,
		Priority:    &priority,
	}
	return func() tea.Msg {
		task, err := services.TaskService.Update(ctx, form.editID, updates)
		return taskSavedMsg{task: task, err: err}
	}
}

func nextPriority(p models.TaskPriority) models.TaskPriority {
	switch p {
	case models.PriorityLow:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityHigh
	default:
		return models.PriorityLow
	}
}

func (f formModel) View() string {
	var b strings.Builder

	header := "New task"
	if f.editID != "" {
		header = "Edit task"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	labels := []string{"Title", "Description"}
	for i, input := range f.inputs {
		b.WriteString(labels[i] + ": " + input.View() + "\n")
	}
	b.WriteString("Status: " + string(f.status) + "   Priority: " + string(f.priority) + "\n")

	if f.submitting {
		b.WriteString("\n" + statusStyle.Render("Saving...") + "\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter save  ctrl+t status  ctrl+p priority  esc cancel"))
	return b.String()
}
