package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "enter":
		taskID := m.confirmID
		m.confirmID = ""
		m.screen = screenList
		return m, m.deleteTask(taskID)
	case "n", "esc":
		m.confirmID = ""
		m.screen = screenList
		return m, nil
	}
	return m, nil
}

func (m appModel) deleteTask(taskID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		err := services.TaskService.Delete(ctx, taskID)
		return taskDeletedMsg{taskID: taskID, err: err}
	}
}

func (m appModel) confirmView() string {
	title := m.confirmID
	for _, task := range m.services.TaskService.Tasks() {
		if task.ID == m.confirmID {
			title = task.Title
			break
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete task") + "\n\n")
	b.WriteString("Delete " + selectedStyle.Render(title) + "?\n")
	b.WriteString("\n" + dimStyle.Render("y delete  n cancel"))
	return b.String()
}
