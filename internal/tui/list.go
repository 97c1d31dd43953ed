package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-tracker/models"
)

type listModel struct {
	cursor    int
	loading   bool
	searching bool
	search    textinput.Model
	statusMsg string
	errMsg    string
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search"
	return listModel{search: search}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			if next, lost := m.toLoginOnLostSession(); lost {
				return next, textinput.Blink
			}
			m.list.errMsg = msg.err.Error()
			return m, nil
		}
		m.list.errMsg = ""
		m.list.cursor = m.clampCursor(m.list.cursor)
		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			if next, lost := m.toLoginOnLostSession(); lost {
				return next, textinput.Blink
			}
			m.list.errMsg = msg.err.Error()
			return m, nil
		}
		m.list.errMsg = ""
		m.list.statusMsg = fmt.Sprintf("Saved %q", msg.task.Title)
		m.list.cursor = m.clampCursor(m.list.cursor)
		return m, nil

	case taskDeletedMsg:
		if msg.err != nil {
			if next, lost := m.toLoginOnLostSession(); lost {
				return next, textinput.Blink
			}
			m.list.errMsg = msg.err.Error()
			return m, nil
		}
		m.list.errMsg = ""
		m.list.statusMsg = "Task deleted"
		m.list.cursor = m.clampCursor(m.list.cursor)
		return m, nil

	case tea.KeyMsg:
		if m.list.searching {
			return m.updateSearch(msg)
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prefs := m.services.TaskService.Preferences()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.list.cursor > 0 {
			m.list.cursor--
		}
		return m, nil

	case "down", "j":
		m.list.cursor = m.clampCursor(m.list.cursor + 1)
		return m, nil

	case "n":
		m.screen = screenForm
		m.form = newFormModel(nil)
		return m, textinput.Blink

	case "e":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.screen = screenForm
		m.form = newFormModel(&task)
		return m, textinput.Blink

	case "d":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.screen = screenConfirm
		m.confirmID = task.ID
		return m, nil

	case " ":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m, m.cycleStatus(task)

	case "f":
		m.services.TaskService.SetFilterStatus(m.ctx, nextFilterStatus(prefs.FilterStatus))
		m.list.cursor = 0
		return m, nil

	case "p":
		m.services.TaskService.SetFilterPriority(m.ctx, nextFilterPriority(prefs.FilterPriority))
		m.list.cursor = 0
		return m, nil

	case "o":
		m.services.TaskService.SetSort(m.ctx, nextSortOrder(prefs.Sort))
		m.list.cursor = 0
		return m, nil

	case "/":
		m.list.searching = true
		m.list.search.SetValue(prefs.SearchQuery)
		m.list.search.Focus()
		return m, textinput.Blink

	case "y":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(task.Title); err != nil {
			m.list.errMsg = "Clipboard unavailable"
			return m, nil
		}
		m.list.statusMsg = "Title copied to clipboard"
		return m, nil

	case "r":
		m.list.loading = true
		m.list.statusMsg = ""
		return m, m.reloadTasks()

	case "L":
		m.services.SessionService.Logout(m.ctx)
		m.screen = screenLogin
		m.login = newLoginModel()
		return m, textinput.Blink
	}

	return m, nil
}

// updateSearch routes keys to the search input while it has focus. The query
// is applied live on every keystroke; esc clears it, enter keeps it.
func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.list.searching = false
		m.list.search.Blur()
		return m, nil
	case "esc":
		m.list.searching = false
		m.list.search.Blur()
		m.list.search.SetValue("")
		m.services.TaskService.SetSearchQuery("")
		m.list.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.services.TaskService.SetSearchQuery(m.list.search.Value())
	m.list.cursor = 0
	return m, cmd
}

func (m appModel) selectedTask() (models.Task, bool) {
	view := m.services.TaskService.View()
	if len(view) == 0 {
		return models.Task{}, false
	}
	cursor := m.clampCursor(m.list.cursor)
	return view[cursor], true
}

func (m appModel) clampCursor(cursor int) int {
	view := m.services.TaskService.View()
	if len(view) == 0 {
		return 0
	}
	if cursor >= len(view) {
		return len(view) - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func (m appModel) cycleStatus(task models.Task) tea.Cmd {
	ctx, services := m.ctx, m.services
	next := nextStatus(task.Status)
	return func() tea.Msg {
		saved, err := services.TaskService.SetStatus(ctx, task.ID, next)
		return taskSavedMsg{task: saved, err: err}
	}
}

func nextStatus(s models.TaskStatus) models.TaskStatus {
	switch s {
	case models.StatusPending:
		return models.StatusInProgress
	case models.StatusInProgress:
		return models.StatusCompleted
	default:
		return models.StatusPending
	}
}

func nextFilterStatus(f models.FilterStatus) models.FilterStatus {
	switch f {
	case models.FilterStatusAll:
		return models.FilterStatus(models.StatusPending)
	case models.FilterStatus(models.StatusPending):
		return models.FilterStatus(models.StatusInProgress)
	case models.FilterStatus(models.StatusInProgress):
		return models.FilterStatus(models.StatusCompleted)
	default:
		return models.FilterStatusAll
	}
}

func nextFilterPriority(f models.FilterPriority) models.FilterPriority {
	switch f {
	case models.FilterPriorityAll:
		return models.FilterPriority(models.PriorityLow)
	case models.FilterPriority(models.PriorityLow):
		return models.FilterPriority(models.PriorityMedium)
	case models.FilterPriority(models.PriorityMedium):
		return models.FilterPriority(models.PriorityHigh)
	default:
		return models.FilterPriorityAll
	}
}

func nextSortOrder(s models.SortOrder) models.SortOrder {
	switch s {
	case models.SortCreated:
		return models.SortPriority
	case models.SortPriority:
		return models.SortTitle
	default:
		return models.SortCreated
	}
}

func (l listModel) View(tasks []models.Task, prefs models.ViewPreferences, session models.Session) string {
	var b strings.Builder

	header := "Tasks"
	if session.User != nil {
		header = "Tasks — " + session.User.Username
	}
	b.WriteString(titleStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"status:%s  priority:%s  sort:%s", prefs.FilterStatus, prefs.FilterPriority, prefs.Sort)) + "\n")

	if l.searching {
		b.WriteString("search: " + l.search.View() + "\n")
	} else if prefs.SearchQuery != "" {
		b.WriteString(dimStyle.Render("search: "+prefs.SearchQuery) + "\n")
	}
	b.WriteString("\n")

	switch {
	case l.loading:
		b.WriteString(statusStyle.Render("Loading tasks...") + "\n")
	case len(tasks) == 0:
		b.WriteString(dimStyle.Render("No tasks to show") + "\n")
	default:
		cursor := l.cursor
		if cursor >= len(tasks) {
			cursor = len(tasks) - 1
		}
		for i, task := range tasks {
			line := fmt.Sprintf("%s [%s] %s", statusMarker(task.Status), task.Priority, task.Title)
			switch {
			case i == cursor:
				line = selectedStyle.Render("> " + line)
			case task.Status == models.StatusCompleted:
				line = "  " + completedStyle.Render(line)
			default:
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if l.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(l.errMsg) + "\n")
	} else if l.statusMsg != "" {
		b.WriteString("\n" + statusStyle.Render(l.statusMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(
		"n new  e edit  d delete  space status  f/p filter  o sort  / search  y yank  r reload  L logout  q quit"))
	return b.String()
}

func statusMarker(s models.TaskStatus) string {
	switch s {
	case models.StatusCompleted:
		return "[x]"
	case models.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}
