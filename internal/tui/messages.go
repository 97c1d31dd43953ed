package tui

import "github.com/MKhiriev/go-task-tracker/models"

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	err error
}

type tasksLoadedMsg struct {
	err error
}

type taskSavedMsg struct {
	task models.Task
	err  error
}

type taskDeletedMsg struct {
	taskID string
	err    error
}
