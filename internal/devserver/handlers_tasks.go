package devserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-tracker/models"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())

	s.mu.RLock()
	tasks := make([]models.Task, len(s.tasks[username]))
	copy(tasks, s.tasks[username])
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, r, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Status.Valid() || !req.Priority.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid status or priority")
		return
	}

	s.mu.Lock()
	task := models.Task{
		ID:          s.allocateID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedAt:   time.Now().UTC(),
	}
	s.tasks[username] = append(s.tasks[username], task)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title != nil && *req.Title == "" {
		writeError(w, r, http.StatusBadRequest, "Title must not be empty")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid status")
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid priority")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[username]
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}

		if req.Title != nil {
			tasks[i].Title = *req.Title
		}
		if req.Description != nil {
			tasks[i].Description = *req.Description
		}
		if req.Status != nil {
			tasks[i].Status = *req.Status
		}
		if req.Priority != nil {
			tasks[i].Priority = *req.Priority
		}

		writeJSON(w, http.StatusOK, tasks[i])
		return
	}

	writeError(w, r, http.StatusNotFound, "Task not found")
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	status := models.TaskStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[username]
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Status = status
			writeJSON(w, http.StatusOK, tasks[i])
			return
		}
	}

	writeError(w, r, http.StatusNotFound, "Task not found")
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[username]
	for i := range tasks {
		if tasks[i].ID == taskID {
			s.tasks[username] = append(tasks[:i], tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	writeError(w, r, http.StatusNotFound, "Task not found")
}
