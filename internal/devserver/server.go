// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver is an in-memory implementation of the task-tracker REST
// contract, used for local development and end-to-end testing of the client.
// It is not a production server: state lives in process memory and is lost on
// restart.
package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

type userRecord struct {
	name         string
	passwordHash []byte
}

// Server holds the in-memory accounts and per-user task collections.
type Server struct {
	cfg *config.ServerConfig
	log *logger.Logger

	mu     sync.RWMutex
	users  map[string]userRecord
	tasks  map[string][]models.Task
	nextID int64
}

// NewServer builds an empty development server.
func NewServer(cfg *config.ServerConfig, log *logger.Logger) *Server {
	return &Server{
		cfg:    cfg,
		log:    log,
		users:  make(map[string]userRecord),
		tasks:  make(map[string][]models.Task),
		nextID: 1,
	}
}

// Handler assembles the chi router implementing the REST contract.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withLogger)

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)

	r.Route("/v1/tasks", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Put("/{taskID}", s.handleUpdateTask)
		r.Patch("/{taskID}/status", s.handleUpdateTaskStatus)
		r.Delete("/{taskID}", s.handleDeleteTask)
	})

	return r
}

// ListenAndServe runs the server on the configured address until the process
// is stopped.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("address", s.cfg.HTTPAddress).Msg("development server listening")
	return http.ListenAndServe(s.cfg.HTTPAddress, s.Handler())
}

func (s *Server) allocateID() string {
	id := s.nextID
	s.nextID++
	return strconv.FormatInt(id, 10)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    r.URL.Path,
	})
}
