// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client core: the session state machine, the
// write-through task cache with its derived view, and the view-preference
// persistence. Presentation layers call these services and render whatever
// state comes back; no service knows anything about rendering or navigation.
package service

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

// SessionService is the single source of truth for "who is logged in".
//
// State machine: INITIALIZING -> {AUTHENTICATED | UNAUTHENTICATED};
// AUTHENTICATED -> UNAUTHENTICATED on logout or on any 401 observed by the
// gateway; the only way back is a fresh successful Login.
type SessionService interface {
	// Restore resolves the session once at process start. If a persisted
	// token exists and decodes, the identity is re-derived from it without
	// contacting the server; an expired-but-decodable token therefore counts
	// as a live session until the first API call rejects it. Returns the
	// resolved session snapshot.
	Restore(ctx context.Context) models.Session

	// Login exchanges credentials for a bearer token, persists it, and
	// transitions the session to authenticated. On failure the session
	// becomes unauthenticated and the error is returned for the form layer
	// to display; no retry is attempted.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Register creates an account. It does not authenticate the caller:
	// success only signals the presentation layer to navigate to login.
	// Failures carry the server's message verbatim.
	Register(ctx context.Context, name, username, password string) error

	// Logout clears the persisted token and resets the session. It is
	// synchronous and cannot fail.
	Logout(ctx context.Context)

	// Session returns the current session snapshot.
	Session() models.Session
}

// TaskService owns the authoritative in-memory task collection and its
// derived, filtered/sorted/searched view. All mutations are write-through:
// the cache changes only after the server confirms, never speculatively.
type TaskService interface {
	// Load fetches all tasks for the session and replaces the cache. On
	// failure the cache is left empty and the error is returned, so callers
	// can tell "no tasks" from "load failed".
	Load(ctx context.Context) ([]models.Task, error)

	// Tasks returns a copy of the raw cached collection.
	Tasks() []models.Task

	// View returns the derived view: status filter, then priority filter,
	// then case-insensitive search over title and description, then a stable
	// sort. Recomputed only when tasks or preferences have changed.
	View() []models.Task

	// Preferences returns the currently applied view preferences.
	Preferences() models.ViewPreferences

	// Create submits the draft; on success the returned task is prepended to
	// the cache (most-recent-first). On failure the cache is untouched.
	Create(ctx context.Context, draft models.CreateTaskRequest) (models.Task, error)

	// Update submits a partial update; on success the server's full returned
	// task replaces the cached copy by identity. On failure the cache is
	// untouched.
	Update(ctx context.Context, taskID string, updates models.UpdateTaskRequest) (models.Task, error)

	// SetStatus updates only the status of a task, with Update's cache
	// semantics.
	SetStatus(ctx context.Context, taskID string, status models.TaskStatus) (models.Task, error)

	// Delete removes the task on the server; only on confirmed success is it
	// evicted from the cache.
	Delete(ctx context.Context, taskID string) error

	// ApplyPreferences installs restored preferences without persisting them
	// back. Used once at startup with the result of PreferenceService.Load.
	ApplyPreferences(prefs models.ViewPreferences)

	// SetFilterStatus applies and persists a new status filter.
	SetFilterStatus(ctx context.Context, filter models.FilterStatus)

	// SetFilterPriority applies and persists a new priority filter.
	SetFilterPriority(ctx context.Context, filter models.FilterPriority)

	// SetSort applies and persists a new sort order.
	SetSort(ctx context.Context, sort models.SortOrder)

	// SetSearchQuery applies a new search query. The query is session-only
	// and never persisted.
	SetSearchQuery(query string)
}

// PreferenceService persists and restores the three view preferences, each
// under its own key, independently of task data and of each other.
type PreferenceService interface {
	// Load restores the saved preferences. Each key is read independently:
	// a missing or corrupted value yields the default for that field only
	// and is never fatal.
	Load(ctx context.Context) models.ViewPreferences

	// SaveFilterStatus persists the status filter.
	SaveFilterStatus(ctx context.Context, filter models.FilterStatus) error

	// SaveFilterPriority persists the priority filter.
	SaveFilterPriority(ctx context.Context, filter models.FilterPriority) error

	// SaveSort persists the sort order.
	SaveSort(ctx context.Context, sort models.SortOrder) error
}
