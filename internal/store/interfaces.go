// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides client-local persistence for the task tracker.
//
// The client deliberately stores no task data: the server is the source of
// truth and tasks live only in the in-memory cache of the service layer. What
// is persisted locally is small key/value state — the access token and the
// user's last-chosen view preferences — in a SQLite database managed through
// goose migrations.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_repository_mock.go -package=mock

// SettingsRepository is a key/value store over the local settings table.
// Each key is read and written independently, so a partially populated store
// (one preference saved, others absent) is a valid state.
type SettingsRepository interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] if the key
	// has never been written or was deleted.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
