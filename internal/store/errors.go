package store

import "errors"

var (
	// ErrKeyNotFound is returned by [SettingsRepository.Get] for keys that
	// were never written. Callers treat it as "no preference saved".
	ErrKeyNotFound = errors.New("settings key not found")
)
