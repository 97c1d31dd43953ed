package store

import (
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// ClientStorages groups all client-local repositories.
type ClientStorages struct {
	Settings SettingsRepository
}

// NewClientStorages opens the local database described by cfg and wires the
// repositories on top of it.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewSQLiteDatabase(cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create local database: %w", err)
	}

	return &ClientStorages{
		Settings: NewSettingsRepository(db, log),
	}, nil
}
