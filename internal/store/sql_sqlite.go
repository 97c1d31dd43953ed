package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/migrations"
)

// DB wraps the local SQLite connection shared by the repositories.
type DB struct {
	*sql.DB
}

// NewSQLiteDatabase opens (creating if necessary) the local SQLite database
// at dsn and brings the schema up to date with the embedded goose migrations.
func NewSQLiteDatabase(dsn string, log *logger.Logger) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local sqlite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping local sqlite database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate local sqlite database: %w", err)
	}

	log.Debug().Str("dsn", dsn).Msg("local sqlite database ready")

	return &DB{db}, nil
}
