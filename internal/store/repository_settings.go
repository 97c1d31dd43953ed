package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository returns a [SettingsRepository] backed by the settings
// table of the local SQLite database.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build settings select query: %w", err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to read settings key")
		return "", fmt.Errorf("failed to read settings key %q: %w", key, err)
	}

	return value, nil
}

func (s *settingsRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", key).
			Msg("failed to write settings key")
		return fmt.Errorf("failed to write settings key %q: %w", key, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings delete query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to delete settings key")
		return fmt.Errorf("failed to delete settings key %q: %w", key, err)
	}

	return nil
}
