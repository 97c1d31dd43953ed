package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

// Local-storage keys for the three view preferences. Each is read and
// written independently, so corrupting one leaves the others intact.
const (
	filterStatusKey   = "task_filter_status"
	filterPriorityKey = "task_filter_priority"
	sortKey           = "task_sort"
)

type preferenceService struct {
	storages *store.ClientStorages
	log      *logger.Logger
}

// NewPreferenceService builds the preference persistence on top of the local
// settings repository.
func NewPreferenceService(storages *store.ClientStorages, log *logger.Logger) PreferenceService {
	return &preferenceService{storages: storages, log: log}
}

func (p *preferenceService) Load(ctx context.Context) models.ViewPreferences {
	prefs := models.DefaultViewPreferences()

	if raw, ok := p.read(ctx, filterStatusKey); ok {
		if parsed, valid := models.ParseFilterStatus(raw); valid {
			prefs.FilterStatus = parsed
		} else {
			p.log.Warn().Str("key", filterStatusKey).Str("value", raw).Msg("ignoring corrupt preference")
		}
	}

	if raw, ok := p.read(ctx, filterPriorityKey); ok {
		if parsed, valid := models.ParseFilterPriority(raw); valid {
			prefs.FilterPriority = parsed
		} else {
			p.log.Warn().Str("key", filterPriorityKey).Str("value", raw).Msg("ignoring corrupt preference")
		}
	}

	if raw, ok := p.read(ctx, sortKey); ok {
		if parsed, valid := models.ParseSortOrder(raw); valid {
			prefs.Sort = parsed
		} else {
			p.log.Warn().Str("key", sortKey).Str("value", raw).Msg("ignoring corrupt preference")
		}
	}

	return prefs
}

func (p *preferenceService) SaveFilterStatus(ctx context.Context, filter models.FilterStatus) error {
	if err := p.storages.Settings.Set(ctx, filterStatusKey, string(filter)); err != nil {
		return fmt.Errorf("save status filter: %w", err)
	}
	return nil
}

func (p *preferenceService) SaveFilterPriority(ctx context.Context, filter models.FilterPriority) error {
	if err := p.storages.Settings.Set(ctx, filterPriorityKey, string(filter)); err != nil {
		return fmt.Errorf("save priority filter: %w", err)
	}
	return nil
}

func (p *preferenceService) SaveSort(ctx context.Context, sort models.SortOrder) error {
	if err := p.storages.Settings.Set(ctx, sortKey, string(sort)); err != nil {
		return fmt.Errorf("save sort order: %w", err)
	}
	return nil
}

// read fetches one preference key. Any failure — missing key or broken
// storage — degrades to "no preference"; only unexpected errors are logged.
func (p *preferenceService) read(ctx context.Context, key string) (string, bool) {
	value, err := p.storages.Settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			p.log.Warn().Err(err).Str("key", key).Msg("failed to read preference")
		}
		return "", false
	}
	return value, true
}
