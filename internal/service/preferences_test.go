package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/mock"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

func newTestPrefSvc(t *testing.T, ctrl *gomock.Controller) (PreferenceService, *mock.MockSettingsRepository) {
	t.Helper()
	mockSettings := mock.NewMockSettingsRepository(ctrl)
	svc := NewPreferenceService(&store.ClientStorages{Settings: mockSettings}, logger.Nop())
	return svc, mockSettings
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestPreferenceService_Load_DefaultsWhenNothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Get(ctx, "task_filter_status").Return("", store.ErrKeyNotFound)
	mockSettings.EXPECT().Get(ctx, "task_filter_priority").Return("", store.ErrKeyNotFound)
	mockSettings.EXPECT().Get(ctx, "task_sort").Return("", store.ErrKeyNotFound)

	prefs := svc.Load(ctx)

	assert.Equal(t, models.DefaultViewPreferences(), prefs)
}

func TestPreferenceService_Load_RestoresSavedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Get(ctx, "task_filter_status").Return("IN_PROGRESS", nil)
	mockSettings.EXPECT().Get(ctx, "task_filter_priority").Return("HIGH", nil)
	mockSettings.EXPECT().Get(ctx, "task_sort").Return("priority", nil)

	prefs := svc.Load(ctx)

	assert.Equal(t, models.FilterStatus(models.StatusInProgress), prefs.FilterStatus)
	assert.Equal(t, models.FilterPriority(models.PriorityHigh), prefs.FilterPriority)
	assert.Equal(t, models.SortPriority, prefs.Sort)
	assert.Empty(t, prefs.SearchQuery, "search is never persisted")
}

// Ключи независимы: порча одного не трогает остальные
func TestPreferenceService_Load_CorruptKeyDegradesAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Get(ctx, "task_filter_status").Return("NOT_A_STATUS", nil)
	mockSettings.EXPECT().Get(ctx, "task_filter_priority").Return("LOW", nil)
	mockSettings.EXPECT().Get(ctx, "task_sort").Return("title", nil)

	prefs := svc.Load(ctx)

	assert.Equal(t, models.FilterStatusAll, prefs.FilterStatus, "corrupt value falls back to default")
	assert.Equal(t, models.FilterPriority(models.PriorityLow), prefs.FilterPriority)
	assert.Equal(t, models.SortTitle, prefs.Sort)
}

func TestPreferenceService_Load_StorageFailureIsNeverFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	broken := errors.New("database is locked")
	mockSettings.EXPECT().Get(ctx, "task_filter_status").Return("", broken)
	mockSettings.EXPECT().Get(ctx, "task_filter_priority").Return("", broken)
	mockSettings.EXPECT().Get(ctx, "task_sort").Return("", broken)

	prefs := svc.Load(ctx)

	assert.Equal(t, models.DefaultViewPreferences(), prefs)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestPreferenceService_Save_WritesRawTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Set(ctx, "task_filter_status", "PENDING").Return(nil)
	mockSettings.EXPECT().Set(ctx, "task_filter_priority", "MEDIUM").Return(nil)
	mockSettings.EXPECT().Set(ctx, "task_sort", "created").Return(nil)

	require.NoError(t, svc.SaveFilterStatus(ctx, models.FilterStatus(models.StatusPending)))
	require.NoError(t, svc.SaveFilterPriority(ctx, models.FilterPriority(models.PriorityMedium)))
	require.NoError(t, svc.SaveSort(ctx, models.SortCreated))
}

func TestPreferenceService_Save_PropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestPrefSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Set(ctx, "task_sort", "title").Return(errors.New("disk full"))

	err := svc.SaveSort(ctx, models.SortTitle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save sort order")
}
