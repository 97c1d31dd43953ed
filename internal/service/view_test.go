package service

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tracker/models"
)

func viewFixture() []models.Task {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []models.Task{
		{ID: "1", Title: "Buy milk", Description: "2 litres", Status: models.StatusPending, Priority: models.PriorityLow, CreatedAt: base},
		{ID: "2", Title: "Write report", Description: "quarterly numbers", Status: models.StatusInProgress, Priority: models.PriorityHigh, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "3", Title: "Call dentist", Status: models.StatusCompleted, Priority: models.PriorityMedium, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Milk the feedback", Description: "retro notes", Status: models.StatusPending, Priority: models.PriorityHigh, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "5", Title: "Archive old docs", Status: models.StatusCompleted, Priority: models.PriorityLow, CreatedAt: base.Add(4 * time.Hour)},
	}
}

func viewIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

// ── Filters ──────────────────────────────────────────────────────────────────

func TestDeriveView_AllFiltersAreNoop(t *testing.T) {
	tasks := viewFixture()

	got := deriveView(tasks, models.DefaultViewPreferences())

	// ALL/ALL + пустой поиск: остаются все, порядок — created desc
	assert.ElementsMatch(t, viewIDs(tasks), viewIDs(got))
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, viewIDs(got))
}

func TestDeriveView_FilterByStatus(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.FilterStatus = models.FilterStatus(models.StatusCompleted)

	got := deriveView(viewFixture(), prefs)

	assert.Equal(t, []string{"5", "3"}, viewIDs(got))
}

func TestDeriveView_FilterByPriority(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.FilterPriority = models.FilterPriority(models.PriorityHigh)

	got := deriveView(viewFixture(), prefs)

	assert.Equal(t, []string{"4", "2"}, viewIDs(got))
}

func TestDeriveView_FiltersCombine(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.FilterStatus = models.FilterStatus(models.StatusPending)
	prefs.FilterPriority = models.FilterPriority(models.PriorityHigh)

	got := deriveView(viewFixture(), prefs)

	assert.Equal(t, []string{"4"}, viewIDs(got))
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestDeriveView_SearchTitleAndDescription(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches title case-insensitively", query: "MILK", want: []string{"4", "1"}},
		{name: "matches description", query: "quarterly", want: []string{"2"}},
		{name: "no matches", query: "vacation", want: []string{}},
		{name: "blank keeps everything", query: "   ", want: []string{"5", "4", "3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := models.DefaultViewPreferences()
			prefs.SearchQuery = tt.query

			got := deriveView(viewFixture(), prefs)
			assert.Equal(t, tt.want, viewIDs(got))
		})
	}
}

func TestDeriveView_SearchAppliesAfterFilters(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.FilterStatus = models.FilterStatus(models.StatusPending)
	prefs.SearchQuery = "milk"

	got := deriveView(viewFixture(), prefs)

	assert.Equal(t, []string{"4", "1"}, viewIDs(got))
}

// ── Sort ─────────────────────────────────────────────────────────────────────

func TestDeriveView_SortByTitleAscending(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.Sort = models.SortTitle

	got := deriveView(viewFixture(), prefs)

	titles := make([]string, len(got))
	for i, task := range got {
		titles[i] = task.Title
	}
	assert.True(t, sort.StringsAreSorted(titles), "titles must be non-decreasing: %v", titles)
}

func TestDeriveView_SortByPriorityDescendingSeverity(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.Sort = models.SortPriority

	got := deriveView(viewFixture(), prefs)

	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Priority.Rank(), got[i].Priority.Rank(),
			"severity must not increase down the list")
	}
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
}

// Стабильность: задачи с равным приоритетом сохраняют исходный порядок
func TestDeriveView_PrioritySortIsStable(t *testing.T) {
	prefs := models.DefaultViewPreferences()
	prefs.Sort = models.SortPriority

	got := deriveView(viewFixture(), prefs)

	// HIGH: 2 раньше 4 во входе; LOW: 1 раньше 5
	assert.Equal(t, []string{"2", "4", "3", "1", "5"}, viewIDs(got))
}

func TestDeriveView_DefaultSortNewestFirst(t *testing.T) {
	got := deriveView(viewFixture(), models.DefaultViewPreferences())

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].CreatedAt.Before(got[i].CreatedAt))
	}
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	tasks := viewFixture()
	original := viewIDs(tasks)

	prefs := models.DefaultViewPreferences()
	prefs.Sort = models.SortTitle
	_ = deriveView(tasks, prefs)

	assert.Equal(t, original, viewIDs(tasks))
}
