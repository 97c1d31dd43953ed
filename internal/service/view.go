package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-task-tracker/models"
)

// deriveView computes the read-only projection of the task cache. The order
// of application is fixed: status filter, then priority filter, then search,
// then sort — search narrows the set before sort so sort never has to
// reconsider filtered-out items. The input slice is never mutated.
func deriveView(tasks []models.Task, prefs models.ViewPreferences) []models.Task {
	filtered := filterByStatus(tasks, prefs.FilterStatus)
	filtered = filterByPriority(filtered, prefs.FilterPriority)
	filtered = searchTasks(filtered, prefs.SearchQuery)

	return sortTasks(filtered, prefs.Sort)
}

func filterByStatus(tasks []models.Task, filter models.FilterStatus) []models.Task {
	if filter == models.FilterStatusAll {
		return tasks
	}

	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if models.FilterStatus(task.Status) == filter {
			kept = append(kept, task)
		}
	}
	return kept
}

func filterByPriority(tasks []models.Task, filter models.FilterPriority) []models.Task {
	if filter == models.FilterPriorityAll {
		return tasks
	}

	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if models.FilterPriority(task.Priority) == filter {
			kept = append(kept, task)
		}
	}
	return kept
}

// searchTasks keeps tasks whose title or description contains the query,
// case-insensitively. A blank query keeps everything.
func searchTasks(tasks []models.Task, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tasks
	}

	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Description), query) {
			kept = append(kept, task)
		}
	}
	return kept
}

// sortTasks returns a sorted copy of tasks. The sort is stable, so ties keep
// their original insertion order.
//
// Semantics: "title" is lexicographic ascending, "priority" is descending
// severity (HIGH before MEDIUM before LOW), "created" (the default) is
// most-recently-created first.
func sortTasks(tasks []models.Task, order models.SortOrder) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	switch order {
	case models.SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	case models.SortPriority:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority.Rank() > sorted[j].Priority.Rank()
		})
	default: // models.SortCreated
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}
