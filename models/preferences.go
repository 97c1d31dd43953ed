package models

// FilterStatus selects which task statuses the derived view keeps.
// FilterAll ("ALL") is a no-op filter.
type FilterStatus string

// FilterPriority selects which task priorities the derived view keeps.
type FilterPriority string

// SortOrder selects how the derived view is ordered. Values match the raw
// tokens persisted in local storage.
type SortOrder string

const (
	FilterStatusAll FilterStatus = "ALL"

	FilterPriorityAll FilterPriority = "ALL"

	// SortCreated orders most-recently-created first (the default).
	SortCreated SortOrder = "created"
	// SortPriority orders by descending severity, HIGH first.
	SortPriority SortOrder = "priority"
	// SortTitle orders lexicographically ascending by title.
	SortTitle SortOrder = "title"
)

// ParseFilterStatus maps a raw stored value to a FilterStatus. Unknown or
// corrupt values report ok=false so callers fall back to the default.
func ParseFilterStatus(raw string) (FilterStatus, bool) {
	switch FilterStatus(raw) {
	case FilterStatusAll,
		FilterStatus(StatusPending),
		FilterStatus(StatusInProgress),
		FilterStatus(StatusCompleted):
		return FilterStatus(raw), true
	}
	return FilterStatusAll, false
}

// ParseFilterPriority maps a raw stored value to a FilterPriority.
func ParseFilterPriority(raw string) (FilterPriority, bool) {
	switch FilterPriority(raw) {
	case FilterPriorityAll,
		FilterPriority(PriorityLow),
		FilterPriority(PriorityMedium),
		FilterPriority(PriorityHigh):
		return FilterPriority(raw), true
	}
	return FilterPriorityAll, false
}

// ParseSortOrder maps a raw stored value to a SortOrder.
func ParseSortOrder(raw string) (SortOrder, bool) {
	switch SortOrder(raw) {
	case SortCreated, SortPriority, SortTitle:
		return SortOrder(raw), true
	}
	return SortCreated, false
}

// ViewPreferences is a pure query description applied over the task cache to
// produce the derived view. The three filter/sort fields are persisted in
// local storage under independent keys; SearchQuery is session-only.
type ViewPreferences struct {
	FilterStatus   FilterStatus
	FilterPriority FilterPriority
	Sort           SortOrder
	SearchQuery    string
}

// DefaultViewPreferences returns the view applied before any preference has
// been saved: everything visible, newest first, no search.
func DefaultViewPreferences() ViewPreferences {
	return ViewPreferences{
		FilterStatus:   FilterStatusAll,
		FilterPriority: FilterPriorityAll,
		Sort:           SortCreated,
	}
}
