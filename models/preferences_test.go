package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   FilterStatus
		wantOK bool
	}{
		{"ALL", FilterStatusAll, true},
		{"PENDING", FilterStatus(StatusPending), true},
		{"IN_PROGRESS", FilterStatus(StatusInProgress), true},
		{"COMPLETED", FilterStatus(StatusCompleted), true},
		{"completed", FilterStatusAll, false},
		{"", FilterStatusAll, false},
		{"garbage", FilterStatusAll, false},
	}

	for _, tt := range tests {
		got, ok := ParseFilterStatus(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
	}
}

func TestParseFilterPriority(t *testing.T) {
	tests := []struct {
		raw    string
		want   FilterPriority
		wantOK bool
	}{
		{"ALL", FilterPriorityAll, true},
		{"LOW", FilterPriority(PriorityLow), true},
		{"MEDIUM", FilterPriority(PriorityMedium), true},
		{"HIGH", FilterPriority(PriorityHigh), true},
		{"URGENT", FilterPriorityAll, false},
	}

	for _, tt := range tests {
		got, ok := ParseFilterPriority(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		raw    string
		want   SortOrder
		wantOK bool
	}{
		{"created", SortCreated, true},
		{"priority", SortPriority, true},
		{"title", SortTitle, true},
		{"CREATED", SortCreated, false},
		{"", SortCreated, false},
	}

	for _, tt := range tests {
		got, ok := ParseSortOrder(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
	}
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{State: SessionAuthenticated, Token: "tok"}.Authenticated(), "user required")
	assert.False(t, Session{State: SessionUnauthenticated, Token: "tok", User: &User{Username: "a"}}.Authenticated())
	assert.True(t, Session{State: SessionAuthenticated, Token: "tok", User: &User{Username: "a"}}.Authenticated())
}
