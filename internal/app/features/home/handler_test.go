package home_test

import (
	"testing"
	"time"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/home"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

func TestVisible_FiltersHiddenAndSortsPinnedFirst(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	events := []models.Event{
		{ID: "late", Name: "Late", StartDate: day(20)},
		{ID: "hidden", Name: "Hidden", IsHidden: true, StartDate: day(1)},
		{ID: "pinned", Name: "Pinned", IsPinned: true, StartDate: day(15)},
		{ID: "early", Name: "Early", StartDate: day(10)},
		{ID: "undated", Name: "Undated"},
	}

	got := home.Visible(events)

	wantOrder := []string{"pinned", "early", "late", "undated"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Visible returned %d events, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	events := []models.Event{
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A", IsPinned: true},
	}

	home.Visible(events)

	if events[0].ID != "b" {
		t.Error("input slice reordered")
	}
}
