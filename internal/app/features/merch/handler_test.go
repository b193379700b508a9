package merch_test

import (
	"testing"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/merch"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

func TestStorefront_OpenItemsFirstThenByName(t *testing.T) {
	items := []models.MerchItem{
		{ID: "a", Name: "Zip Hoodie", SalesOpen: false},
		{ID: "b", Name: "Cap", SalesOpen: true},
		{ID: "c", Name: "Badge", SalesOpen: false},
		{ID: "d", Name: "Tee", SalesOpen: true},
	}

	got := merch.Storefront(items)

	wantOrder := []string{"Cap", "Tee", "Badge", "Zip Hoodie"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("position %d = %q, want %q", i, got[i].Name, name)
		}
	}

	if items[0].Name != "Zip Hoodie" {
		t.Error("Storefront mutated its input")
	}
}
