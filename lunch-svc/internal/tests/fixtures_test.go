package tests

import (
	"context"
	"encoding/json"
	"testing"

	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/service"
	"lunchtime/lunch-svc/internal/storage"

	"github.com/stretchr/testify/require"
)

const testSession = "0b7f6d3e-3c1a-4a5e-9a0e-7d0f2c9b1a11"

func rawDish(keyword, name, category, kind string, price any) domain.RawDish {
	encoded, _ := json.Marshal(price)
	return domain.RawDish{
		Keyword:  keyword,
		Name:     name,
		Category: category,
		Kind:     kind,
		Price:    encoded,
	}
}

// lunchRecords is the reference catalog: a veg soup, a non-veg main and a
// veg salad, plus a drink and a dessert.
func lunchRecords() []domain.RawDish {
	return []domain.RawDish{
		rawDish("tomato-soup", "Tomato soup", "soup", "veg", 100),
		rawDish("chicken", "Chicken", "main", "non-veg", 200),
		rawDish("greek", "Greek salad", "salad", "veg", 80),
		rawDish("juice", "Orange juice", "drink", "veg", 60),
		rawDish("cake", "Cheesecake", "dessert", "veg", 90),
	}
}

func loadCatalog(t *testing.T, store service.StateStore, records []domain.RawDish) *service.CatalogStore {
	t.Helper()
	catalog := service.NewCatalogStore(store, service.SlotKey(testSession, service.CatalogSlot))
	require.NoError(t, catalog.Load(context.Background(), records))
	return catalog
}

func newSelection(t *testing.T, store service.StateStore) *service.SelectionState {
	t.Helper()
	state, err := service.RestoreSelection(context.Background(), store, service.SlotKey(testSession, service.SelectionSlot))
	require.NoError(t, err)
	return state
}

func newMemoryStore() *storage.MemoryStateStore {
	return storage.NewMemoryStateStore()
}
