package tests

import (
	"context"
	"testing"

	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstIndex(int) int { return 0 }

func TestAutoComboPicker_Run(t *testing.T) {
	tests := []struct {
		name        string
		records     []domain.RawDish
		wantOutcome domain.AutoComboOutcome
		wantCount   int
	}{
		{
			name:        "full catalog",
			records:     lunchRecords(),
			wantOutcome: domain.OutcomeFullCombo,
			wantCount:   4,
		},
		{
			name:        "empty catalog",
			records:     nil,
			wantOutcome: domain.OutcomeFailed,
			wantCount:   0,
		},
		{
			name:        "soup only",
			records:     []domain.RawDish{rawDish("tomato-soup", "Tomato soup", "soup", "veg", 100)},
			wantOutcome: domain.OutcomePartial,
			wantCount:   1,
		},
		{
			name: "dessert only",
			records: []domain.RawDish{
				rawDish("cake", "Cheesecake", "dessert", "veg", 90),
			},
			wantOutcome: domain.OutcomeFailed,
			wantCount:   0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := newMemoryStore()
			catalog := loadCatalog(t, store, testCase.records)
			state := newSelection(t, store)

			picker := service.NewAutoComboPicker(domain.DefaultComboRules).WithRandom(firstIndex)
			outcome, err := picker.Run(context.Background(), state, catalog)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantOutcome, outcome)
			assert.Equal(t, testCase.wantCount, state.NonEmptyCount())
			assert.Equal(t, "", state.Get(domain.CategoryDessert))
		})
	}
}

func TestAutoComboPicker_DiscardsPreviousSelection(t *testing.T) {
	store := newMemoryStore()
	catalog := loadCatalog(t, store, lunchRecords())
	state := newSelection(t, store)
	ctx := context.Background()

	_, err := state.Select(ctx, domain.CategoryDessert, "cake")
	require.NoError(t, err)

	outcome, err := service.NewAutoComboPicker(domain.DefaultComboRules).Run(ctx, state, catalog)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeFullCombo, outcome)
	assert.Equal(t, "", state.Get(domain.CategoryDessert))

	restored := newSelection(t, store)
	assert.Equal(t, state.Snapshot(), restored.Snapshot())
}

func TestAutoComboPicker_PicksByIndex(t *testing.T) {
	store := newMemoryStore()
	catalog := loadCatalog(t, store, []domain.RawDish{
		rawDish("shchi", "Щи", "soup", "non-veg", 150),
		rawDish("borshch", "Борщ", "soup", "non-veg", 170),
		rawDish("ukha", "Уха", "soup", "non-veg", 190),
	})
	state := newSelection(t, store)

	picker := service.NewAutoComboPicker(domain.DefaultComboRules).WithRandom(func(n int) int {
		assert.Equal(t, 3, n)
		return n - 1
	})
	outcome, err := picker.Run(context.Background(), state, catalog)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePartial, outcome)
	assert.Equal(t, "shchi", state.Get(domain.CategorySoup))
}
