package tests

import (
	"testing"

	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	catalog := loadCatalog(t, newMemoryStore(), lunchRecords())
	rules := domain.DefaultComboRules

	tests := []struct {
		name         string
		selection    domain.Selection
		wantFull     bool
		wantConflict bool
		wantSubtotal int
		wantDiscount int
		wantTotal    int
		wantRequired []domain.Category
	}{
		{
			name:         "empty selection",
			selection:    domain.Selection{},
			wantRequired: []domain.Category{},
		},
		{
			name: "full combo with kind conflict",
			selection: domain.Selection{
				domain.CategorySoup: "tomato-soup", domain.CategoryMain: "chicken", domain.CategorySalad: "greek",
			},
			wantFull:     true,
			wantConflict: true,
			wantSubtotal: 380,
			wantDiscount: 50,
			wantTotal:    330,
			wantRequired: []domain.Category{domain.CategorySoup, domain.CategoryMain, domain.CategorySalad},
		},
		{
			name: "soup and main only",
			selection: domain.Selection{
				domain.CategorySoup: "tomato-soup", domain.CategoryMain: "chicken",
			},
			wantConflict: true,
			wantSubtotal: 300,
			wantTotal:    300,
			wantRequired: []domain.Category{domain.CategorySoup, domain.CategoryMain},
		},
		{
			name: "single required dish never conflicts",
			selection: domain.Selection{
				domain.CategoryMain: "chicken", domain.CategoryDrink: "juice",
			},
			wantSubtotal: 260,
			wantTotal:    260,
			wantRequired: []domain.Category{domain.CategoryMain},
		},
		{
			name: "drink and dessert count in subtotal only",
			selection: domain.Selection{
				domain.CategorySoup: "tomato-soup", domain.CategoryMain: "chicken", domain.CategorySalad: "greek",
				domain.CategoryDrink: "juice", domain.CategoryDessert: "cake",
			},
			wantFull:     true,
			wantConflict: true,
			wantSubtotal: 530,
			wantDiscount: 50,
			wantTotal:    480,
			wantRequired: []domain.Category{domain.CategorySoup, domain.CategoryMain, domain.CategorySalad},
		},
		{
			name: "unresolvable keyword is skipped",
			selection: domain.Selection{
				domain.CategorySoup: "gone-soup", domain.CategoryMain: "chicken", domain.CategorySalad: "greek",
			},
			wantConflict: true,
			wantSubtotal: 280,
			wantTotal:    280,
			wantRequired: []domain.Category{domain.CategoryMain, domain.CategorySalad},
		},
		{
			name: "all veg required dishes",
			selection: domain.Selection{
				domain.CategorySoup: "tomato-soup", domain.CategorySalad: "greek",
			},
			wantSubtotal: 180,
			wantTotal:    180,
			wantRequired: []domain.Category{domain.CategorySoup, domain.CategorySalad},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := service.Evaluate(testCase.selection, catalog, rules)

			assert.Equal(t, testCase.wantFull, result.IsFullCombo)
			assert.Equal(t, testCase.wantConflict, result.HasKindConflict)
			assert.Equal(t, testCase.wantSubtotal, result.Subtotal)
			assert.Equal(t, testCase.wantDiscount, result.Discount)
			assert.Equal(t, testCase.wantTotal, result.Total)
			assert.Equal(t, testCase.wantRequired, result.RequiredFilled)
			assert.Equal(t, result.Subtotal-result.Discount, result.Total)
			assert.Contains(t, []int{0, rules.Discount}, result.Discount)
		})
	}
}

func TestEvaluate_OptionalCategoriesNeverChangeFullCombo(t *testing.T) {
	catalog := loadCatalog(t, newMemoryStore(), lunchRecords())
	base := domain.Selection{domain.CategorySoup: "tomato-soup", domain.CategoryMain: "chicken"}

	for _, full := range []bool{false, true} {
		selection := base.Clone()
		if full {
			selection[domain.CategorySalad] = "greek"
		}
		want := service.Evaluate(selection, catalog, domain.DefaultComboRules).IsFullCombo

		selection[domain.CategoryDrink] = "juice"
		assert.Equal(t, want, service.Evaluate(selection, catalog, domain.DefaultComboRules).IsFullCombo)

		selection[domain.CategoryDessert] = "cake"
		assert.Equal(t, want, service.Evaluate(selection, catalog, domain.DefaultComboRules).IsFullCombo)

		delete(selection, domain.CategoryDrink)
		assert.Equal(t, want, service.Evaluate(selection, catalog, domain.DefaultComboRules).IsFullCombo)
	}
}

func TestEvaluate_UnsetKindCountsAsNonVeg(t *testing.T) {
	catalog := loadCatalog(t, newMemoryStore(), []domain.RawDish{
		rawDish("borscht", "Borscht", "soup", "", 120),
		rawDish("greek", "Greek salad", "salad", "veg", 80),
	})

	result := service.Evaluate(domain.Selection{
		domain.CategorySoup: "borscht", domain.CategorySalad: "greek",
	}, catalog, domain.DefaultComboRules)

	assert.True(t, result.HasKindConflict)
}

func TestEvaluate_CustomRules(t *testing.T) {
	catalog := loadCatalog(t, newMemoryStore(), lunchRecords())
	rules := domain.ComboRules{
		Discount: 70,
		Required: []domain.Category{domain.CategorySoup, domain.CategoryDrink},
	}

	result := service.Evaluate(domain.Selection{
		domain.CategorySoup: "tomato-soup", domain.CategoryDrink: "juice",
	}, catalog, rules)

	assert.True(t, result.IsFullCombo)
	assert.False(t, result.HasKindConflict)
	assert.Equal(t, 160, result.Subtotal)
	assert.Equal(t, 90, result.Total)
}
