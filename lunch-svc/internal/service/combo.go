package service

import "lunchtime/lunch-svc/internal/domain"

// DishLookup resolves a keyword to a dish.
type DishLookup interface {
	Get(keyword string) (domain.Dish, bool)
}

// Evaluate prices a selection against the catalog. Keywords the catalog can
// no longer resolve are skipped but left in the selection.
func Evaluate(selection domain.Selection, catalog DishLookup, rules domain.ComboRules) domain.ComboResult {
	result := domain.ComboResult{
		Items:          []domain.Dish{},
		RequiredFilled: []domain.Category{},
	}

	resolved := make(map[domain.Category]domain.Dish, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		kw := selection[c]
		if kw == "" {
			continue
		}
		dish, ok := catalog.Get(kw)
		if !ok {
			continue
		}
		resolved[c] = dish
		result.Items = append(result.Items, dish)
		result.Subtotal += dish.Price
	}

	var veg, other int
	for _, c := range rules.Required {
		dish, ok := resolved[c]
		if !ok {
			continue
		}
		result.RequiredFilled = append(result.RequiredFilled, c)
		if dish.Kind == domain.KindVeg {
			veg++
		} else {
			other++
		}
	}

	result.IsFullCombo = len(rules.Required) > 0 && len(result.RequiredFilled) == len(rules.Required)
	result.HasKindConflict = len(result.RequiredFilled) >= 2 && veg > 0 && other > 0
	if result.IsFullCombo {
		result.Discount = rules.Discount
	}
	result.Total = result.Subtotal - result.Discount
	return result
}
