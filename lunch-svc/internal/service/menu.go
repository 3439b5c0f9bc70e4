package service

import (
	"context"
	"fmt"
	"log"

	"lunchtime/lunch-svc/internal/domain"
)

// MenuService backs the menu page: catalog listing, manual and automatic
// selection.
type MenuService struct {
	source CatalogSource
	store  StateStore
	rules  domain.ComboRules
	picker *AutoComboPicker
}

func NewMenuService(source CatalogSource, store StateStore, rules domain.ComboRules, picker *AutoComboPicker) *MenuService {
	if picker == nil {
		picker = NewAutoComboPicker(rules)
	}
	return &MenuService{source: source, store: store, rules: rules, picker: picker}
}

// Page fetches the catalog fresh and caches it for the checkout page. A
// failed fetch leaves both the cache and the selection untouched.
func (s *MenuService) Page(ctx context.Context, session string, kind domain.Kind) (*MenuPage, error) {
	records, err := s.source.ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	catalog := NewCatalogStore(s.store, SlotKey(session, CatalogSlot))
	if err := catalog.Load(ctx, records); err != nil {
		log.Printf("[lunch-svc] session=%s %v", session, err)
	}
	log.Printf("[lunch-svc] session=%s loaded %d of %d dishes", session, catalog.Len(), len(records))

	selection, err := RestoreSelection(ctx, s.store, SlotKey(session, SelectionSlot))
	if err != nil {
		log.Printf("[lunch-svc] session=%s selection restore: %v", session, err)
	}

	snapshot := selection.Snapshot()
	return &MenuPage{
		Categories: filterKind(catalog.ByCategory(), kind),
		Selection:  snapshot,
		Summary:    Evaluate(snapshot, catalog, s.rules),
	}, nil
}

// Select toggles a dish in its own category. The kind conflict warning is
// advisory only and never blocks the selection.
func (s *MenuService) Select(ctx context.Context, session, keyword string) (*SelectionChange, error) {
	page := openPage(ctx, s.store, session)

	dish, ok := page.catalog.Get(keyword)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDishNotFound, keyword)
	}

	previous, err := page.selection.Select(ctx, dish.Category, keyword)
	if err != nil {
		return nil, err
	}

	change := page.change(s.rules)
	change.Category = dish.Category
	change.Previous = previous
	change.Current = page.selection.Get(dish.Category)

	if change.Current == keyword {
		if change.Summary.HasKindConflict {
			change.Advisories = append(change.Advisories, kindConflictAdvisory())
		}
		if change.Summary.IsFullCombo {
			change.Advisories = append(change.Advisories, comboCompleteAdvisory(s.rules.Discount))
		}
	}
	return change, nil
}

func (s *MenuService) Reset(ctx context.Context, session string) (*SelectionChange, error) {
	page := openPage(ctx, s.store, session)
	if err := page.selection.Clear(ctx); err != nil {
		return nil, err
	}

	change := page.change(s.rules)
	change.Advisories = []domain.Advisory{resetAdvisory()}
	return change, nil
}

// AutoCombo replaces the selection with a random pick from the cached
// catalog.
func (s *MenuService) AutoCombo(ctx context.Context, session string) (*SelectionChange, error) {
	page := openPage(ctx, s.store, session)

	outcome, err := s.picker.Run(ctx, page.selection, page.catalog)
	if err != nil {
		return nil, err
	}
	log.Printf("[lunch-svc] session=%s auto combo outcome=%s", session, outcome)

	change := page.change(s.rules)
	change.Outcome = outcome
	change.Advisories = []domain.Advisory{autoComboAdvisory(outcome, s.rules.Discount)}
	return change, nil
}

func filterKind(grouped map[domain.Category][]domain.Dish, kind domain.Kind) map[domain.Category][]domain.Dish {
	if kind == "" {
		return grouped
	}
	filtered := make(map[domain.Category][]domain.Dish, len(grouped))
	for c, dishes := range grouped {
		for _, dish := range dishes {
			if dish.Kind == kind {
				filtered[c] = append(filtered[c], dish)
			}
		}
	}
	return filtered
}
