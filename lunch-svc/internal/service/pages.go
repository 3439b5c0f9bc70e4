package service

import (
	"context"
	"fmt"
	"log"

	"lunchtime/config"
	"lunchtime/lunch-svc/internal/domain"
)

// Persisted slot names, kept identical to the widget's local storage keys.
const (
	SelectionSlot = "lunchtimeSelectedDishes"
	CatalogSlot   = "lunchtimeDishesData"
)

func SlotKey(session, slot string) string {
	return "lunchtime:" + session + ":" + slot
}

type MenuPage struct {
	Categories map[domain.Category][]domain.Dish `json:"categories"`
	Selection  domain.Selection                  `json:"selection"`
	Summary    domain.ComboResult                `json:"summary"`
}

type CheckoutPage struct {
	Selection  domain.Selection   `json:"selection"`
	Summary    domain.ComboResult `json:"summary"`
	Advisories []domain.Advisory  `json:"advisories,omitempty"`
}

// SelectionChange is the delta a mutation produced, for the presentation
// layer to decide what to redraw.
type SelectionChange struct {
	Category   domain.Category         `json:"category,omitempty"`
	Previous   string                  `json:"previous,omitempty"`
	Current    string                  `json:"current,omitempty"`
	Outcome    domain.AutoComboOutcome `json:"outcome,omitempty"`
	Selection  domain.Selection        `json:"selection"`
	Summary    domain.ComboResult      `json:"summary"`
	Advisories []domain.Advisory       `json:"advisories,omitempty"`
}

type SubmitResult struct {
	Order     *domain.Order      `json:"order"`
	Summary   domain.ComboResult `json:"summary"`
	Advisory  domain.Advisory    `json:"advisory"`
	QRCodeURL string             `json:"qr_code_url"`
}

// pageState is what a page holds in memory between its own events.
type pageState struct {
	catalog   *CatalogStore
	selection *SelectionState
}

// openPage restores the visitor's cached catalog and selection. Store read
// failures degrade to empty state and are only logged.
func openPage(ctx context.Context, store StateStore, session string) *pageState {
	catalog := NewCatalogStore(store, SlotKey(session, CatalogSlot))
	if _, err := catalog.Restore(ctx); err != nil {
		log.Printf("[lunch-svc] session=%s catalog restore: %v", session, err)
	}
	selection, err := RestoreSelection(ctx, store, SlotKey(session, SelectionSlot))
	if err != nil {
		log.Printf("[lunch-svc] session=%s selection restore: %v", session, err)
	}
	return &pageState{catalog: catalog, selection: selection}
}

func (p *pageState) change(rules domain.ComboRules) *SelectionChange {
	snapshot := p.selection.Snapshot()
	return &SelectionChange{
		Selection: snapshot,
		Summary:   Evaluate(snapshot, p.catalog, rules),
	}
}

// NewComboRules merges a rules file over the defaults.
func NewComboRules(file config.ComboRules) (domain.ComboRules, error) {
	rules := domain.DefaultComboRules
	if file.Discount != nil {
		rules.Discount = *file.Discount
	}
	if len(file.Required) > 0 {
		required, err := parseCategories(file.Required)
		if err != nil {
			return rules, err
		}
		rules.Required = required
	}
	if len(file.Auto) > 0 {
		auto, err := parseCategories(file.Auto)
		if err != nil {
			return rules, err
		}
		rules.Auto = auto
	}
	return rules, nil
}

func parseCategories(names []string) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(names))
	seen := map[domain.Category]bool{}
	for _, name := range names {
		c := domain.Category(name)
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}
