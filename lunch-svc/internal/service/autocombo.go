package service

import (
	"context"
	"math/rand"

	"lunchtime/lunch-svc/internal/domain"
)

// AutoComboPicker fills a selection with one random dish per auto category.
type AutoComboPicker struct {
	rules domain.ComboRules
	intn  func(n int) int
}

func NewAutoComboPicker(rules domain.ComboRules) *AutoComboPicker {
	return &AutoComboPicker{rules: rules, intn: rand.Intn}
}

// WithRandom swaps the index source, mainly for tests.
func (p *AutoComboPicker) WithRandom(intn func(n int) int) *AutoComboPicker {
	p.intn = intn
	return p
}

// Run discards the current selection and picks afresh. An empty category
// is skipped, never an error; only persistence failures are returned.
func (p *AutoComboPicker) Run(ctx context.Context, state *SelectionState, catalog *CatalogStore) (domain.AutoComboOutcome, error) {
	if err := state.Clear(ctx); err != nil {
		return domain.OutcomeFailed, err
	}

	grouped := catalog.ByCategory()
	for _, c := range p.rules.Auto {
		dishes := grouped[c]
		if len(dishes) == 0 {
			continue
		}
		dish := dishes[p.intn(len(dishes))]
		if _, err := state.Select(ctx, c, dish.Keyword); err != nil {
			return p.classify(state), err
		}
	}
	return p.classify(state), nil
}

func (p *AutoComboPicker) classify(state *SelectionState) domain.AutoComboOutcome {
	switch {
	case len(p.rules.Required) > 0 && state.IsFullCombo(p.rules.Required):
		return domain.OutcomeFullCombo
	case state.NonEmptyCount() > 0:
		return domain.OutcomePartial
	default:
		return domain.OutcomeFailed
	}
}
