package service

import (
	"context"
	"encoding/json"
	"fmt"

	"lunchtime/lunch-svc/internal/domain"
)

// SelectionState is a page-scoped copy of the visitor's selection. Every
// mutation is written back to the selection slot.
type SelectionState struct {
	store     StateStore
	key       string
	selection domain.Selection
}

// RestoreSelection reads the persisted selection. Missing or unparsable data
// yields an empty selection; only store errors are returned, together with a
// usable empty state.
func RestoreSelection(ctx context.Context, store StateStore, key string) (*SelectionState, error) {
	state := &SelectionState{store: store, key: key, selection: domain.NewSelection()}

	value, found, err := store.Get(ctx, key)
	if err != nil {
		return state, fmt.Errorf("failed to read selection: %w", err)
	}
	if !found {
		return state, nil
	}

	var restored domain.Selection
	if err := json.Unmarshal([]byte(value), &restored); err != nil {
		return state, nil
	}
	if restored != nil {
		state.selection = restored
	}
	return state, nil
}

// Select toggles keyword in category: selecting the current keyword clears
// it. The keyword held before the call is returned.
func (s *SelectionState) Select(ctx context.Context, category domain.Category, keyword string) (string, error) {
	previous := s.selection[category]
	if previous == keyword {
		delete(s.selection, category)
	} else {
		s.selection[category] = keyword
	}
	return previous, s.persist(ctx)
}

func (s *SelectionState) Remove(ctx context.Context, category domain.Category) (string, error) {
	previous := s.selection[category]
	delete(s.selection, category)
	return previous, s.persist(ctx)
}

func (s *SelectionState) Clear(ctx context.Context) error {
	s.selection = domain.NewSelection()
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}

func (s *SelectionState) Get(category domain.Category) string {
	return s.selection[category]
}

func (s *SelectionState) IsFullCombo(required []domain.Category) bool {
	for _, c := range required {
		if s.selection[c] == "" {
			return false
		}
	}
	return true
}

func (s *SelectionState) NonEmptyCount() int {
	count := 0
	for _, c := range domain.AllCategories {
		if s.selection[c] != "" {
			count++
		}
	}
	return count
}

// Snapshot returns a copy safe to hand to callers.
func (s *SelectionState) Snapshot() domain.Selection {
	return s.selection.Clone()
}

func (s *SelectionState) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.selection)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := s.store.Set(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("failed to persist selection: %w", err)
	}
	return nil
}
