package service

import (
	"context"
	"fmt"

	"lunchtime/stats-svc/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type StatsService struct {
	store StoreInterface
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store}
}

// Popular lists the most ordered dishes. An empty period means all time and
// the limit is clamped to [1, 50].
func (s *StatsService) Popular(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error) {
	switch period {
	case "":
		period = domain.PeriodAll
	case domain.PeriodAll, domain.PeriodToday:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	dishes, err := s.store.TopDishes(ctx, period, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load popular dishes: %w", err)
	}
	if dishes == nil {
		dishes = []domain.DishPopularity{}
	}
	return dishes, nil
}

func (s *StatsService) Summary(ctx context.Context) (*domain.Summary, error) {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	return summary, nil
}
