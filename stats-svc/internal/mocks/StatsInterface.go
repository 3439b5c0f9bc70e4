package mocks

import (
	context "context"

	domain "lunchtime/stats-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StatsInterface is a mock type for the StatsInterface type
type StatsInterface struct {
	mock.Mock
}

// Popular provides a mock function with given fields: ctx, period, limit
func (_m *StatsInterface) Popular(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, period, limit)

	var r0 []domain.DishPopularity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}

// Summary provides a mock function with given fields: ctx
func (_m *StatsInterface) Summary(ctx context.Context) (*domain.Summary, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Summary)
	}
	return r0, ret.Error(1)
}

// NewStatsInterface creates a new instance of StatsInterface. It also registers a cleanup function to assert the mocks expectations.
func NewStatsInterface(t testingT) *StatsInterface {
	m := &StatsInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
