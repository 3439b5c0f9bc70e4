package mocks

import (
	context "context"

	domain "lunchtime/stats-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

// RecordOrder provides a mock function with given fields: ctx, event
func (_m *StoreInterface) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// UpdatePopularity provides a mock function with given fields: ctx, event
func (_m *StoreInterface) UpdatePopularity(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// TopDishes provides a mock function with given fields: ctx, period, limit
func (_m *StoreInterface) TopDishes(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error) {
	ret := _m.Called(ctx, period, limit)

	var r0 []domain.DishPopularity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.DishPopularity)
	}
	return r0, ret.Error(1)
}

// Summary provides a mock function with given fields: ctx
func (_m *StoreInterface) Summary(ctx context.Context) (*domain.Summary, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Summary)
	}
	return r0, ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a cleanup function to assert the mocks expectations.
func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
