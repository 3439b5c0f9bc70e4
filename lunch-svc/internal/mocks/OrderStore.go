package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrderStore is a mock type for the OrderStore type
type OrderStore struct {
	mock.Mock
}

// ListOrders provides a mock function with given fields: ctx
func (_m *OrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

// CreateOrder provides a mock function with given fields: ctx, payload
func (_m *OrderStore) CreateOrder(ctx context.Context, payload domain.OrderPayload) (*domain.Order, error) {
	ret := _m.Called(ctx, payload)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderPayload) *domain.Order); ok {
		r0 = rf(ctx, payload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

// DeleteOrder provides a mock function with given fields: ctx, id
func (_m *OrderStore) DeleteOrder(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewOrderStore creates a new instance of OrderStore. It also registers a cleanup function to assert the mocks expectations.
func NewOrderStore(t testingT) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
