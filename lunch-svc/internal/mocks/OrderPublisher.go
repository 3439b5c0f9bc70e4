package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrderPublisher is a mock type for the OrderPublisher type
type OrderPublisher struct {
	mock.Mock
}

// PublishOrderPlaced provides a mock function with given fields: ctx, event
func (_m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewOrderPublisher creates a new instance of OrderPublisher. It also registers a cleanup function to assert the mocks expectations.
func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
