package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrdersServiceInterface is a mock type for the OrdersServiceInterface type
type OrdersServiceInterface struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *OrdersServiceInterface) List(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *OrdersServiceInterface) Get(ctx context.Context, id string) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *OrdersServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// QRCode provides a mock function with given fields: id
func (_m *OrdersServiceInterface) QRCode(id string) ([]byte, error) {
	ret := _m.Called(id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// NewOrdersServiceInterface creates a new instance of OrdersServiceInterface. It also registers a cleanup function to assert the mocks expectations.
func NewOrdersServiceInterface(t testingT) *OrdersServiceInterface {
	m := &OrdersServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
