package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"
	service "lunchtime/lunch-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// CheckoutServiceInterface is a mock type for the CheckoutServiceInterface type
type CheckoutServiceInterface struct {
	mock.Mock
}

// Page provides a mock function with given fields: ctx, session
func (_m *CheckoutServiceInterface) Page(ctx context.Context, session string) (*service.CheckoutPage, error) {
	ret := _m.Called(ctx, session)

	var r0 *service.CheckoutPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CheckoutPage)
	}
	return r0, ret.Error(1)
}

// RemoveItem provides a mock function with given fields: ctx, session, category
func (_m *CheckoutServiceInterface) RemoveItem(ctx context.Context, session string, category domain.Category) (*service.SelectionChange, error) {
	ret := _m.Called(ctx, session, category)

	var r0 *service.SelectionChange
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SelectionChange)
	}
	return r0, ret.Error(1)
}

// Submit provides a mock function with given fields: ctx, session, form
func (_m *CheckoutServiceInterface) Submit(ctx context.Context, session string, form domain.DeliveryForm) (*service.SubmitResult, error) {
	ret := _m.Called(ctx, session, form)

	var r0 *service.SubmitResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SubmitResult)
	}
	return r0, ret.Error(1)
}

// NewCheckoutServiceInterface creates a new instance of CheckoutServiceInterface. It also registers a cleanup function to assert the mocks expectations.
func NewCheckoutServiceInterface(t testingT) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
