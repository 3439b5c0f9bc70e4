package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"
	service "lunchtime/lunch-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// MenuServiceInterface is a mock type for the MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

// Page provides a mock function with given fields: ctx, session, kind
func (_m *MenuServiceInterface) Page(ctx context.Context, session string, kind domain.Kind) (*service.MenuPage, error) {
	ret := _m.Called(ctx, session, kind)

	var r0 *service.MenuPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.MenuPage)
	}
	return r0, ret.Error(1)
}

// Select provides a mock function with given fields: ctx, session, keyword
func (_m *MenuServiceInterface) Select(ctx context.Context, session string, keyword string) (*service.SelectionChange, error) {
	ret := _m.Called(ctx, session, keyword)

	var r0 *service.SelectionChange
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SelectionChange)
	}
	return r0, ret.Error(1)
}

// Reset provides a mock function with given fields: ctx, session
func (_m *MenuServiceInterface) Reset(ctx context.Context, session string) (*service.SelectionChange, error) {
	ret := _m.Called(ctx, session)

	var r0 *service.SelectionChange
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SelectionChange)
	}
	return r0, ret.Error(1)
}

// AutoCombo provides a mock function with given fields: ctx, session
func (_m *MenuServiceInterface) AutoCombo(ctx context.Context, session string) (*service.SelectionChange, error) {
	ret := _m.Called(ctx, session)

	var r0 *service.SelectionChange
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SelectionChange)
	}
	return r0, ret.Error(1)
}

// NewMenuServiceInterface creates a new instance of MenuServiceInterface. It also registers a cleanup function to assert the mocks expectations.
func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
