package mocks

import (
	context "context"

	domain "lunchtime/lunch-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// CatalogSource is a mock type for the CatalogSource type
type CatalogSource struct {
	mock.Mock
}

// ListDishes provides a mock function with given fields: ctx
func (_m *CatalogSource) ListDishes(ctx context.Context) ([]domain.RawDish, error) {
	ret := _m.Called(ctx)

	var r0 []domain.RawDish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RawDish)
	}
	return r0, ret.Error(1)
}

// NewCatalogSource creates a new instance of CatalogSource. It also registers a cleanup function to assert the mocks expectations.
func NewCatalogSource(t testingT) *CatalogSource {
	m := &CatalogSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
