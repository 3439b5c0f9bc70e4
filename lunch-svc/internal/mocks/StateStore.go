package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// StateStore is a mock type for the StateStore type
type StateStore struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key
func (_m *StateStore) Get(ctx context.Context, key string) (string, bool, error) {
	ret := _m.Called(ctx, key)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

// Set provides a mock function with given fields: ctx, key, value
func (_m *StateStore) Set(ctx context.Context, key string, value string) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, key
func (_m *StateStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// NewStateStore creates a new instance of StateStore. It also registers a cleanup function to assert the mocks expectations.
func NewStateStore(t testingT) *StateStore {
	m := &StateStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
