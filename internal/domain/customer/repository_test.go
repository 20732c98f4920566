package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		r0 = rf(ctx, cust)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Customer); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByLastName(ctx context.Context, lastName string) ([]*Customer, error) {
	ret := _m.Called(ctx, lastName)

	var r0 []*Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Customer); ok {
		r0 = rf(ctx, lastName)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByAddressID(ctx context.Context, addressID int64) ([]*Customer, error) {
	ret := _m.Called(ctx, addressID)

	var r0 []*Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*Customer); ok {
		r0 = rf(ctx, addressID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByStreetPrefix(ctx context.Context, street string) ([]*Customer, error) {
	ret := _m.Called(ctx, street)

	var r0 []*Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Customer); ok {
		r0 = rf(ctx, street)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) CountByAddressID(ctx context.Context, addressID int64) (int64, error) {
	ret := _m.Called(ctx, addressID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, addressID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
