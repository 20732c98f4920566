package address

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, addr *Address) error {
	ret := _m.Called(ctx, addr)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Address) error); ok {
		r0 = rf(ctx, addr)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, addressID int64) (*Address, error) {
	ret := _m.Called(ctx, addressID)

	var r0 *Address
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Address); ok {
		r0 = rf(ctx, addressID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByZip(ctx context.Context, zip string) ([]*Address, error) {
	ret := _m.Called(ctx, zip)

	var r0 []*Address
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Address); ok {
		r0 = rf(ctx, zip)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByStreetPrefix(ctx context.Context, street string) ([]*Address, error) {
	ret := _m.Called(ctx, street)

	var r0 []*Address
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Address); ok {
		r0 = rf(ctx, street)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByStreetAndZip(ctx context.Context, street, zip string) ([]*Address, error) {
	ret := _m.Called(ctx, street, zip)

	var r0 []*Address
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []*Address); ok {
		r0 = rf(ctx, street, zip)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Address, error) {
	ret := _m.Called(ctx)

	var r0 []*Address
	if rf, ok := ret.Get(0).(func(context.Context) []*Address); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, addressID int64) error {
	ret := _m.Called(ctx, addressID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, addressID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type MockReferenceCounter struct {
	mock.Mock
}

func (_m *MockReferenceCounter) CountByAddressID(ctx context.Context, addressID int64) (int64, error) {
	ret := _m.Called(ctx, addressID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, addressID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}
