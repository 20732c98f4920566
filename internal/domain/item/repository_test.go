package item

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, itm *Item) error {
	ret := _m.Called(ctx, itm)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Item) error); ok {
		r0 = rf(ctx, itm)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, itemID int64) (*Item, error) {
	ret := _m.Called(ctx, itemID)

	var r0 *Item
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Item); ok {
		r0 = rf(ctx, itemID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Item)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByTitle(ctx context.Context, title string) ([]*Item, error) {
	ret := _m.Called(ctx, title)

	var r0 []*Item
	if rf, ok := ret.Get(0).(func(context.Context, string) []*Item); ok {
		r0 = rf(ctx, title)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Item)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Item, error) {
	ret := _m.Called(ctx)

	var r0 []*Item
	if rf, ok := ret.Get(0).(func(context.Context) []*Item); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Item)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) Delete(ctx context.Context, itemID int64) error {
	ret := _m.Called(ctx, itemID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, itemID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
