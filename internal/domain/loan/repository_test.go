package loan

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Save(ctx context.Context, ln *Loan) error {
	ret := _m.Called(ctx, ln)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Loan) error); ok {
		r0 = rf(ctx, ln)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockRepository) FindByID(ctx context.Context, loanID int64) (*Loan, error) {
	ret := _m.Called(ctx, loanID)

	var r0 *Loan
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Loan); ok {
		r0 = rf(ctx, loanID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Loan)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByItemID(ctx context.Context, itemID int64) (*Loan, error) {
	ret := _m.Called(ctx, itemID)

	var r0 *Loan
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Loan); ok {
		r0 = rf(ctx, itemID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Loan)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Loan, error) {
	ret := _m.Called(ctx)

	var r0 []*Loan
	if rf, ok := ret.Get(0).(func(context.Context) []*Loan); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Loan)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindOverdue(ctx context.Context, now time.Time) ([]*Loan, error) {
	ret := _m.Called(ctx, now)

	var r0 []*Loan
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) []*Loan); ok {
		r0 = rf(ctx, now)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Loan)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	ret := _m.Called(ctx, itemID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, itemID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
