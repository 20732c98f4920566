package customer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"library-server/internal/domain/address"
	"library-server/internal/domain/customer"
	"library-server/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAddressService struct {
	mock.Mock
}

func (_m *MockAddressService) ResolveOrCreate(ctx context.Context, candidate *address.Address) (*address.Address, error) {
	ret := _m.Called(ctx, candidate)

	var r0 *address.Address
	if rf, ok := ret.Get(0).(func(context.Context, *address.Address) *address.Address); ok {
		r0 = rf(ctx, candidate)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*address.Address)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressService) FindByZip(ctx context.Context, zip string) ([]*address.Address, error) {
	ret := _m.Called(ctx, zip)

	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressService) FindByStreetPrefix(ctx context.Context, street string) ([]*address.Address, error) {
	ret := _m.Called(ctx, street)

	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressService) FindByStreetAndZip(ctx context.Context, street, zip string) ([]*address.Address, error) {
	ret := _m.Called(ctx, street, zip)

	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressService) ListAll(ctx context.Context) ([]*address.Address, error) {
	ret := _m.Called(ctx)

	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressService) Delete(ctx context.Context, addressID int64) error {
	ret := _m.Called(ctx, addressID)
	return ret.Error(0)
}

func setupTest() (*customer.MockRepository, *MockAddressService, customer.CustomerService) {
	mockRepo := new(customer.MockRepository)
	mockAddresses := new(MockAddressService)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := customer.NewCustomerService(mockRepo, mockAddresses, nil, logger)
	return mockRepo, mockAddresses, service
}

func completeCustomer() *customer.Customer {
	return &customer.Customer{
		FirstName: "Anna",
		LastName:  "Keller",
		BirthDate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Email:     "anna.keller@example.com",
		Address: &address.Address{
			Street: "Bahnhofstrasse 12",
			City:   "Zurich",
			Zip:    "8001",
		},
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success resolves address and saves", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		data := completeCustomer()
		resolved := &address.Address{ID: 5, Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}

		mockAddresses.On("ResolveOrCreate", ctx, data.Address).Return(resolved, nil).Once()
		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Address == resolved
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*customer.Customer).ID = 1
		}).Return(nil).Once()

		created, err := service.Create(ctx, data)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, int64(5), created.Address.ID)
		mockRepo.AssertExpectations(t)
		mockAddresses.AssertExpectations(t)
	})

	t.Run("Missing required field is rejected", func(t *testing.T) {
		for name, mutate := range map[string]func(*customer.Customer){
			"first name": func(c *customer.Customer) { c.FirstName = "" },
			"last name":  func(c *customer.Customer) { c.LastName = "" },
			"birth date": func(c *customer.Customer) { c.BirthDate = time.Time{} },
			"email":      func(c *customer.Customer) { c.Email = "" },
			"street":     func(c *customer.Customer) { c.Address.Street = "" },
			"city":       func(c *customer.Customer) { c.Address.City = "" },
			"zip":        func(c *customer.Customer) { c.Address.Zip = "" },
			"address":    func(c *customer.Customer) { c.Address = nil },
		} {
			t.Run(name, func(t *testing.T) {
				mockRepo, mockAddresses, service := setupTest()
				data := completeCustomer()
				mutate(data)

				_, err := service.Create(ctx, data)

				assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
				assert.ErrorIs(t, err, apperrors.ErrIncompleteData)
				mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				mockAddresses.AssertNotCalled(t, "ResolveOrCreate", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Address resolution failure is propagated", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		data := completeCustomer()
		resolveErr := errors.New("address lookup failed")

		mockAddresses.On("ResolveOrCreate", ctx, data.Address).Return(nil, resolveErr).Once()

		_, err := service.Create(ctx, data)

		assert.ErrorIs(t, err, resolveErr)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Upsert(t *testing.T) {
	ctx := context.Background()
	customerID := int64(42)

	t.Run("Falls back to create when absent", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		patch := completeCustomer()
		resolved := &address.Address{ID: 5, Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()
		mockAddresses.On("ResolveOrCreate", ctx, patch.Address).Return(resolved, nil).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Run(func(args mock.Arguments) {
			args.Get(1).(*customer.Customer).ID = 99
		}).Return(nil).Once()

		result, created, err := service.Upsert(ctx, customerID, patch)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(99), result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fallback create validates the patch", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		patch := completeCustomer()
		patch.Email = ""

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

		_, _, err := service.Upsert(ctx, customerID, patch)

		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Email-only patch leaves name, birth date and address untouched", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		storedAddress := &address.Address{ID: 5, Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}
		stored := &customer.Customer{
			ID:        customerID,
			FirstName: "Anna",
			LastName:  "Keller",
			BirthDate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
			Email:     "old@example.com",
			Address:   storedAddress,
		}

		mockRepo.On("FindByID", ctx, customerID).Return(stored, nil).Once()
		mockRepo.On("Save", ctx, stored).Return(nil).Once()

		result, created, err := service.Upsert(ctx, customerID, &customer.Customer{Email: "new@example.com"})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "new@example.com", result.Email)
		assert.Equal(t, "Anna", result.FirstName)
		assert.Equal(t, "Keller", result.LastName)
		assert.Equal(t, storedAddress, result.Address)
		mockAddresses.AssertNotCalled(t, "ResolveOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("Changed address is resolved and reattached", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		stored := completeCustomer()
		stored.ID = customerID
		stored.Address.ID = 5
		newAddress := &address.Address{Street: "Seestrasse 4", City: "Luzern", Zip: "6002"}
		resolved := &address.Address{ID: 6, Street: "Seestrasse 4", City: "Luzern", Zip: "6002"}

		mockRepo.On("FindByID", ctx, customerID).Return(stored, nil).Once()
		mockAddresses.On("ResolveOrCreate", ctx, mock.MatchedBy(func(a *address.Address) bool {
			return a.Street == "Seestrasse 4" && a.Zip == "6002"
		})).Return(resolved, nil).Once()
		mockRepo.On("Save", ctx, stored).Return(nil).Once()

		result, created, err := service.Upsert(ctx, customerID, &customer.Customer{Address: newAddress})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(6), result.Address.ID)
		mockAddresses.AssertExpectations(t)
	})

	t.Run("Identical address skips resolution", func(t *testing.T) {
		mockRepo, mockAddresses, service := setupTest()
		stored := completeCustomer()
		stored.ID = customerID
		stored.Address.ID = 5
		same := &address.Address{ID: 5, Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}

		mockRepo.On("FindByID", ctx, customerID).Return(stored, nil).Once()
		mockRepo.On("Save", ctx, stored).Return(nil).Once()

		_, _, err := service.Upsert(ctx, customerID, &customer.Customer{Address: same})

		assert.NoError(t, err)
		mockAddresses.AssertNotCalled(t, "ResolveOrCreate", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_GetByID(t *testing.T) {
	ctx := context.Background()
	customerID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		expected := &customer.Customer{ID: customerID, LastName: "Keller"}

		mockRepo.On("FindByID", ctx, customerID).Return(expected, nil).Once()

		cust, err := service.GetByID(ctx, customerID)

		assert.NoError(t, err)
		assert.Equal(t, expected, cust)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo, _, service := setupTest()

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

		_, err := service.GetByID(ctx, customerID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()
	customerID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("Delete", ctx, customerID).Return(nil).Once()

		assert.NoError(t, service.Delete(ctx, customerID))
	})

	t.Run("Absent customer is not an error", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("Delete", ctx, customerID).Return(apperrors.ErrNotFound).Once()

		assert.NoError(t, service.Delete(ctx, customerID))
	})
}
