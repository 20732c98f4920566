package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"library-server/internal/domain/address"
	"library-server/internal/event"
	"library-server/internal/pkg/apperrors"
)

type CustomerService interface {
	GetByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByLastName(ctx context.Context, lastName string) ([]*Customer, error)

	FindByAddressID(ctx context.Context, addressID int64) ([]*Customer, error)

	FindByStreet(ctx context.Context, street string) ([]*Customer, error)

	Create(ctx context.Context, data *Customer) (*Customer, error)

	// Upsert updates the customer with the given id, or creates one from
	// the patch when no such customer exists. The second return value is
	// true when the record was created rather than updated.
	Upsert(ctx context.Context, customerID int64, patch *Customer) (*Customer, bool, error)

	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo      Repository
	addresses address.AddressService
	pub       event.EventPublisher
	logger    *slog.Logger
}

func NewCustomerService(repo Repository, addresses address.AddressService, pub event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if addresses == nil {
		panic("address service cannot be nil")
	}
	return &customerService{
		repo:      repo,
		addresses: addresses,
		pub:       pub,
		logger:    logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	payload := event.CustomerEventPayload{
		CustomerID: cust.ID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
	}
	if cust.Address != nil {
		addressID := cust.Address.ID
		payload.AddressID = &addressID
	}
	return payload
}

func (s *customerService) publishCustomerCreated(ctx context.Context, cust *Customer) {
	if s.pub == nil {
		return
	}
	evt := event.CustomerCreatedEvent{Timestamp: time.Now(), Payload: newCustomerEventPayload(cust)}
	if err := s.pub.PublishCustomerCreated(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer created event", slog.Any("error", err))
	}
}

func (s *customerService) publishCustomerUpdated(ctx context.Context, cust *Customer) {
	if s.pub == nil {
		return
	}
	evt := event.CustomerUpdatedEvent{Timestamp: time.Now(), Payload: newCustomerEventPayload(cust)}
	if err := s.pub.PublishCustomerUpdated(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer updated event", slog.Any("error", err))
	}
}

func (s *customerService) GetByID(ctx context.Context, customerID int64) (*Customer, error) {
	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Failed to get customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return cust, nil
}

func (s *customerService) FindByLastName(ctx context.Context, lastName string) ([]*Customer, error) {
	return s.repo.FindByLastName(ctx, lastName)
}

func (s *customerService) FindByAddressID(ctx context.Context, addressID int64) ([]*Customer, error) {
	return s.repo.FindByAddressID(ctx, addressID)
}

func (s *customerService) FindByStreet(ctx context.Context, street string) ([]*Customer, error) {
	return s.repo.FindByStreetPrefix(ctx, street)
}

func (s *customerService) Create(ctx context.Context, data *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	if !data.IsComplete() {
		s.logger.WarnContext(ctx, "Validation failed: customer data incomplete")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidArgument, apperrors.ErrIncompleteData)
	}

	resolved, err := s.addresses.ResolveOrCreate(ctx, data.Address)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to resolve customer address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to resolve customer address: %w", err)
	}
	data.Address = resolved

	if err := s.repo.Save(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Customer created", slog.Int64("customerID", data.ID))
	s.publishCustomerCreated(ctx, data)
	return data, nil
}

func (s *customerService) Upsert(ctx context.Context, customerID int64, patch *Customer) (*Customer, bool, error) {
	stored, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.InfoContext(ctx, "Customer not found, falling back to create",
				slog.Int64("customerID", customerID))
			created, createErr := s.Create(ctx, patch)
			if createErr != nil {
				return nil, false, createErr
			}
			return created, true, nil
		}
		return nil, false, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}

	if patch.Address != nil && !patch.Address.Equal(stored.Address) {
		resolved, resolveErr := s.addresses.ResolveOrCreate(ctx, &address.Address{
			Street: patch.Address.Street,
			City:   patch.Address.City,
			Zip:    patch.Address.Zip,
		})
		if resolveErr != nil {
			s.logger.ErrorContext(ctx, "Failed to resolve new address on update", slog.Any("error", resolveErr))
			return nil, false, fmt.Errorf("failed to resolve new address: %w", resolveErr)
		}
		stored.Address = resolved
	}
	if patch.Email != "" {
		stored.Email = patch.Email
	}
	// Name and birth date are not updatable through this path.

	if err := s.repo.Save(ctx, stored); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, false, fmt.Errorf("failed to save updated customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Customer updated", slog.Int64("customerID", stored.ID))
	s.publishCustomerUpdated(ctx, stored)
	return stored, false, nil
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	// Deleting a customer with open loans is allowed; only addresses
	// carry a reference guard.
	err := s.repo.Delete(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Delete affected no rows", slog.Int64("customerID", customerID))
			return nil
		}
		s.logger.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	s.logger.InfoContext(ctx, "Customer deleted", slog.Int64("customerID", customerID))
	return nil
}
