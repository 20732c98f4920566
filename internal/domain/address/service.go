package address

import (
	"context"
	"fmt"
	"log/slog"

	"library-server/internal/infrastructure/monitoring"
	"library-server/internal/pkg/apperrors"
)

type AddressService interface {
	// ResolveOrCreate returns the first stored address matching the
	// candidate's (street, zip) key, inserting the candidate when no
	// match exists. Writes never blindly create a duplicate row.
	ResolveOrCreate(ctx context.Context, candidate *Address) (*Address, error)

	FindByZip(ctx context.Context, zip string) ([]*Address, error)

	FindByStreetPrefix(ctx context.Context, street string) ([]*Address, error)

	FindByStreetAndZip(ctx context.Context, street, zip string) ([]*Address, error)

	ListAll(ctx context.Context) ([]*Address, error)

	Delete(ctx context.Context, addressID int64) error
}

var _ AddressService = (*addressService)(nil)

type addressService struct {
	repo   Repository
	refs   ReferenceCounter
	logger *slog.Logger
}

func NewAddressService(repo Repository, refs ReferenceCounter, logger *slog.Logger) AddressService {
	if repo == nil {
		panic("address repository cannot be nil")
	}
	if refs == nil {
		panic("reference counter cannot be nil")
	}
	return &addressService{
		repo:   repo,
		refs:   refs,
		logger: logger.With(slog.String("component", "addressService")),
	}
}

func (s *addressService) ResolveOrCreate(ctx context.Context, candidate *Address) (*Address, error) {
	if candidate == nil {
		return nil, fmt.Errorf("%w: address cannot be nil", apperrors.ErrInvalidArgument)
	}

	matches, err := s.repo.FindByStreetAndZip(ctx, candidate.Street, candidate.Zip)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to look up address by street and zip", slog.Any("error", err))
		return nil, fmt.Errorf("failed to resolve address: %w", err)
	}

	if len(matches) > 0 {
		// Tie-break is storage order, no secondary sort key.
		monitoring.RecordAddressResolution("matched")
		s.logger.InfoContext(ctx, "Resolved existing address", slog.Int64("addressID", matches[0].ID))
		return matches[0], nil
	}

	if err := s.repo.Save(ctx, candidate); err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert new address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new address: %w", err)
	}
	monitoring.RecordAddressResolution("created")
	s.logger.InfoContext(ctx, "Created new address", slog.Int64("addressID", candidate.ID))
	return candidate, nil
}

func (s *addressService) FindByZip(ctx context.Context, zip string) ([]*Address, error) {
	return s.repo.FindByZip(ctx, zip)
}

func (s *addressService) FindByStreetPrefix(ctx context.Context, street string) ([]*Address, error) {
	return s.repo.FindByStreetPrefix(ctx, street)
}

func (s *addressService) FindByStreetAndZip(ctx context.Context, street, zip string) ([]*Address, error) {
	return s.repo.FindByStreetAndZip(ctx, street, zip)
}

func (s *addressService) ListAll(ctx context.Context) ([]*Address, error) {
	return s.repo.FindAll(ctx)
}

func (s *addressService) Delete(ctx context.Context, addressID int64) error {
	count, err := s.refs.CountByAddressID(ctx, addressID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to count customers referencing address", slog.Any("error", err))
		return fmt.Errorf("failed to check address references: %w", err)
	}
	if count > 0 {
		s.logger.WarnContext(ctx, "Refusing to delete referenced address",
			slog.Int64("addressID", addressID), slog.Int64("references", count))
		return fmt.Errorf("%w: address %d is referenced by %d customer(s)", apperrors.ErrAddressInUse, addressID, count)
	}

	if err := s.repo.Delete(ctx, addressID); err != nil {
		return fmt.Errorf("failed to delete address %d: %w", addressID, err)
	}
	s.logger.InfoContext(ctx, "Address deleted", slog.Int64("addressID", addressID))
	return nil
}
