package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"library-server/internal/pkg/apperrors"
)

type ItemService interface {
	GetByID(ctx context.Context, itemID int64) (*Item, error)

	FindByTitle(ctx context.Context, title string) ([]*Item, error)

	ListAll(ctx context.Context) ([]*Item, error)

	Create(ctx context.Context, data *Item) (*Item, error)

	// Upsert updates the item with the given id, or creates one from the
	// patch when no such item exists. The second return value is true
	// when the record was created rather than updated.
	Upsert(ctx context.Context, itemID int64, patch *Item) (*Item, bool, error)

	Delete(ctx context.Context, itemID int64) error
}

var _ ItemService = (*itemService)(nil)

type itemService struct {
	repo   Repository
	logger *slog.Logger
}

func NewItemService(repo Repository, logger *slog.Logger) ItemService {
	if repo == nil {
		panic("item repository cannot be nil")
	}
	return &itemService{
		repo:   repo,
		logger: logger.With(slog.String("component", "itemService")),
	}
}

func (s *itemService) GetByID(ctx context.Context, itemID int64) (*Item, error) {
	itm, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Item not found", slog.Int64("itemID", itemID))
			return nil, fmt.Errorf("%w: item %d", apperrors.ErrNotFound, itemID)
		}
		s.logger.ErrorContext(ctx, "Failed to get item", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get item %d: %w", itemID, err)
	}
	return itm, nil
}

func (s *itemService) FindByTitle(ctx context.Context, title string) ([]*Item, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *itemService) ListAll(ctx context.Context) ([]*Item, error) {
	return s.repo.FindAll(ctx)
}

func (s *itemService) Create(ctx context.Context, data *Item) (*Item, error) {
	if !data.IsComplete() {
		s.logger.WarnContext(ctx, "Validation failed: item data incomplete")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidArgument, apperrors.ErrIncompleteData)
	}

	if err := s.repo.Save(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new item", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new item: %w", err)
	}
	s.logger.InfoContext(ctx, "Item created", slog.Int64("itemID", data.ID))
	return data, nil
}

func (s *itemService) Upsert(ctx context.Context, itemID int64, patch *Item) (*Item, bool, error) {
	stored, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.InfoContext(ctx, "Item not found, falling back to create", slog.Int64("itemID", itemID))
			created, createErr := s.Create(ctx, patch)
			if createErr != nil {
				return nil, false, createErr
			}
			return created, true, nil
		}
		return nil, false, fmt.Errorf("failed to load item %d: %w", itemID, err)
	}

	// Title and author are immutable through this path.
	if patch.Genre != "" {
		stored.Genre = patch.Genre
	}
	if patch.AgeRating != nil {
		stored.AgeRating = patch.AgeRating
	}
	if patch.ISBN != nil {
		stored.ISBN = patch.ISBN
	}
	if patch.ShelfCode != "" {
		stored.ShelfCode = patch.ShelfCode
	}

	if err := s.repo.Save(ctx, stored); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save updated item", slog.Any("error", err))
		return nil, false, fmt.Errorf("failed to save updated item: %w", err)
	}
	s.logger.InfoContext(ctx, "Item updated", slog.Int64("itemID", stored.ID))
	return stored, false, nil
}

func (s *itemService) Delete(ctx context.Context, itemID int64) error {
	// Open loans do not block an item delete; only addresses carry a
	// reference guard.
	err := s.repo.Delete(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Delete affected no rows", slog.Int64("itemID", itemID))
			return nil
		}
		s.logger.ErrorContext(ctx, "Failed to delete item", slog.Any("error", err))
		return fmt.Errorf("failed to delete item %d: %w", itemID, err)
	}
	s.logger.InfoContext(ctx, "Item deleted", slog.Int64("itemID", itemID))
	return nil
}
