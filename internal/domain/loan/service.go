package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"library-server/internal/domain/customer"
	"library-server/internal/domain/item"
	"library-server/internal/event"
	"library-server/internal/infrastructure/monitoring"
	"library-server/internal/pkg/apperrors"
)

type LoanService interface {
	GetByID(ctx context.Context, loanID int64) (*Loan, error)

	// FindByItemID returns the active loans for an item. The slice
	// holds at most one element; an item that is not on loan yields an
	// empty slice, not an error.
	FindByItemID(ctx context.Context, itemID int64) ([]*Loan, error)

	ListAll(ctx context.Context) ([]*Loan, error)

	// Create loans the referenced item to the referenced customer. An
	// item that is already on loan is a conflict, and the conflict is
	// reported even when the referenced customer or item does not
	// exist.
	Create(ctx context.Context, data *Loan) (*Loan, error)

	// Upsert updates the loan with the given id, or creates one from
	// the patch when no such loan exists. The second return value is
	// true when a new loan was created.
	Upsert(ctx context.Context, loanID int64, patch *Loan) (*Loan, bool, error)

	// DeleteByItemID returns the item: any active loan for it is
	// removed. Deleting for an item that is not on loan is a no-op.
	DeleteByItemID(ctx context.Context, itemID int64) error
}

var _ LoanService = (*loanService)(nil)

type loanService struct {
	repo      Repository
	customers customer.CustomerService
	items     item.ItemService
	pub       event.EventPublisher
	logger    *slog.Logger
}

func NewLoanService(repo Repository, customers customer.CustomerService, items item.ItemService, pub event.EventPublisher, logger *slog.Logger) LoanService {
	if repo == nil {
		panic("loan repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if items == nil {
		panic("item service cannot be nil")
	}
	return &loanService{
		repo:      repo,
		customers: customers,
		items:     items,
		pub:       pub,
		logger:    logger.With(slog.String("component", "loanService")),
	}
}

func (s *loanService) GetByID(ctx context.Context, loanID int64) (*Loan, error) {
	ln, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: loan %d", apperrors.ErrNotFound, loanID)
		}
		s.logger.ErrorContext(ctx, "Failed to find loan", slog.Int64("loanID", loanID), slog.Any("error", err))
		return nil, fmt.Errorf("finding loan %d: %w", loanID, err)
	}
	return ln, nil
}

func (s *loanService) FindByItemID(ctx context.Context, itemID int64) ([]*Loan, error) {
	ln, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []*Loan{}, nil
		}
		s.logger.ErrorContext(ctx, "Failed to find loan by item", slog.Int64("itemID", itemID), slog.Any("error", err))
		return nil, fmt.Errorf("finding loan for item %d: %w", itemID, err)
	}
	return []*Loan{ln}, nil
}

func (s *loanService) ListAll(ctx context.Context) ([]*Loan, error) {
	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list loans", slog.Any("error", err))
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	return loans, nil
}

func (s *loanService) Create(ctx context.Context, data *Loan) (*Loan, error) {
	s.logger.InfoContext(ctx, "Attempting to create loan")

	if data == nil || data.Item == nil || data.Item.ID <= 0 || data.Customer == nil || data.Customer.ID <= 0 {
		s.logger.WarnContext(ctx, "Validation failed: loan references are incomplete")
		monitoring.RecordLoanDecision("incomplete")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidArgument, apperrors.ErrIncompleteData)
	}

	itemID := data.Item.ID
	customerID := data.Customer.ID
	logCtx := s.logger.With(slog.Int64("itemID", itemID), slog.Int64("customerID", customerID))

	itm, itemErr := s.items.GetByID(ctx, itemID)
	cust, custErr := s.customers.GetByID(ctx, customerID)

	// The conflict check comes before the resolution errors: an item
	// that is on loan is reported as a conflict even when the request
	// also references entities that do not exist.
	existing, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logCtx.ErrorContext(ctx, "Failed to probe for active loan", slog.Any("error", err))
		return nil, fmt.Errorf("probing active loan for item %d: %w", itemID, err)
	}
	if existing != nil {
		logCtx.WarnContext(ctx, "Item is already on loan", slog.Int64("activeLoanID", existing.ID))
		monitoring.RecordLoanDecision("conflict")
		return nil, fmt.Errorf("%w: item %d is on loan %d", apperrors.ErrItemOnLoan, itemID, existing.ID)
	}

	if itemErr != nil {
		if errors.Is(itemErr, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Referenced item does not exist")
			monitoring.RecordLoanDecision("not_found")
		}
		return nil, itemErr
	}
	if custErr != nil {
		if errors.Is(custErr, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Referenced customer does not exist")
			monitoring.RecordLoanDecision("not_found")
		}
		return nil, custErr
	}

	ln := &Loan{
		LoanedAt:     time.Now(),
		DurationDays: data.DurationDays,
		Customer:     cust,
		Item:         itm,
	}
	if ln.DurationDays <= 0 {
		ln.DurationDays = DefaultDurationDays
	}

	if err := s.repo.Save(ctx, ln); err != nil {
		logCtx.ErrorContext(ctx, "Failed to save loan", slog.Any("error", err))
		return nil, fmt.Errorf("saving loan: %w", err)
	}

	logCtx.InfoContext(ctx, "Loan created", slog.Int64("loanID", ln.ID))
	monitoring.RecordLoanDecision("created")
	s.publishLoanCreated(ctx, ln)
	return ln, nil
}

func (s *loanService) Upsert(ctx context.Context, loanID int64, patch *Loan) (*Loan, bool, error) {
	stored, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.InfoContext(ctx, "Loan not found, falling back to create", slog.Int64("loanID", loanID))
			created, createErr := s.Create(ctx, patch)
			if createErr != nil {
				return nil, false, createErr
			}
			return created, true, nil
		}
		s.logger.ErrorContext(ctx, "Failed to find loan", slog.Int64("loanID", loanID), slog.Any("error", err))
		return nil, false, fmt.Errorf("finding loan %d: %w", loanID, err)
	}

	// Only the duration is updatable; the parties and the loan date
	// are fixed at creation.
	if patch != nil && patch.DurationDays > 0 {
		stored.DurationDays = patch.DurationDays
	}

	if err := s.repo.Save(ctx, stored); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update loan", slog.Int64("loanID", loanID), slog.Any("error", err))
		return nil, false, fmt.Errorf("updating loan %d: %w", loanID, err)
	}

	s.logger.InfoContext(ctx, "Loan updated", slog.Int64("loanID", loanID))
	return stored, false, nil
}

func (s *loanService) DeleteByItemID(ctx context.Context, itemID int64) error {
	ln, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.InfoContext(ctx, "No active loan for item, nothing to return", slog.Int64("itemID", itemID))
			return nil
		}
		s.logger.ErrorContext(ctx, "Failed to find loan by item", slog.Int64("itemID", itemID), slog.Any("error", err))
		return fmt.Errorf("finding loan for item %d: %w", itemID, err)
	}

	if err := s.repo.DeleteByItemID(ctx, itemID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.ErrorContext(ctx, "Failed to delete loan", slog.Int64("itemID", itemID), slog.Any("error", err))
		return fmt.Errorf("deleting loan for item %d: %w", itemID, err)
	}

	s.logger.InfoContext(ctx, "Loan returned", slog.Int64("itemID", itemID), slog.Int64("loanID", ln.ID))
	s.publishLoanReturned(ctx, ln)
	return nil
}

func newLoanEventPayload(ln *Loan) event.LoanEventPayload {
	payload := event.LoanEventPayload{
		LoanID:       ln.ID,
		LoanedAt:     ln.LoanedAt,
		DurationDays: ln.DurationDays,
		DueDate:      ln.DueDate(),
	}
	if ln.Customer != nil {
		payload.CustomerID = ln.Customer.ID
	}
	if ln.Item != nil {
		payload.ItemID = ln.Item.ID
	}
	return payload
}

func (s *loanService) publishLoanCreated(ctx context.Context, ln *Loan) {
	if s.pub == nil {
		return
	}
	evt := event.LoanCreatedEvent{Timestamp: time.Now(), Payload: newLoanEventPayload(ln)}
	if err := s.pub.PublishLoanCreated(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish loan created event", slog.Any("error", err))
	}
}

func (s *loanService) publishLoanReturned(ctx context.Context, ln *Loan) {
	if s.pub == nil {
		return
	}
	evt := event.LoanReturnedEvent{Timestamp: time.Now(), Payload: newLoanEventPayload(ln)}
	if err := s.pub.PublishLoanReturned(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish loan returned event", slog.Any("error", err))
	}
}
