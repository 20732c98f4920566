package loan

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, ln *Loan) error

	FindByID(ctx context.Context, loanID int64) (*Loan, error)

	// FindByItemID returns the active loan for the item, or
	// apperrors.ErrNotFound when the item is not on loan.
	FindByItemID(ctx context.Context, itemID int64) (*Loan, error)

	FindAll(ctx context.Context) ([]*Loan, error)

	// FindOverdue returns every loan whose due date lies before the
	// given instant.
	FindOverdue(ctx context.Context, now time.Time) ([]*Loan, error)

	DeleteByItemID(ctx context.Context, itemID int64) error
}
