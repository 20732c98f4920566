package loan

import (
	"time"

	"library-server/internal/domain/customer"
	"library-server/internal/domain/item"
)

// DefaultDurationDays is applied when a loan is created without an
// explicit duration.
const DefaultDurationDays = 14

type Loan struct {
	ID           int64              `json:"id"`
	LoanedAt     time.Time          `json:"loanedAt"`
	DurationDays int                `json:"durationDays"`
	Customer     *customer.Customer `json:"customer"`
	Item         *item.Item         `json:"item"`
}

// DueDate is the first day the loan counts as overdue.
func (l *Loan) DueDate() time.Time {
	return l.LoanedAt.AddDate(0, 0, l.DurationDays)
}

func (l *Loan) IsOverdue(now time.Time) bool {
	return now.After(l.DueDate())
}

// DaysOverdue reports how many whole days the loan is past its due
// date, zero when it is not overdue.
func (l *Loan) DaysOverdue(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(l.DueDate()).Hours() / 24)
}
