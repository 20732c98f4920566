package dto

import (
	"time"

	"library-server/internal/domain/customer"
	"library-server/internal/domain/item"
	"library-server/internal/domain/loan"
)

// EntityRef carries only an id. Loan requests reference their customer
// and item this way; the server resolves the full records.
type EntityRef struct {
	ID int64 `json:"id"`
}

type LoanRequest struct {
	DurationDays int        `json:"durationDays"`
	Customer     *EntityRef `json:"customer"`
	Item         *EntityRef `json:"item"`
}

func (r *LoanRequest) ToDomain() *loan.Loan {
	ln := &loan.Loan{DurationDays: r.DurationDays}
	if r.Customer != nil {
		ln.Customer = &customer.Customer{ID: r.Customer.ID}
	}
	if r.Item != nil {
		ln.Item = &item.Item{ID: r.Item.ID}
	}
	return ln
}

type LoanResponse struct {
	ID           int64            `json:"id"`
	LoanedAt     time.Time        `json:"loanedAt"`
	DurationDays int              `json:"durationDays"`
	DueDate      time.Time        `json:"dueDate"`
	Customer     CustomerResponse `json:"customer"`
	Item         ItemResponse     `json:"item"`
}

func NewLoanResponse(ln *loan.Loan) LoanResponse {
	if ln == nil {
		return LoanResponse{}
	}
	return LoanResponse{
		ID:           ln.ID,
		LoanedAt:     ln.LoanedAt,
		DurationDays: ln.DurationDays,
		DueDate:      ln.DueDate(),
		Customer:     NewCustomerResponse(ln.Customer),
		Item:         NewItemResponse(ln.Item),
	}
}

func NewLoanListResponse(loans []*loan.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for _, ln := range loans {
		out = append(out, NewLoanResponse(ln))
	}
	return out
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
