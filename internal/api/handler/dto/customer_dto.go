package dto

import (
	"time"

	"library-server/internal/domain/customer"
)

// CustomerRequest is the wire shape for both create and upsert. Absent
// fields stay zero and are treated as "not supplied" by the service.
type CustomerRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	BirthDate time.Time       `json:"birthDate"`
	Email     string          `json:"email"`
	Address   *AddressPayload `json:"address"`
}

func (r *CustomerRequest) ToDomain() *customer.Customer {
	return &customer.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Email:     r.Email,
		Address:   r.Address.ToDomain(),
	}
}

type CustomerResponse struct {
	ID        int64            `json:"id"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	BirthDate time.Time        `json:"birthDate"`
	Email     string           `json:"email"`
	Address   *AddressResponse `json:"address,omitempty"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		BirthDate: cust.BirthDate,
		Email:     cust.Email,
		Address:   NewAddressResponse(cust.Address),
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, NewCustomerResponse(cust))
	}
	return out
}
