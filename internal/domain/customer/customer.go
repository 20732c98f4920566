package customer

import (
	"time"

	"library-server/internal/domain/address"
)

// Customer is a library customer. Address is a reference, not an owned
// child: it is nil until explicitly supplied or resolved, never a
// synthetic placeholder.
type Customer struct {
	ID        int64            `json:"id,omitempty"`
	FirstName string           `json:"firstName,omitempty"`
	LastName  string           `json:"lastName,omitempty"`
	BirthDate time.Time        `json:"birthDate"`
	Address   *address.Address `json:"address,omitempty"`
	Email     string           `json:"email,omitempty"`
}

// IsComplete reports whether all fields required for creation are set.
func (c *Customer) IsComplete() bool {
	if c == nil || c.Address == nil {
		return false
	}
	return c.FirstName != "" && c.LastName != "" && !c.BirthDate.IsZero() &&
		c.Email != "" && c.Address.Street != "" && c.Address.City != "" && c.Address.Zip != ""
}
