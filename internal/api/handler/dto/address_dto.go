package dto

import (
	"library-server/internal/domain/address"
)

type AddressPayload struct {
	ID     int64  `json:"id,omitempty"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

func (p *AddressPayload) ToDomain() *address.Address {
	if p == nil {
		return nil
	}
	return &address.Address{
		ID:     p.ID,
		Street: p.Street,
		City:   p.City,
		Zip:    p.Zip,
	}
}

type AddressResponse struct {
	ID     int64  `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

func NewAddressResponse(addr *address.Address) *AddressResponse {
	if addr == nil {
		return nil
	}
	return &AddressResponse{
		ID:     addr.ID,
		Street: addr.Street,
		City:   addr.City,
		Zip:    addr.Zip,
	}
}

func NewAddressListResponse(addresses []*address.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, addr := range addresses {
		out = append(out, *NewAddressResponse(addr))
	}
	return out
}
