package address

import (
	"context"
)

type Repository interface {
	Save(ctx context.Context, addr *Address) error

	FindByID(ctx context.Context, addressID int64) (*Address, error)

	FindByZip(ctx context.Context, zip string) ([]*Address, error)

	FindByStreetPrefix(ctx context.Context, street string) ([]*Address, error)

	FindByStreetAndZip(ctx context.Context, street, zip string) ([]*Address, error)

	FindAll(ctx context.Context) ([]*Address, error)

	Delete(ctx context.Context, addressID int64) error
}

// ReferenceCounter reports how many customers reference an address.
// Implemented by the customer repository; declared here to keep the
// delete guard free of a package cycle.
type ReferenceCounter interface {
	CountByAddressID(ctx context.Context, addressID int64) (int64, error)
}
