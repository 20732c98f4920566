package customer

import (
	"context"
)

type Repository interface {
	Save(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByLastName(ctx context.Context, lastName string) ([]*Customer, error)

	FindByAddressID(ctx context.Context, addressID int64) ([]*Customer, error)

	FindByStreetPrefix(ctx context.Context, street string) ([]*Customer, error)

	CountByAddressID(ctx context.Context, addressID int64) (int64, error)

	Delete(ctx context.Context, customerID int64) error
}
