package item

import (
	"context"
)

type Repository interface {
	Save(ctx context.Context, itm *Item) error

	FindByID(ctx context.Context, itemID int64) (*Item, error)

	FindByTitle(ctx context.Context, title string) ([]*Item, error)

	FindAll(ctx context.Context) ([]*Item, error)

	Delete(ctx context.Context, itemID int64) error
}
