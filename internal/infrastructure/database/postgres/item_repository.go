package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"library-server/internal/domain/item"
	"library-server/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ item.Repository = (*ItemRepository)(nil)

func NewItemRepository(db DBPool, logger *slog.Logger) *ItemRepository {
	if db == nil {
		panic("DBPool cannot be nil for ItemRepository")
	}
	return &ItemRepository{
		db:     db,
		logger: logger.With("component", "ItemRepository"),
	}
}

func (r *ItemRepository) Save(ctx context.Context, itm *item.Item) error {
	if itm == nil {
		return fmt.Errorf("%w: item cannot be nil", apperrors.ErrInvalidArgument)
	}

	if itm.ID == 0 {
		return r.insertItem(ctx, itm)
	}
	return r.updateItem(ctx, itm)
}

func (r *ItemRepository) insertItem(ctx context.Context, itm *item.Item) error {
	r.logger.InfoContext(ctx, "Attempting to insert new item", slog.String("title", itm.Title))

	query := `
        INSERT INTO items (title, author, genre, age_rating, isbn, shelf_code, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		itm.Title,
		itm.Author,
		itm.Genre,
		itm.AgeRating,
		itm.ISBN,
		itm.ShelfCode,
	).Scan(&itm.ID)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to insert item", slog.Any("error", err))
		return fmt.Errorf("failed to insert item: %w", translatedErr)
	}

	r.logger.InfoContext(ctx, "Item inserted successfully", slog.Int64("itemID", itm.ID))
	return nil
}

func (r *ItemRepository) updateItem(ctx context.Context, itm *item.Item) error {
	r.logger.InfoContext(ctx, "Attempting to update item")

	query := `
        UPDATE items
        SET title = $1,
            author = $2,
            genre = $3,
            age_rating = $4,
            isbn = $5,
            shelf_code = $6,
            updated_at = NOW()
        WHERE id = $7`

	cmdTag, err := r.db.Exec(ctx, query,
		itm.Title,
		itm.Author,
		itm.Genre,
		itm.AgeRating,
		itm.ISBN,
		itm.ShelfCode,
		itm.ID,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to update item", slog.Any("error", err))
		return fmt.Errorf("failed to update item: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, item likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Item updated successfully")
	return nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var itm item.Item
	err := row.Scan(
		&itm.ID,
		&itm.Title,
		&itm.Author,
		&itm.Genre,
		&itm.AgeRating,
		&itm.ISBN,
		&itm.ShelfCode,
	)
	if err != nil {
		return nil, err
	}
	return &itm, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID int64) (*item.Item, error) {
	query := `
        SELECT id, title, author, genre, age_rating, isbn, shelf_code
        FROM items
        WHERE id = $1`

	itm, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Item not found", slog.Int64("itemID", itemID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query item by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get item by ID: %w", apperrors.ErrDatabase, err)
	}

	return itm, nil
}

func (r *ItemRepository) FindByTitle(ctx context.Context, title string) ([]*item.Item, error) {
	query := `
        SELECT id, title, author, genre, age_rating, isbn, shelf_code
        FROM items
        WHERE title = $1
        ORDER BY id ASC`

	return r.queryItems(ctx, query, title)
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	query := `
        SELECT id, title, author, genre, age_rating, isbn, shelf_code
        FROM items
        ORDER BY id ASC`

	return r.queryItems(ctx, query)
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query items", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query items: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	items := make([]*item.Item, 0)
	for rows.Next() {
		itm, err := scanItem(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan item row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan item row: %w", apperrors.ErrDatabase, err)
		}
		items = append(items, itm)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating item rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating item rows: %w", apperrors.ErrDatabase, err)
	}

	return items, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete item", slog.Int64("itemID", itemID))

	query := `DELETE FROM items WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete item", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete item: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, item likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Item deleted successfully")
	return nil
}
