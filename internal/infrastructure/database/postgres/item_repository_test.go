package postgres

import (
	"context"
	"regexp"
	"testing"

	"library-server/internal/domain/item"
	"library-server/internal/pkg/apperrors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var itemColumns = []string{"id", "title", "author", "genre", "age_rating", "isbn", "shelf_code"}

func setupItemRepo(t *testing.T) (context.Context, *ItemRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewItemRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestInsertItemWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	itm := &item.Item{Title: "Der Prozess", Author: "Franz Kafka", Genre: "Roman", ShelfCode: "A-3"}

	query := `
        INSERT INTO items (title, author, genre, age_rating, isbn, shelf_code, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(
		itm.Title,
		itm.Author,
		itm.Genre,
		itm.AgeRating,
		itm.ISBN,
		itm.ShelfCode,
	).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	err := repo.Save(ctx, itm)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), itm.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpdateItemWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	rating := int16(12)
	isbn := int64(9783596509904)
	itm := &item.Item{ID: 5, Title: "Der Prozess", Author: "Franz Kafka", Genre: "Klassiker", AgeRating: &rating, ISBN: &isbn, ShelfCode: "A-3"}

	mockPool.ExpectExec("UPDATE items").WithArgs(
		itm.Title,
		itm.Author,
		itm.Genre,
		itm.AgeRating,
		itm.ISBN,
		itm.ShelfCode,
		itm.ID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, itm)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindItemByIDReturnOne(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	rating := int16(12)
	mockPool.ExpectQuery("SELECT id, title, author").WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(5), "Der Prozess", "Franz Kafka", "Roman", &rating, (*int64)(nil), "A-3"))

	itm, err := repo.FindByID(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, "Der Prozess", itm.Title)
	assert.Equal(t, int16(12), *itm.AgeRating)
	assert.Nil(t, itm.ISBN)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindItemByIDWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, title, author").WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(itemColumns))

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindItemsByTitle(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, title, author").WithArgs("Der Prozess").
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(5), "Der Prozess", "Franz Kafka", "Roman", (*int16)(nil), (*int64)(nil), "A-3").
			AddRow(int64(6), "Der Prozess", "Franz Kafka", "Roman", (*int16)(nil), (*int64)(nil), "B-1"))

	items, err := repo.FindByTitle(ctx, "Der Prozess")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteItemWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupItemRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM items").WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
