package postgres

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"library-server/internal/domain/address"
	"library-server/internal/pkg/apperrors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

func setupAddressRepo(t *testing.T) (context.Context, *AddressRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewAddressRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestInsertAddressWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	addr := &address.Address{Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}

	query := `
        INSERT INTO addresses (street, city, zip, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(
		addr.Street,
		addr.City,
		addr.Zip,
	).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.Save(ctx, addr)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), addr.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpdateAddressWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	addr := &address.Address{ID: 7, Street: "Bahnhofstrasse 12", City: "Zurich", Zip: "8001"}

	query := `
        UPDATE addresses
        SET street = $1,
            city = $2,
            zip = $3,
            updated_at = NOW()
        WHERE id = $4`

	mockPool.ExpectExec(regexp.QuoteMeta(query)).WithArgs(
		addr.Street,
		addr.City,
		addr.Zip,
		addr.ID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, addr)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAddressByIDReturnOne(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	query := `
        SELECT id, street, city, zip
        FROM addresses
        WHERE id = $1`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "street", "city", "zip"}).
			AddRow(int64(7), "Bahnhofstrasse 12", "Zurich", "8001"))

	addr, err := repo.FindByID(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Bahnhofstrasse 12", addr.Street)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAddressByIDWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, street, city, zip").WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "street", "city", "zip"}))

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAddressesByStreetAndZip(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT id, street, city, zip").WithArgs("Bahnhofstrasse 12", "8001").
		WillReturnRows(pgxmock.NewRows([]string{"id", "street", "city", "zip"}).
			AddRow(int64(7), "Bahnhofstrasse 12", "Zurich", "8001").
			AddRow(int64(9), "Bahnhofstrasse 12", "Zuerich", "8001"))

	addresses, err := repo.FindByStreetAndZip(ctx, "Bahnhofstrasse 12", "8001")
	assert.NoError(t, err)
	assert.Len(t, addresses, 2)
	assert.Equal(t, int64(7), addresses[0].ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteAddressWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM addresses").WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(ctx, 7)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteAddressWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupAddressRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM addresses").WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
