package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"library-server/internal/domain/address"
	"library-server/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}

type AddressRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ address.Repository = (*AddressRepository)(nil)

func NewAddressRepository(db DBPool, logger *slog.Logger) *AddressRepository {
	if db == nil {
		panic("DBPool cannot be nil for AddressRepository")
	}
	return &AddressRepository{
		db:     db,
		logger: logger.With("component", "AddressRepository"),
	}
}

func (r *AddressRepository) Save(ctx context.Context, addr *address.Address) error {
	if addr == nil {
		return fmt.Errorf("%w: address cannot be nil", apperrors.ErrInvalidArgument)
	}

	if addr.ID == 0 {
		return r.insertAddress(ctx, addr)
	}
	return r.updateAddress(ctx, addr)
}

func (r *AddressRepository) insertAddress(ctx context.Context, addr *address.Address) error {
	r.logger.InfoContext(ctx, "Attempting to insert new address")

	query := `
        INSERT INTO addresses (street, city, zip, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id`

	err := r.db.QueryRow(ctx, query, addr.Street, addr.City, addr.Zip).Scan(&addr.ID)
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to insert address", slog.Any("error", err))
		return fmt.Errorf("failed to insert address: %w", translatedErr)
	}

	r.logger.InfoContext(ctx, "Address inserted successfully", slog.Int64("addressID", addr.ID))
	return nil
}

func (r *AddressRepository) updateAddress(ctx context.Context, addr *address.Address) error {
	r.logger.InfoContext(ctx, "Attempting to update address")

	query := `
        UPDATE addresses
        SET street = $1,
            city = $2,
            zip = $3,
            updated_at = NOW()
        WHERE id = $4`

	cmdTag, err := r.db.Exec(ctx, query, addr.Street, addr.City, addr.Zip, addr.ID)
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to update address", slog.Any("error", err))
		return fmt.Errorf("failed to update address: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, address likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Address updated successfully")
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, addressID int64) (*address.Address, error) {
	query := `
        SELECT id, street, city, zip
        FROM addresses
        WHERE id = $1`

	var addr address.Address
	err := r.db.QueryRow(ctx, query, addressID).Scan(&addr.ID, &addr.Street, &addr.City, &addr.Zip)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Address not found", slog.Int64("addressID", addressID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query address by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get address by ID: %w", apperrors.ErrDatabase, err)
	}

	return &addr, nil
}

func (r *AddressRepository) FindByZip(ctx context.Context, zip string) ([]*address.Address, error) {
	query := `
        SELECT id, street, city, zip
        FROM addresses
        WHERE zip = $1
        ORDER BY id ASC`

	return r.queryAddresses(ctx, query, zip)
}

func (r *AddressRepository) FindByStreetPrefix(ctx context.Context, street string) ([]*address.Address, error) {
	query := `
        SELECT id, street, city, zip
        FROM addresses
        WHERE street LIKE $1 || '%'
        ORDER BY id ASC`

	return r.queryAddresses(ctx, query, street)
}

func (r *AddressRepository) FindByStreetAndZip(ctx context.Context, street, zip string) ([]*address.Address, error) {
	query := `
        SELECT id, street, city, zip
        FROM addresses
        WHERE street = $1 AND zip = $2
        ORDER BY id ASC`

	return r.queryAddresses(ctx, query, street, zip)
}

func (r *AddressRepository) FindAll(ctx context.Context) ([]*address.Address, error) {
	query := `
        SELECT id, street, city, zip
        FROM addresses
        ORDER BY id ASC`

	return r.queryAddresses(ctx, query)
}

func (r *AddressRepository) queryAddresses(ctx context.Context, query string, args ...any) ([]*address.Address, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query addresses", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query addresses: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	addresses := make([]*address.Address, 0)
	for rows.Next() {
		var addr address.Address
		if err := rows.Scan(&addr.ID, &addr.Street, &addr.City, &addr.Zip); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan address row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan address row: %w", apperrors.ErrDatabase, err)
		}
		addresses = append(addresses, &addr)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating address rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating address rows: %w", apperrors.ErrDatabase, err)
	}

	return addresses, nil
}

func (r *AddressRepository) Delete(ctx context.Context, addressID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete address", slog.Int64("addressID", addressID))

	query := `DELETE FROM addresses WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, addressID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete address", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete address: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, address likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Address deleted successfully")
	return nil
}
