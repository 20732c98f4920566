package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"library-server/internal/domain/address"
	"library-server/internal/domain/customer"
	"library-server/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const customerSelectColumns = `
        c.id, c.first_name, c.last_name, c.birth_date, c.email,
        a.id, a.street, a.city, a.zip`

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

var _ address.ReferenceCounter = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == 0 {
		return r.insertCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func addressID(addr *address.Address) *int64 {
	if addr == nil || addr.ID == 0 {
		return nil
	}
	return &addr.ID
}

func (r *CustomerRepository) insertCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer")

	query := `
        INSERT INTO customers (first_name, last_name, birth_date, email, address_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.BirthDate,
		cust.Email,
		addressID(cust.Address),
	).Scan(&cust.ID)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation")
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer")

	query := `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            birth_date = $3,
            email = $4,
            address_id = $5,
            updated_at = NOW()
        WHERE id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.BirthDate,
		cust.Email,
		addressID(cust.Address),
		cust.ID,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to update customer due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var cust customer.Customer
	var addrID *int64
	var street, city, zip *string

	err := row.Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.BirthDate,
		&cust.Email,
		&addrID,
		&street,
		&city,
		&zip,
	)
	if err != nil {
		return nil, err
	}

	if addrID != nil {
		cust.Address = &address.Address{ID: *addrID, Street: *street, City: *city, Zip: *zip}
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	query := `
        SELECT ` + customerSelectColumns + `
        FROM customers c
        LEFT JOIN addresses a ON a.id = c.address_id
        WHERE c.id = $1`

	cust, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return cust, nil
}

func (r *CustomerRepository) FindByLastName(ctx context.Context, lastName string) ([]*customer.Customer, error) {
	query := `
        SELECT ` + customerSelectColumns + `
        FROM customers c
        LEFT JOIN addresses a ON a.id = c.address_id
        WHERE c.last_name = $1
        ORDER BY c.id ASC`

	return r.queryCustomers(ctx, query, lastName)
}

func (r *CustomerRepository) FindByAddressID(ctx context.Context, addressID int64) ([]*customer.Customer, error) {
	query := `
        SELECT ` + customerSelectColumns + `
        FROM customers c
        LEFT JOIN addresses a ON a.id = c.address_id
        WHERE c.address_id = $1
        ORDER BY c.id ASC`

	return r.queryCustomers(ctx, query, addressID)
}

func (r *CustomerRepository) FindByStreetPrefix(ctx context.Context, street string) ([]*customer.Customer, error) {
	query := `
        SELECT ` + customerSelectColumns + `
        FROM customers c
        JOIN addresses a ON a.id = c.address_id
        WHERE a.street LIKE $1 || '%'
        ORDER BY c.id ASC`

	return r.queryCustomers(ctx, query, street)
}

func (r *CustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, cust)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	return customers, nil
}

// CountByAddressID backs the address delete guard.
func (r *CustomerRepository) CountByAddressID(ctx context.Context, addressID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM customers WHERE address_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, addressID).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count customers by address", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count customers by address: %w", apperrors.ErrDatabase, err)
	}

	return count, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	query := `DELETE FROM customers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}
