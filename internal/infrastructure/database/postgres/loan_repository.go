package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"library-server/internal/domain/address"
	"library-server/internal/domain/customer"
	"library-server/internal/domain/item"
	"library-server/internal/domain/loan"
	"library-server/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const loanSelectColumns = `
        l.id, l.loaned_at, l.duration_days,
        c.id, c.first_name, c.last_name, c.birth_date, c.email,
        a.id, a.street, a.city, a.zip,
        i.id, i.title, i.author, i.genre, i.age_rating, i.isbn, i.shelf_code`

const loanSelectJoins = `
        FROM loans l
        JOIN customers c ON c.id = l.customer_id
        LEFT JOIN addresses a ON a.id = c.address_id
        JOIN items i ON i.id = l.item_id`

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	if db == nil {
		panic("DBPool cannot be nil for LoanRepository")
	}
	return &LoanRepository{
		db:     db,
		logger: logger.With("component", "LoanRepository"),
	}
}

func (r *LoanRepository) Save(ctx context.Context, ln *loan.Loan) error {
	if ln == nil {
		return fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}
	if ln.Customer == nil || ln.Item == nil {
		return fmt.Errorf("%w: loan must reference a customer and an item", apperrors.ErrInvalidArgument)
	}

	if ln.ID == 0 {
		return r.insertLoan(ctx, ln)
	}
	return r.updateLoan(ctx, ln)
}

func (r *LoanRepository) insertLoan(ctx context.Context, ln *loan.Loan) error {
	r.logger.InfoContext(ctx, "Attempting to insert new loan",
		slog.Int64("customerID", ln.Customer.ID), slog.Int64("itemID", ln.Item.ID))

	query := `
        INSERT INTO loans (loaned_at, duration_days, customer_id, item_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		ln.LoanedAt,
		ln.DurationDays,
		ln.Customer.ID,
		ln.Item.ID,
	).Scan(&ln.ID)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			// Unique index on item_id backs the one-loan-per-item rule.
			r.logger.WarnContext(ctx, "Failed to insert loan, item already on loan")
			return fmt.Errorf("%w: item %d", apperrors.ErrItemOnLoan, ln.Item.ID)
		}
		r.logger.ErrorContext(ctx, "Failed to insert loan", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert loan: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Loan inserted successfully", slog.Int64("loanID", ln.ID))
	return nil
}

func (r *LoanRepository) updateLoan(ctx context.Context, ln *loan.Loan) error {
	r.logger.InfoContext(ctx, "Attempting to update loan", slog.Int64("loanID", ln.ID))

	query := `
        UPDATE loans
        SET loaned_at = $1,
            duration_days = $2,
            customer_id = $3,
            item_id = $4,
            updated_at = NOW()
        WHERE id = $5`

	cmdTag, err := r.db.Exec(ctx, query,
		ln.LoanedAt,
		ln.DurationDays,
		ln.Customer.ID,
		ln.Item.ID,
		ln.ID,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to update loan", slog.Any("error", err))
		return fmt.Errorf("failed to update loan: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, loan likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Loan updated successfully")
	return nil
}

func scanLoan(row pgx.Row) (*loan.Loan, error) {
	var ln loan.Loan
	var cust customer.Customer
	var itm item.Item
	var addrID *int64
	var street, city, zip *string

	err := row.Scan(
		&ln.ID,
		&ln.LoanedAt,
		&ln.DurationDays,
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.BirthDate,
		&cust.Email,
		&addrID,
		&street,
		&city,
		&zip,
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

	if addrID != nil {
		cust.Address = &address.Address{ID: *addrID, Street: *street, City: *city, Zip: *zip}
	}
	ln.Customer = &cust
	ln.Item = &itm
	return &ln, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	query := `
        SELECT ` + loanSelectColumns + loanSelectJoins + `
        WHERE l.id = $1`

	ln, err := scanLoan(r.db.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan not found", slog.Int64("loanID", loanID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query loan by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get loan by ID: %w", apperrors.ErrDatabase, err)
	}

	return ln, nil
}

func (r *LoanRepository) FindByItemID(ctx context.Context, itemID int64) (*loan.Loan, error) {
	query := `
        SELECT ` + loanSelectColumns + loanSelectJoins + `
        WHERE l.item_id = $1`

	ln, err := scanLoan(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query loan by item ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get loan by item ID: %w", apperrors.ErrDatabase, err)
	}

	return ln, nil
}

func (r *LoanRepository) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	query := `
        SELECT ` + loanSelectColumns + loanSelectJoins + `
        ORDER BY l.id ASC`

	return r.queryLoans(ctx, query)
}

func (r *LoanRepository) FindOverdue(ctx context.Context, now time.Time) ([]*loan.Loan, error) {
	query := `
        SELECT ` + loanSelectColumns + loanSelectJoins + `
        WHERE l.loaned_at + make_interval(days => l.duration_days) < $1
        ORDER BY l.id ASC`

	return r.queryLoans(ctx, query, now)
}

func (r *LoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]*loan.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query loans", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query loans: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	loans := make([]*loan.Loan, 0)
	for rows.Next() {
		ln, err := scanLoan(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan loan row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan loan row: %w", apperrors.ErrDatabase, err)
		}
		loans = append(loans, ln)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating loan rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating loan rows: %w", apperrors.ErrDatabase, err)
	}

	return loans, nil
}

func (r *LoanRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete loan by item", slog.Int64("itemID", itemID))

	query := `DELETE FROM loans WHERE item_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete loan", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete loan: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, no active loan for item")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Loan deleted successfully")
	return nil
}
