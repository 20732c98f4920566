package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"library-server/internal/domain/loan"
	"library-server/internal/event"
	"library-server/internal/infrastructure/monitoring"

	"github.com/shopspring/decimal"
)

// OverdueScanJob walks every loan whose due date has passed, computes
// the accumulated late fee and publishes a loan.overdue event per loan.
// The job only reads loan state; fee collection is downstream of the
// events.
type OverdueScanJob struct {
	loanRepo  loan.Repository
	pub       event.EventPublisher
	feePerDay decimal.Decimal
	logger    *slog.Logger
}

func NewOverdueScanJob(loanRepo loan.Repository, pub event.EventPublisher, feePerDay decimal.Decimal, logger *slog.Logger) *OverdueScanJob {
	if loanRepo == nil || logger == nil {
		panic("OverdueScanJob dependencies cannot be nil")
	}
	return &OverdueScanJob{
		loanRepo:  loanRepo,
		pub:       pub,
		feePerDay: feePerDay,
		logger:    logger.With("job", "OverdueScan"),
	}
}

// LateFee is the per-day rate multiplied by the whole days the loan is
// past its due date.
func (j *OverdueScanJob) LateFee(ln *loan.Loan, now time.Time) decimal.Decimal {
	return j.feePerDay.Mul(decimal.NewFromInt(int64(ln.DaysOverdue(now))))
}

func (j *OverdueScanJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting overdue loan scan job.")

	now := time.Now()
	overdue, err := j.loanRepo.FindOverdue(ctx, now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch overdue loans, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to fetch overdue loans: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched overdue loans.", slog.Int("count", len(overdue)))
	monitoring.RecordOverdueLoans(len(overdue))

	if len(overdue) == 0 {
		j.logger.InfoContext(ctx, "No overdue loans found.", slog.Duration("duration", time.Since(startTime)))
		return nil
	}

	var errorCount int
	for _, ln := range overdue {
		logCtx := j.logger.With(slog.Int64("loanID", ln.ID))

		daysOverdue := ln.DaysOverdue(now)
		fee := j.LateFee(ln, now)
		logCtx.DebugContext(ctx, "Loan is overdue.",
			slog.Int("daysOverdue", daysOverdue),
			slog.String("lateFee", fee.StringFixed(2)))

		if j.pub == nil {
			continue
		}
		evt := event.LoanOverdueEvent{
			Timestamp:   now,
			DaysOverdue: daysOverdue,
			LateFee:     fee.StringFixed(2),
			Payload: event.LoanEventPayload{
				LoanID:       ln.ID,
				LoanedAt:     ln.LoanedAt,
				DurationDays: ln.DurationDays,
				DueDate:      ln.DueDate(),
			},
		}
		if ln.Customer != nil {
			evt.Payload.CustomerID = ln.Customer.ID
		}
		if ln.Item != nil {
			evt.Payload.ItemID = ln.Item.ID
		}
		if pubErr := j.pub.PublishLoanOverdue(ctx, evt); pubErr != nil {
			logCtx.ErrorContext(ctx, "Failed to publish loan overdue event", slog.Any("error", pubErr))
			errorCount++
		}
	}

	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("overdue_loans", len(overdue)),
		slog.Int("errors_encountered", errorCount),
	)
	if errorCount > 0 {
		summaryLog.WarnContext(ctx, "Overdue loan scan job finished with errors.")
		return fmt.Errorf("job completed with %d errors", errorCount)
	}
	summaryLog.InfoContext(ctx, "Overdue loan scan job finished successfully.")
	return nil
}
