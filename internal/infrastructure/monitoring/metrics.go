package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	LoanDecisionsTotal   *prometheus.CounterVec
	AddressResolvedTotal *prometheus.CounterVec
	OverdueLoansScanned  prometheus.Counter
}

var Business = BusinessMetrics{
	LoanDecisionsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_server_loan_decisions_total",
			Help: "Total number of loan create decisions by outcome.",
		},
		[]string{"outcome"},
	),
	AddressResolvedTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_server_address_resolutions_total",
			Help: "Total number of address resolve-or-create calls by result.",
		},
		[]string{"result"},
	),
	OverdueLoansScanned: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_server_overdue_loans_scanned_total",
			Help: "Total number of overdue loans found by the batch scan.",
		},
	),
}

// RecordLoanDecision tracks create outcomes: created, conflict, not_found, incomplete.
func RecordLoanDecision(outcome string) {
	Business.LoanDecisionsTotal.WithLabelValues(outcome).Inc()
}

// RecordAddressResolution tracks dedup results: matched, created.
func RecordAddressResolution(result string) {
	Business.AddressResolvedTotal.WithLabelValues(result).Inc()
}

func RecordOverdueLoans(n int) {
	Business.OverdueLoansScanned.Add(float64(n))
}
