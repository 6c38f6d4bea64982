// Package loan defines the data structures shared by the loan engine:
// binding repayment terms, schedule entries, payment history, and the
// derived financial state.
package loan

import (
	"time"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/money"
)

// InterestMethod selects how total interest is computed for a loan.
type InterestMethod string

const (
	// MethodFlat computes interest once over the full term and divides it
	// equally across installments, independent of declining balance.
	MethodFlat InterestMethod = "FLAT"

	// MethodReducingBalance computes interest each period on the remaining
	// principal with a constant periodic installment (annuity).
	MethodReducingBalance InterestMethod = "REDUCING_BALANCE"
)

// EntryStatus is the repayment status of a single schedule entry.
type EntryStatus string

const (
	EntryPending       EntryStatus = "PENDING"
	EntryPartiallyPaid EntryStatus = "PARTIALLY_PAID"
	EntryPaid          EntryStatus = "PAID"
	EntryOverdue       EntryStatus = "OVERDUE"
)

// Terms holds the binding repayment terms computed at approval time. Once a
// loan is approved these values are immutable; an amendment produces a new
// Terms snapshot and a regenerated schedule tail.
type Terms struct {
	Principal           float64
	AnnualInterestRate  float64 // percent, e.g. 12.5
	InterestMethod      InterestMethod
	Frequency           frequency.Frequency
	DisbursementDate    time.Time
	MaturityDate        time.Time
	GracePeriodMonths   int
	TermInMonths        int
	TotalInterest       float64
	TotalToRepay        float64
	PeriodicInstallment float64
	InstallmentCount    int
	FirstPaymentDate    time.Time
}

// ScheduleEntry is one installment in a repayment schedule. Entries are
// created once by the schedule generator; payment application mutates only
// the paid fields and status.
type ScheduleEntry struct {
	InstallmentNumber         int
	DueDate                   time.Time
	DuePrincipal              float64
	DueInterest               float64
	DueTotal                  float64
	OutstandingPrincipalAfter float64
	PaidPrincipal             float64
	PaidInterest              float64
	PaidTotal                 float64
	Status                    EntryStatus
}

// Settled reports whether the entry's due amount is fully covered, within
// currency tolerance. The monetary amounts are authoritative, not the
// entry status, so a sub-cent shortfall never counts as arrears.
func (e ScheduleEntry) Settled() bool {
	return e.PaidTotal > e.DueTotal ||
		money.WithinTolerance(e.PaidTotal, e.DueTotal, constants.CurrencyTolerance)
}

// PaymentRecord is one payment applied to a loan, as supplied by the
// external ledger.
type PaymentRecord struct {
	PrincipalPaid float64
	InterestPaid  float64
	AmountPaid    float64
	Date          time.Time
}

// FinancialState is the derived live position of a loan. It is recomputed
// from the authoritative payment history on every run, never accumulated
// incrementally across runs.
type FinancialState struct {
	OutstandingPrincipal  float64
	AccruedInterestToDate float64
	DaysInArrears         int
	Status                Status
}
