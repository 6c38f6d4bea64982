// Package balance recomputes a loan's live financial position from its
// static terms and authoritative payment history. Every recomputation starts
// from scratch; nothing is accumulated across runs, so drift cannot build up
// and re-running is idempotent.
package balance

import (
	"time"

	"github.com/kopaflow/loan-engine/pkg/classify"
	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
)

// Outcome is the two-case result of a recomputation: either a computed state
// or a skip with its reason. A skip means the loan record lacks the static
// fields needed to compute anything; it is deliberately not an error so that
// batch callers can distinguish "nothing to compute" from a hard failure.
type Outcome struct {
	Skipped bool
	Reason  string
	State   loan.FinancialState
}

func skip(reason string) Outcome {
	return Outcome{Skipped: true, Reason: reason}
}

// Recompute derives the outstanding principal, accrued interest to date,
// days in arrears, and classification status for a single loan as of the
// given date.
func Recompute(terms loan.Terms, payments []loan.PaymentRecord, entries []loan.ScheduleEntry, asOf time.Time) Outcome {
	if terms.DisbursementDate.IsZero() {
		return skip("missing disbursement date")
	}
	if terms.Principal <= 0 {
		return skip("missing or non-positive principal")
	}

	var totalPrincipalPaid, totalInterestPaid float64
	for _, p := range payments {
		totalPrincipalPaid += p.PrincipalPaid
		totalInterestPaid += p.InterestPaid
	}

	outstanding := money.NonNegative(terms.Principal - totalPrincipalPaid)

	daysSinceDisbursement := datetime.DaysBetween(terms.DisbursementDate, asOf)
	if daysSinceDisbursement < 0 {
		daysSinceDisbursement = 0
	}

	var accrued float64
	switch terms.InterestMethod {
	case loan.MethodFlat:
		if terms.TermInMonths <= 0 {
			return skip("missing term in months for flat interest accrual")
		}
		dailyInterest := terms.TotalInterest / float64(terms.TermInMonths*constants.DaysPerMonth)
		earned := money.Min(dailyInterest*float64(daysSinceDisbursement), terms.TotalInterest)
		accrued = money.NonNegative(earned - totalInterestPaid)
	case loan.MethodReducingBalance:
		dailyRate := terms.AnnualInterestRate / constants.PercentageMultiplier / constants.DaysPerYear
		earned := outstanding * dailyRate * float64(daysSinceDisbursement)
		accrued = money.NonNegative(earned - totalInterestPaid)
	default:
		return skip("unknown interest method")
	}

	daysInArrears := DaysInArrears(entries, asOf)

	return Outcome{
		State: loan.FinancialState{
			OutstandingPrincipal:  outstanding,
			AccruedInterestToDate: accrued,
			DaysInArrears:         daysInArrears,
			Status:                classify.Classify(outstanding, daysInArrears),
		},
	}
}

// DaysInArrears returns the days elapsed since the earliest past-due
// installment that is not fully paid, or zero when no installment is
// overdue.
func DaysInArrears(entries []loan.ScheduleEntry, asOf time.Time) int {
	var earliest time.Time
	for _, entry := range entries {
		if !entry.DueDate.Before(asOf) {
			continue
		}
		if entry.Settled() {
			continue
		}
		if earliest.IsZero() || entry.DueDate.Before(earliest) {
			earliest = entry.DueDate
		}
	}
	if earliest.IsZero() {
		return 0
	}
	return datetime.DaysBetween(earliest, asOf)
}
