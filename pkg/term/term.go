// Package term derives installment counts and payment dates from the loan's
// disbursement and maturity dates.
package term

import (
	"fmt"
	"math"
	"time"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

// DeriveInstallmentCount computes the number of installments between
// disbursement and maturity for the given frequency. Elapsed-day frequencies
// divide literal days by the period length; calendar frequencies divide the
// calendar-month difference by the period's month count. Both round up so a
// partial final period still gets an installment.
func DeriveInstallmentCount(disbursement, maturity time.Time, freq frequency.Frequency) (int, error) {
	if !maturity.After(disbursement) {
		return 0, fmt.Errorf("%w: maturity %s, disbursement %s", loan.ErrInvalidDateOrder,
			maturity.Format(datetime.DateLayout), disbursement.Format(datetime.DateLayout))
	}

	var count int
	if freq.IsCalendarBased() {
		monthsDiff := datetime.MonthsBetween(disbursement, maturity)
		count = int(math.Ceil(float64(monthsDiff) / float64(freq.PeriodMonths())))
	} else {
		elapsedDays := datetime.DaysBetween(disbursement, maturity)
		count = int(math.Ceil(float64(elapsedDays) / float64(freq.PeriodDays())))
	}

	if count < constants.MinInstallments || count > constants.MaxInstallments {
		return 0, fmt.Errorf("%w: %d installments", loan.ErrTermOutOfRange, count)
	}
	return count, nil
}

// FirstPaymentDate computes the due date of the first installment: the
// disbursement date plus the grace period in calendar months, plus one
// period in the frequency's own unit. The result must fall strictly before
// maturity.
func FirstPaymentDate(disbursement time.Time, graceMonths int, freq frequency.Frequency, maturity time.Time) (time.Time, error) {
	first := freq.AddPeriods(datetime.AddMonths(disbursement, graceMonths), 1)
	if !first.Before(maturity) {
		return time.Time{}, fmt.Errorf("%w: first payment %s, maturity %s", loan.ErrFirstPaymentAfterMaturity,
			first.Format(datetime.DateLayout), maturity.Format(datetime.DateLayout))
	}
	return first, nil
}
