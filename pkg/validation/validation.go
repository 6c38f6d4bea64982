// Package validation rejects out-of-range loan parameters before any
// calculation runs.
package validation

import (
	"fmt"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

// Bounds holds the deployment-specific validation limits. It is an explicit
// value passed into every entry point rather than package-level state so that
// deployments can tune limits and tests can run in isolation.
type Bounds struct {
	MinLoanAmount    float64
	MaxStorableValue float64
	MaxTermMonths    int
}

// DefaultBounds returns the engine defaults: no minimum, a DECIMAL(15,2)
// storage ceiling, and a 40-year maximum term.
func DefaultBounds() Bounds {
	return Bounds{
		MinLoanAmount:    0,
		MaxStorableValue: 9_999_999_999_999.99,
		MaxTermMonths:    constants.MaxInstallments,
	}
}

// ValidateLoanParameters checks principal, rate and term against the bounds.
// The projected-overflow check estimates the total repayment and periodic
// installment up front: downstream numeric storage has a fixed-precision
// ceiling, and failing here avoids generating an unstorable schedule.
func ValidateLoanParameters(principal, annualRate float64, termMonths int, bounds Bounds) error {
	if principal < bounds.MinLoanAmount {
		return fmt.Errorf("%w: %.2f < %.2f", loan.ErrBelowMinimumAmount, principal, bounds.MinLoanAmount)
	}
	if principal > bounds.MaxStorableValue {
		return fmt.Errorf("%w: %.2f > %.2f", loan.ErrValueOverflow, principal, bounds.MaxStorableValue)
	}
	if annualRate < 0 || annualRate > 100 {
		return fmt.Errorf("%w: %.2f", loan.ErrRateOutOfRange, annualRate)
	}
	if termMonths <= 0 || termMonths > bounds.MaxTermMonths {
		return fmt.Errorf("%w: %d months", loan.ErrTermOutOfRange, termMonths)
	}

	totalInterest := principal * (annualRate / constants.PercentageMultiplier) * (float64(termMonths) / constants.MonthsPerYear)
	estimatedTotal := principal + totalInterest
	estimatedPeriodic := estimatedTotal / float64(termMonths)
	if estimatedTotal > bounds.MaxStorableValue || estimatedPeriodic > bounds.MaxStorableValue {
		return fmt.Errorf("%w: estimated total %.2f", loan.ErrProjectedOverflow, estimatedTotal)
	}

	return nil
}
