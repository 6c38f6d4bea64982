// Package amortization computes total interest and periodic installment
// amounts for the two supported interest methods.
package amortization

import (
	"fmt"
	"math"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
)

// Result holds the amortization outputs for a loan.
type Result struct {
	TotalInterest       float64
	PeriodicInstallment float64
}

// PeriodicRate converts an annual percentage rate to the per-period decimal
// rate for the given frequency.
func PeriodicRate(annualRate float64, freq frequency.Frequency) float64 {
	return annualRate / constants.PercentageMultiplier / freq.PeriodsPerYear()
}

// Compute calculates total interest and the periodic installment.
//
// The flat method charges interest on the original principal over the whole
// term and spreads it evenly: every installment carries identical interest
// regardless of the declining balance. That is the defining behavior of the
// method, not an approximation to be corrected.
//
// The reducing-balance method is a standard annuity: constant installment,
// interest computed each period on the remaining principal. A zero periodic
// rate degenerates to an even principal split with zero interest.
func Compute(principal, annualRate float64, installmentCount int, freq frequency.Frequency, method loan.InterestMethod) (Result, error) {
	n := float64(installmentCount)

	switch method {
	case loan.MethodFlat:
		termYears := n / freq.PeriodsPerYear()
		totalInterest := principal * (annualRate / constants.PercentageMultiplier) * termYears
		periodic := (principal + totalInterest) / n
		return Result{
			TotalInterest:       money.NonNegative(totalInterest),
			PeriodicInstallment: money.NonNegative(periodic),
		}, nil

	case loan.MethodReducingBalance:
		rate := PeriodicRate(annualRate, freq)
		if rate == 0 {
			return Result{
				TotalInterest:       0,
				PeriodicInstallment: money.NonNegative(principal / n),
			}, nil
		}
		growth := math.Pow(1+rate, n)
		denominator := growth - 1
		if denominator == 0 {
			return Result{}, fmt.Errorf("%w: rate %v over %d periods", loan.ErrDegenerateAmortization, rate, installmentCount)
		}
		periodic := money.NonNegative(principal * rate * growth / denominator)
		// Total interest derives from the rounded installment, which is the
		// amount actually charged, so the stored triple reconciles exactly:
		// periodic * n == principal + totalInterest.
		totalInterest := money.NonNegative(periodic*n - principal)
		return Result{
			TotalInterest:       totalInterest,
			PeriodicInstallment: periodic,
		}, nil
	}

	return Result{}, fmt.Errorf("unknown interest method %q", method)
}
