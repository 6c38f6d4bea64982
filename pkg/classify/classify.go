// Package classify maps loan arrears to classification tiers, computes
// provisioning requirements against an injected policy table, and validates
// loan status transitions.
package classify

import (
	"fmt"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
)

// Classify maps an outstanding balance and days in arrears to a loan status.
// A fully repaid loan is closed regardless of arrears history.
func Classify(outstandingPrincipal float64, daysInArrears int) loan.Status {
	if outstandingPrincipal < 0 || money.IsZero(outstandingPrincipal) {
		return loan.StatusClosed
	}
	switch {
	case daysInArrears <= constants.PerformingMaxArrearsDays:
		return loan.StatusPerforming
	case daysInArrears <= constants.WatchMaxArrearsDays:
		return loan.StatusWatch
	case daysInArrears <= constants.SubstandardMaxArrearsDays:
		return loan.StatusSubstandard
	case daysInArrears <= constants.DoubtfulMaxArrearsDays:
		return loan.StatusDoubtful
	default:
		return loan.StatusLoss
	}
}

// ProvisioningPolicy maps classification tiers to the fraction of exposure
// that must be reserved. Rates vary by jurisdiction, so the table is supplied
// by the caller's configuration rather than fixed here.
type ProvisioningPolicy map[loan.Status]float64

// ProvisionRequired computes the loss reserve for an exposure under the
// policy. Tiers absent from the policy provision at zero.
func (p ProvisioningPolicy) ProvisionRequired(outstandingExposure float64, status loan.Status) float64 {
	return money.Round(outstandingExposure * p[status])
}

// transitions is the fixed loan status transition table. WRITTEN_OFF and
// CLOSED are terminal.
var transitions = map[loan.Status][]loan.Status{
	loan.StatusPending:     {loan.StatusApproved, loan.StatusDisbursed},
	loan.StatusApproved:    {loan.StatusDisbursed, loan.StatusPending},
	loan.StatusDisbursed:   {loan.StatusPerforming, loan.StatusWatch, loan.StatusClosed},
	loan.StatusPerforming:  {loan.StatusWatch, loan.StatusSubstandard, loan.StatusClosed},
	loan.StatusWatch:       {loan.StatusPerforming, loan.StatusSubstandard, loan.StatusDoubtful},
	loan.StatusSubstandard: {loan.StatusWatch, loan.StatusDoubtful, loan.StatusLoss},
	loan.StatusDoubtful:    {loan.StatusSubstandard, loan.StatusLoss, loan.StatusWrittenOff},
	loan.StatusLoss:        {loan.StatusWrittenOff, loan.StatusDoubtful},
	loan.StatusWrittenOff:  {},
	loan.StatusClosed:      {},
}

// ValidTransitions returns the set of statuses a loan may move to from the
// given status. The returned slice is a copy.
func ValidTransitions(from loan.Status) []loan.Status {
	allowed := transitions[from]
	out := make([]loan.Status, len(allowed))
	copy(out, allowed)
	return out
}

// ValidateTransition checks that a requested status change is permitted.
func ValidateTransition(from, to loan.Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", loan.ErrInvalidStatusTransition, from, to)
}
