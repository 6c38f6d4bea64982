// Package schedule expands approved loan terms into a dated installment
// sequence. Generation is pure: the same terms always yield the same
// schedule.
package schedule

import (
	"fmt"

	"github.com/kopaflow/loan-engine/pkg/amortization"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
)

// Generate produces the full installment sequence for the given terms. Due
// dates advance one period at a time in the frequency's own unit. Rounding
// works per entry; whatever cumulative residue remains after the final
// rounded split, positive or negative, is absorbed into the last
// installment's principal so the schedule always retires the principal
// exactly.
func Generate(terms loan.Terms) ([]loan.ScheduleEntry, error) {
	n := terms.InstallmentCount
	if n <= 0 {
		return nil, fmt.Errorf("installment count must be positive, got %d", n)
	}

	rate := amortization.PeriodicRate(terms.AnnualInterestRate, terms.Frequency)
	entries := make([]loan.ScheduleEntry, 0, n)
	remaining := terms.Principal

	for i := 1; i <= n; i++ {
		var duePrincipal, dueInterest float64

		switch terms.InterestMethod {
		case loan.MethodFlat:
			duePrincipal = money.Round(terms.Principal / float64(n))
			dueInterest = money.Round(terms.TotalInterest / float64(n))
		case loan.MethodReducingBalance:
			dueInterest = money.Round(remaining * rate)
			duePrincipal = money.Round(terms.PeriodicInstallment - dueInterest)
		default:
			return nil, fmt.Errorf("unknown interest method %q", terms.InterestMethod)
		}

		remaining -= duePrincipal
		if i == n {
			// Fold the rounding residue into the final installment.
			duePrincipal = money.Round(duePrincipal + remaining)
			remaining = 0
		}

		entries = append(entries, loan.ScheduleEntry{
			InstallmentNumber:         i,
			DueDate:                   terms.Frequency.AddPeriods(terms.FirstPaymentDate, i-1),
			DuePrincipal:              duePrincipal,
			DueInterest:               dueInterest,
			DueTotal:                  money.Round(duePrincipal + dueInterest),
			OutstandingPrincipalAfter: money.Round(remaining),
			Status:                    loan.EntryPending,
		})
	}

	return entries, nil
}

// RegenerateTail rebuilds the unpaid tail of a schedule after a loan-term
// amendment. Entries carrying any payment are kept untouched; everything
// after the last paid-against installment is replaced by a fresh schedule for
// the amended terms, renumbered so installment numbers stay contiguous.
// The amended terms' principal must already reflect only the unpaid balance.
func RegenerateTail(amended loan.Terms, existing []loan.ScheduleEntry) ([]loan.ScheduleEntry, error) {
	keep := 0
	for i, entry := range existing {
		if entry.PaidTotal > 0 || entry.Status == loan.EntryPaid || entry.Status == loan.EntryPartiallyPaid {
			keep = i + 1
		}
	}

	tail, err := Generate(amended)
	if err != nil {
		return nil, err
	}

	result := make([]loan.ScheduleEntry, 0, keep+len(tail))
	result = append(result, existing[:keep]...)
	for i := range tail {
		tail[i].InstallmentNumber = keep + i + 1
		result = append(result, tail[i])
	}
	return result, nil
}
