// Package portfolio loads loan snapshots from persisted JSON exports into
// the in-memory form the batch engine consumes.
package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kopaflow/loan-engine/internal/batch"
	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

type loanRecord struct {
	ID                  string           `json:"id"`
	Status              string           `json:"status"`
	Principal           float64          `json:"principal"`
	AnnualInterestRate  float64          `json:"annual_interest_rate"`
	InterestMethod      string           `json:"interest_method"`
	RepaymentFrequency  string           `json:"repayment_frequency"`
	DisbursementDate    string           `json:"disbursement_date"`
	MaturityDate        string           `json:"maturity_date"`
	GracePeriodMonths   int              `json:"grace_period_months"`
	TermInMonths        int              `json:"term_in_months"`
	TotalInterest       float64          `json:"total_interest"`
	TotalToRepay        float64          `json:"total_to_repay"`
	PeriodicInstallment float64          `json:"periodic_installment"`
	InstallmentCount    int              `json:"installment_count"`
	FirstPaymentDate    string           `json:"first_payment_date"`
	Payments            []paymentRecord  `json:"payments"`
	Schedule            []scheduleRecord `json:"schedule"`
}

type paymentRecord struct {
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	AmountPaid    float64 `json:"amount_paid"`
	Date          string  `json:"date"`
}

type scheduleRecord struct {
	InstallmentNumber int     `json:"installment_number"`
	DueDate           string  `json:"due_date"`
	DuePrincipal      float64 `json:"due_principal"`
	DueInterest       float64 `json:"due_interest"`
	DueTotal          float64 `json:"due_total"`
	PaidPrincipal     float64 `json:"paid_principal"`
	PaidInterest      float64 `json:"paid_interest"`
	PaidTotal         float64 `json:"paid_total"`
	Status            string  `json:"status"`
}

// Load reads a JSON portfolio snapshot from disk. Unparsable per-loan dates
// are mapped to the zero time rather than rejected, so that the balance
// engine can report the affected loan as skipped while the rest of the
// portfolio still computes.
func Load(path string) ([]batch.LoanSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio snapshot %s: %w", path, err)
	}

	var records []loanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio snapshot %s: %w", path, err)
	}

	snapshots := make([]batch.LoanSnapshot, 0, len(records))
	for i, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return nil, fmt.Errorf("loan %d: invalid id %q: %w", i, record.ID, err)
		}

		freq, _ := frequency.Parse(record.RepaymentFrequency)
		method, _ := loan.ParseInterestMethod(record.InterestMethod)
		status, _ := loan.ParseStatus(record.Status)

		snapshot := batch.LoanSnapshot{
			ID:            id,
			CurrentStatus: status,
			Terms: loan.Terms{
				Principal:           record.Principal,
				AnnualInterestRate:  record.AnnualInterestRate,
				InterestMethod:      method,
				Frequency:           freq,
				DisbursementDate:    parseDateOrZero(record.DisbursementDate),
				MaturityDate:        parseDateOrZero(record.MaturityDate),
				GracePeriodMonths:   record.GracePeriodMonths,
				TermInMonths:        record.TermInMonths,
				TotalInterest:       record.TotalInterest,
				TotalToRepay:        record.TotalToRepay,
				PeriodicInstallment: record.PeriodicInstallment,
				InstallmentCount:    record.InstallmentCount,
				FirstPaymentDate:    parseDateOrZero(record.FirstPaymentDate),
			},
		}

		for _, p := range record.Payments {
			snapshot.Payments = append(snapshot.Payments, loan.PaymentRecord{
				PrincipalPaid: p.PrincipalPaid,
				InterestPaid:  p.InterestPaid,
				AmountPaid:    p.AmountPaid,
				Date:          parseDateOrZero(p.Date),
			})
		}

		for _, s := range record.Schedule {
			entryStatus := loan.EntryStatus(s.Status)
			if entryStatus == "" {
				entryStatus = loan.EntryPending
			}
			snapshot.Entries = append(snapshot.Entries, loan.ScheduleEntry{
				InstallmentNumber: s.InstallmentNumber,
				DueDate:           parseDateOrZero(s.DueDate),
				DuePrincipal:      s.DuePrincipal,
				DueInterest:       s.DueInterest,
				DueTotal:          s.DueTotal,
				PaidPrincipal:     s.PaidPrincipal,
				PaidInterest:      s.PaidInterest,
				PaidTotal:         s.PaidTotal,
				Status:            entryStatus,
			})
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

func parseDateOrZero(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	t, err := datetime.ParseDate(dateStr)
	if err != nil {
		return time.Time{}
	}
	return t
}
