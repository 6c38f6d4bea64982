package term

import (
	"errors"
	"testing"

	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

func TestDeriveInstallmentCount(t *testing.T) {
	tests := []struct {
		name         string
		disbursement string
		maturity     string
		freq         frequency.Frequency
		expected     int
	}{
		{name: "Twelve calendar months", disbursement: "2024-01-01", maturity: "2025-01-01", freq: frequency.Monthly, expected: 12},
		{name: "Quarterly over a year", disbursement: "2024-01-01", maturity: "2025-01-01", freq: frequency.Quarterly, expected: 4},
		{name: "Semi-annual over 18 months", disbursement: "2024-01-01", maturity: "2025-07-01", freq: frequency.SemiAnnually, expected: 3},
		{name: "Annual over two years", disbursement: "2024-01-01", maturity: "2026-01-01", freq: frequency.Annually, expected: 2},
		{name: "Partial month rounds up", disbursement: "2024-01-15", maturity: "2024-06-01", freq: frequency.Quarterly, expected: 2},
		{name: "Weekly over 30 days rounds up", disbursement: "2024-01-01", maturity: "2024-01-31", freq: frequency.Weekly, expected: 5},
		{name: "Biweekly over 28 days exact", disbursement: "2024-01-01", maturity: "2024-01-29", freq: frequency.Biweekly, expected: 2},
		{name: "Daily counts literal days", disbursement: "2024-02-01", maturity: "2024-03-01", freq: frequency.Daily, expected: 29},
		{name: "Single day loan", disbursement: "2024-01-01", maturity: "2024-01-02", freq: frequency.Daily, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := DeriveInstallmentCount(datetime.MustParseDate(tt.disbursement), datetime.MustParseDate(tt.maturity), tt.freq)
			if err != nil {
				t.Fatalf("DeriveInstallmentCount() unexpected error: %v", err)
			}
			if count != tt.expected {
				t.Errorf("DeriveInstallmentCount() = %d, expected %d", count, tt.expected)
			}
		})
	}
}

func TestDeriveInstallmentCountErrors(t *testing.T) {
	tests := []struct {
		name         string
		disbursement string
		maturity     string
		freq         frequency.Frequency
		expected     error
	}{
		{name: "Maturity equals disbursement", disbursement: "2024-01-01", maturity: "2024-01-01", freq: frequency.Monthly, expected: loan.ErrInvalidDateOrder},
		{name: "Maturity before disbursement", disbursement: "2024-06-01", maturity: "2024-01-01", freq: frequency.Monthly, expected: loan.ErrInvalidDateOrder},
		{name: "Daily over two years exceeds cap", disbursement: "2024-01-01", maturity: "2026-01-01", freq: frequency.Daily, expected: loan.ErrTermOutOfRange},
		{name: "Monthly over 41 years exceeds cap", disbursement: "2024-01-01", maturity: "2065-01-01", freq: frequency.Monthly, expected: loan.ErrTermOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveInstallmentCount(datetime.MustParseDate(tt.disbursement), datetime.MustParseDate(tt.maturity), tt.freq)
			if !errors.Is(err, tt.expected) {
				t.Errorf("DeriveInstallmentCount() = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestFirstPaymentDate(t *testing.T) {
	tests := []struct {
		name         string
		disbursement string
		graceMonths  int
		freq         frequency.Frequency
		maturity     string
		expected     string
	}{
		{name: "Monthly no grace", disbursement: "2024-01-01", graceMonths: 0, freq: frequency.Monthly, maturity: "2025-01-01", expected: "2024-02-01"},
		{name: "Monthly with grace", disbursement: "2024-01-01", graceMonths: 2, freq: frequency.Monthly, maturity: "2025-01-01", expected: "2024-04-01"},
		{name: "Weekly no grace", disbursement: "2024-01-01", graceMonths: 0, freq: frequency.Weekly, maturity: "2024-06-01", expected: "2024-01-08"},
		{name: "Weekly after one month grace", disbursement: "2024-01-01", graceMonths: 1, freq: frequency.Weekly, maturity: "2024-06-01", expected: "2024-02-08"},
		{name: "Quarterly no grace", disbursement: "2024-01-01", graceMonths: 0, freq: frequency.Quarterly, maturity: "2025-01-01", expected: "2024-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := FirstPaymentDate(datetime.MustParseDate(tt.disbursement), tt.graceMonths, tt.freq, datetime.MustParseDate(tt.maturity))
			if err != nil {
				t.Fatalf("FirstPaymentDate() unexpected error: %v", err)
			}
			if first.Format(datetime.DateLayout) != tt.expected {
				t.Errorf("FirstPaymentDate() = %s, expected %s", first.Format(datetime.DateLayout), tt.expected)
			}
		})
	}
}

func TestFirstPaymentAfterMaturity(t *testing.T) {
	// Grace pushes the first payment past maturity.
	_, err := FirstPaymentDate(datetime.MustParseDate("2024-01-01"), 12, frequency.Monthly, datetime.MustParseDate("2024-06-01"))
	if !errors.Is(err, loan.ErrFirstPaymentAfterMaturity) {
		t.Errorf("FirstPaymentDate() = %v, expected ErrFirstPaymentAfterMaturity", err)
	}

	// First payment exactly on maturity is also rejected.
	_, err = FirstPaymentDate(datetime.MustParseDate("2024-01-01"), 0, frequency.Monthly, datetime.MustParseDate("2024-02-01"))
	if !errors.Is(err, loan.ErrFirstPaymentAfterMaturity) {
		t.Errorf("FirstPaymentDate() on maturity = %v, expected ErrFirstPaymentAfterMaturity", err)
	}
}
