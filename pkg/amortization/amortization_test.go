package amortization

import (
	"math"
	"testing"

	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
)

func TestComputeFlat(t *testing.T) {
	tests := []struct {
		name             string
		principal        float64
		annualRate       float64
		installments     int
		freq             frequency.Frequency
		expectedInterest float64
		expectedPeriodic float64
	}{
		{
			// 1.2M at 12% over one year accrues exactly one year of flat interest.
			name:             "Twelve monthly installments",
			principal:        1_200_000,
			annualRate:       12,
			installments:     12,
			freq:             frequency.Monthly,
			expectedInterest: 144_000.00,
			expectedPeriodic: 112_000.00,
		},
		{
			name:             "Weekly half year",
			principal:        52_000,
			annualRate:       10,
			installments:     26,
			freq:             frequency.Weekly,
			expectedInterest: 2_600.00,
			expectedPeriodic: 2_100.00,
		},
		{
			name:             "Zero rate flat",
			principal:        10_000,
			annualRate:       0,
			installments:     10,
			freq:             frequency.Monthly,
			expectedInterest: 0,
			expectedPeriodic: 1_000.00,
		},
		{
			name:             "Quarterly two years",
			principal:        100_000,
			annualRate:       8,
			installments:     8,
			freq:             frequency.Quarterly,
			expectedInterest: 16_000.00,
			expectedPeriodic: 14_500.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.principal, tt.annualRate, tt.installments, tt.freq, loan.MethodFlat)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if math.Abs(result.TotalInterest-tt.expectedInterest) > 0.01 {
				t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, tt.expectedInterest)
			}
			if math.Abs(result.PeriodicInstallment-tt.expectedPeriodic) > 0.01 {
				t.Errorf("PeriodicInstallment = %.2f, expected %.2f", result.PeriodicInstallment, tt.expectedPeriodic)
			}
		})
	}
}

func TestComputeReducingBalance(t *testing.T) {
	tests := []struct {
		name             string
		principal        float64
		annualRate       float64
		installments     int
		freq             frequency.Frequency
		expectedPeriodic float64
		expectedInterest float64
	}{
		{
			// Annuity payment on 1.2M at 1% per period over 12 periods.
			name:             "Twelve monthly installments",
			principal:        1_200_000,
			annualRate:       12,
			installments:     12,
			freq:             frequency.Monthly,
			expectedPeriodic: 106_618.55,
			expectedInterest: 79_422.60,
		},
		{
			// Standard 30-year mortgage check: 240k at 6% is about $1,438.92/month.
			name:             "Thirty year mortgage",
			principal:        240_000,
			annualRate:       6,
			installments:     360,
			freq:             frequency.Monthly,
			expectedPeriodic: 1_438.92,
			expectedInterest: 278_011.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.principal, tt.annualRate, tt.installments, tt.freq, loan.MethodReducingBalance)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if math.Abs(result.PeriodicInstallment-tt.expectedPeriodic) > 0.01 {
				t.Errorf("PeriodicInstallment = %.2f, expected %.2f", result.PeriodicInstallment, tt.expectedPeriodic)
			}
			if math.Abs(result.TotalInterest-tt.expectedInterest) > 0.005 {
				t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, tt.expectedInterest)
			}
			// The stored triple must reconcile exactly: interest derives from
			// the rounded installment actually charged each period.
			streamInterest := result.PeriodicInstallment*float64(tt.installments) - tt.principal
			if math.Abs(result.TotalInterest-streamInterest) > 0.005 {
				t.Errorf("TotalInterest = %.2f does not reconcile with installment stream %.2f", result.TotalInterest, streamInterest)
			}
		})
	}
}

func TestComputeReducingBalanceZeroRate(t *testing.T) {
	result, err := Compute(12_000, 0, 12, frequency.Monthly, loan.MethodReducingBalance)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %.2f, expected 0 for zero rate", result.TotalInterest)
	}
	if math.Abs(result.PeriodicInstallment-1_000.00) > 0.01 {
		t.Errorf("PeriodicInstallment = %.2f, expected 1000.00", result.PeriodicInstallment)
	}
}

func TestComputeUnknownMethod(t *testing.T) {
	if _, err := Compute(1000, 10, 12, frequency.Monthly, loan.InterestMethod("COMPOUND")); err == nil {
		t.Errorf("Compute() with unknown method expected error, got none")
	}
}

func TestPeriodicRate(t *testing.T) {
	tests := []struct {
		annualRate float64
		freq       frequency.Frequency
		expected   float64
	}{
		{12, frequency.Monthly, 0.01},
		{12, frequency.Quarterly, 0.03},
		{36.5, frequency.Daily, 0.001},
		{10, frequency.Annually, 0.10},
	}
	for _, tt := range tests {
		if got := PeriodicRate(tt.annualRate, tt.freq); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("PeriodicRate(%v, %s) = %v, expected %v", tt.annualRate, tt.freq, got, tt.expected)
		}
	}
}
