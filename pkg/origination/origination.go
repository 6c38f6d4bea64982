// Package origination runs the approval-time pipeline: parameter validation,
// term derivation, amortization, and schedule generation, producing the
// immutable terms snapshot and installment sequence the caller persists.
package origination

import (
	"fmt"
	"time"

	"github.com/kopaflow/loan-engine/pkg/amortization"
	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
	"github.com/kopaflow/loan-engine/pkg/schedule"
	"github.com/kopaflow/loan-engine/pkg/term"
	"github.com/kopaflow/loan-engine/pkg/validation"
	"go.uber.org/zap"
)

// Application carries the requested loan parameters at approval time.
type Application struct {
	Principal          float64
	AnnualInterestRate float64
	InterestMethod     loan.InterestMethod
	Frequency          frequency.Frequency
	DisbursementDate   time.Time
	MaturityDate       time.Time
	GracePeriodMonths  int
}

// Pipeline validates applications and computes binding terms and schedules.
type Pipeline struct {
	bounds validation.Bounds
	logger *zap.Logger
}

// NewPipeline creates a Pipeline with the given validation bounds.
func NewPipeline(bounds validation.Bounds, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{bounds: bounds, logger: logger}
}

// Prepare runs validation, term derivation, amortization, and schedule
// generation for an application. Any failure aborts the approval; the caller
// is responsible for rolling back anything already persisted.
func (p *Pipeline) Prepare(app Application) (loan.Terms, []loan.ScheduleEntry, error) {
	termMonths := datetime.MonthsBetween(app.DisbursementDate, app.MaturityDate)

	if err := validation.ValidateLoanParameters(app.Principal, app.AnnualInterestRate, termMonths, p.bounds); err != nil {
		return loan.Terms{}, nil, err
	}

	count, err := term.DeriveInstallmentCount(app.DisbursementDate, app.MaturityDate, app.Frequency)
	if err != nil {
		return loan.Terms{}, nil, err
	}

	result, err := amortization.Compute(app.Principal, app.AnnualInterestRate, count, app.Frequency, app.InterestMethod)
	if err != nil {
		return loan.Terms{}, nil, err
	}

	firstPayment, err := term.FirstPaymentDate(app.DisbursementDate, app.GracePeriodMonths, app.Frequency, app.MaturityDate)
	if err != nil {
		return loan.Terms{}, nil, err
	}

	terms := loan.Terms{
		Principal:           app.Principal,
		AnnualInterestRate:  app.AnnualInterestRate,
		InterestMethod:      app.InterestMethod,
		Frequency:           app.Frequency,
		DisbursementDate:    app.DisbursementDate,
		MaturityDate:        app.MaturityDate,
		GracePeriodMonths:   app.GracePeriodMonths,
		TermInMonths:        termMonths,
		TotalInterest:       result.TotalInterest,
		TotalToRepay:        money.Round(app.Principal + result.TotalInterest),
		PeriodicInstallment: result.PeriodicInstallment,
		InstallmentCount:    count,
		FirstPaymentDate:    firstPayment,
	}

	entries, err := schedule.Generate(terms)
	if err != nil {
		return loan.Terms{}, nil, err
	}

	p.logger.Debug(fmt.Sprintf("prepared %s loan of %.2f over %d installments", terms.InterestMethod, terms.Principal, count),
		zap.String("op", "origination.Prepare"),
	)

	return terms, entries, nil
}
