// Package batch runs the portfolio-wide accrual recomputation. Loans are
// processed independently, so the work fans out across a small worker pool
// and folds back into a single summary; one malformed loan never halts the
// rest of the portfolio.
package batch

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kopaflow/loan-engine/pkg/balance"
	"github.com/kopaflow/loan-engine/pkg/classify"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/money"
	"go.uber.org/zap"
)

// LoanSnapshot is one loan's persisted state as supplied by the caller: the
// static terms, the current status, the authoritative payment history, and
// the repayment schedule.
type LoanSnapshot struct {
	ID            uuid.UUID
	Terms         loan.Terms
	CurrentStatus loan.Status
	Payments      []loan.PaymentRecord
	Entries       []loan.ScheduleEntry
}

// LoanError records a per-loan failure captured during the batch.
type LoanError struct {
	LoanID  uuid.UUID
	Message string
}

// LoanResult is the per-loan outcome of one batch run, for the caller to
// persist atomically per loan.
type LoanResult struct {
	LoanID        uuid.UUID
	Skipped       bool
	SkipReason    string
	State         loan.FinancialState
	StatusChanged bool
	Err           error
}

// Summary aggregates one batch run.
type Summary struct {
	LoansProcessed        int
	TotalInterestAccrued  float64
	LoansWithStatusChange int
	LoansSkipped          int
	Errors                []LoanError
	Results               []LoanResult
}

// Engine runs accrual batches.
type Engine struct {
	logger  *zap.Logger
	workers int
}

// NewEngine creates a batch engine with the given worker count. Counts under
// one fall back to sequential processing.
func NewEngine(logger *zap.Logger, workers int) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{logger: logger, workers: workers}
}

// Run recomputes every loan's financial state as of the given date and
// reduces the per-loan results into a summary. Each recomputation derives
// solely from the snapshot, so re-running the batch is idempotent and the
// result does not depend on processing order.
func (e *Engine) Run(loans []LoanSnapshot, asOf time.Time) Summary {
	results := make([]LoanResult, len(loans))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.processLoan(loans[i], asOf)
			}
		}()
	}
	for i := range loans {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := Summary{Results: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Errors = append(summary.Errors, LoanError{LoanID: r.LoanID, Message: r.Err.Error()})
			continue
		}
		if r.Skipped {
			summary.LoansSkipped++
			continue
		}
		summary.LoansProcessed++
		summary.TotalInterestAccrued = money.Round(summary.TotalInterestAccrued + r.State.AccruedInterestToDate)
		if r.StatusChanged {
			summary.LoansWithStatusChange++
		}
	}

	e.logger.Info("accrual batch complete",
		zap.String("op", "batch.Run"),
		zap.Int("processed", summary.LoansProcessed),
		zap.Int("skipped", summary.LoansSkipped),
		zap.Int("statusChanges", summary.LoansWithStatusChange),
		zap.Int("errors", len(summary.Errors)),
	)

	return summary
}

func (e *Engine) processLoan(snapshot LoanSnapshot, asOf time.Time) LoanResult {
	result := LoanResult{LoanID: snapshot.ID}

	outcome := balance.Recompute(snapshot.Terms, snapshot.Payments, snapshot.Entries, asOf)
	if outcome.Skipped {
		result.Skipped = true
		result.SkipReason = outcome.Reason
		e.logger.Debug(fmt.Sprintf("skipping loan %s: %s", snapshot.ID, outcome.Reason),
			zap.String("op", "batch.processLoan"),
		)
		return result
	}
	result.State = outcome.State

	if snapshot.CurrentStatus != "" && snapshot.CurrentStatus != outcome.State.Status {
		if err := classify.ValidateTransition(snapshot.CurrentStatus, outcome.State.Status); err != nil {
			result.Err = err
			return result
		}
		result.StatusChanged = true
		e.logger.Debug(fmt.Sprintf("loan %s status %s -> %s", snapshot.ID, snapshot.CurrentStatus, outcome.State.Status),
			zap.String("op", "batch.processLoan"),
		)
	}

	return result
}
