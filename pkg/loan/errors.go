package loan

import "errors"

// Sentinel errors for the approval pipeline and the status state machine.
// Call sites wrap these with context via fmt.Errorf("...: %w", ...); callers
// match with errors.Is. Any of these aborts the enclosing approval operation.
var (
	// ErrBelowMinimumAmount indicates a principal under the configured floor.
	ErrBelowMinimumAmount = errors.New("principal below minimum loan amount")

	// ErrValueOverflow indicates a principal above the storable ceiling.
	ErrValueOverflow = errors.New("principal exceeds maximum storable value")

	// ErrProjectedOverflow indicates that a projected total or installment
	// would exceed the storable ceiling even though the principal does not.
	ErrProjectedOverflow = errors.New("projected repayment exceeds maximum storable value")

	// ErrRateOutOfRange indicates an annual rate outside [0, 100] percent.
	ErrRateOutOfRange = errors.New("annual interest rate out of range")

	// ErrTermOutOfRange indicates a term or installment count outside bounds.
	ErrTermOutOfRange = errors.New("loan term out of range")

	// ErrInvalidDateOrder indicates a maturity date at or before disbursement.
	ErrInvalidDateOrder = errors.New("maturity date not after disbursement date")

	// ErrFirstPaymentAfterMaturity indicates that grace period plus one period
	// pushes the first payment to or past maturity.
	ErrFirstPaymentAfterMaturity = errors.New("first payment date not before maturity date")

	// ErrDegenerateAmortization indicates an annuity denominator of zero.
	ErrDegenerateAmortization = errors.New("degenerate amortization denominator")

	// ErrInvalidStatusTransition indicates a status change outside the
	// permitted transition set.
	ErrInvalidStatusTransition = errors.New("invalid loan status transition")
)
