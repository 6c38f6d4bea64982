package loan

import "fmt"

// Status is the lifecycle and classification state of a loan.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusApproved    Status = "APPROVED"
	StatusDisbursed   Status = "DISBURSED"
	StatusPerforming  Status = "PERFORMING"
	StatusWatch       Status = "WATCH"
	StatusSubstandard Status = "SUBSTANDARD"
	StatusDoubtful    Status = "DOUBTFUL"
	StatusLoss        Status = "LOSS"
	StatusWrittenOff  Status = "WRITTEN_OFF"
	StatusClosed      Status = "CLOSED"
	StatusRejected    Status = "REJECTED"
	StatusCompleted   Status = "COMPLETED"
)

var statuses = map[Status]bool{
	StatusPending:     true,
	StatusApproved:    true,
	StatusDisbursed:   true,
	StatusPerforming:  true,
	StatusWatch:       true,
	StatusSubstandard: true,
	StatusDoubtful:    true,
	StatusLoss:        true,
	StatusWrittenOff:  true,
	StatusClosed:      true,
	StatusRejected:    true,
	StatusCompleted:   true,
}

// ParseStatus converts a stored status string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !statuses[status] {
		return "", fmt.Errorf("unknown loan status %q", s)
	}
	return status, nil
}

// ParseInterestMethod converts a stored method string into an InterestMethod.
func ParseInterestMethod(s string) (InterestMethod, error) {
	switch InterestMethod(s) {
	case MethodFlat:
		return MethodFlat, nil
	case MethodReducingBalance:
		return MethodReducingBalance, nil
	}
	return "", fmt.Errorf("unknown interest method %q", s)
}
