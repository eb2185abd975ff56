package entity

// Failure reasons for one send attempt.
const (
	ReasonTokenInvalid       = "token-invalid"
	ReasonTokenNotRegistered = "token-not-registered"
	ReasonOtherTransient     = "other-transient"
)

// PermanentReason reports whether a failure reason makes the token
// eligible for clearing. Transient failures are left for the next tick.
func PermanentReason(reason string) bool {
	return reason == ReasonTokenInvalid || reason == ReasonTokenNotRegistered
}

// DispatchFailure describes one failed send attempt.
type DispatchFailure struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	Reason    string `json:"reason"`
	Error     string `json:"error"`
}

// DispatchReport aggregates the outcomes of one dispatch invocation.
type DispatchReport struct {
	Sent     int               `json:"sent"`
	Failed   int               `json:"failed"`
	Total    int               `json:"total"`
	Failures []DispatchFailure `json:"failures,omitempty"`
}

// SweepReport aggregates the outcome of one token sweep.
type SweepReport struct {
	Checked int `json:"checked"`
	Cleaned int `json:"cleaned"`
}
