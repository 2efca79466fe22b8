package reconciler

import "fmt"

// TransientPollError wraps a failed status poll. It never ends a session;
// the next tick polls again.
type TransientPollError struct {
	ChargeID string
	Err      error
}

func (e *TransientPollError) Error() string {
	return fmt.Sprintf("polling charge %s: %v", e.ChargeID, e.Err)
}

func (e *TransientPollError) Unwrap() error {
	return e.Err
}
