package service

// NetworkError is the single error kind crossing the DeliveryAPI boundary.
// Connectivity failures, decode failures and rejected statuses all collapse
// into it; the workflow does not distinguish further, it only shows Message
// and lets the user re-trigger the same transition. Message may be empty for
// the status-authoritative endpoints, matching the remote contract.
type NetworkError struct {
	Message string
	Cause   error
}

// NewNetworkError classifies err as a transport-boundary failure.
func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{Message: message, Cause: cause}
}

func (e *NetworkError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}
