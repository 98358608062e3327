package port

import (
	"errors"
	"fmt"
)

// Context-precondition errors. Both block only the attempted operation and
// are never retried automatically.
var (
	// ErrNoOrganizationSelected means no active organization could be
	// resolved; wizard operations fail with it before any network call.
	ErrNoOrganizationSelected = errors.New("no organization selected")

	// ErrNoCampaignContext means a step past the first was reached without
	// a cached campaign id.
	ErrNoCampaignContext = errors.New("no campaign in progress")

	// ErrSubmitInFlight guards against a second concurrent submit of the
	// same wizard step.
	ErrSubmitInFlight = errors.New("step submit already in progress")
)

// ValidationError is a local, field-scoped rejection. It never reaches the
// network: blank or out-of-range fields are caught before any request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError is a failed remote API call, carrying the single
// human-readable message extracted from the response body. A zero
// StatusCode means the request never produced a response.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
