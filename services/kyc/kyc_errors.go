package kyc

import "fmt"

var (
	ErrSessionRequired = fmt.Errorf("a verification session is required")
	ErrAlreadyVerified = fmt.Errorf("subject is already verified")
	ErrUnderReview     = fmt.Errorf("verification is under review and cannot be re-run")
	ErrNothingToRetry  = fmt.Errorf("no prior submission to retry for current stage")
)

// ValidationError means a stage guard failed before any external call
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", e.Field, e.Reason)
}

func NewValidationError(field string, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// ProviderError means the external verification call itself failed
type ProviderError struct {
	Stage    Stage
	ErrorObj error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider call failed at %v stage: %v", e.Stage, e.ErrorObj)
}

func (e *ProviderError) Unwrap() error {
	return e.ErrorObj
}

func NewProviderError(stage Stage, err error) *ProviderError {
	return &ProviderError{
		Stage:    stage,
		ErrorObj: err,
	}
}

// VerificationRejected means the call succeeded but the data did not
// verify. Distinct from ProviderError.
type VerificationRejected struct {
	Stage       Stage
	MatchStatus string
}

func (e *VerificationRejected) Error() string {
	return fmt.Sprintf("verification not successful at %v stage (%v), try again with correct details", e.Stage, e.MatchStatus)
}

func NewVerificationRejected(stage Stage, matchStatus string) *VerificationRejected {
	return &VerificationRejected{
		Stage:       stage,
		MatchStatus: matchStatus,
	}
}

// PersistenceError means verification succeeded but the progress write
// failed. Non-fatal: the in-memory stage still advances, but a resumed
// session is not guaranteed consistent.
type PersistenceError struct {
	ErrorObj error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("verification progress could not be saved: %v", e.ErrorObj)
}

func (e *PersistenceError) Unwrap() error {
	return e.ErrorObj
}

func NewPersistenceError(err error) *PersistenceError {
	return &PersistenceError{
		ErrorObj: err,
	}
}
