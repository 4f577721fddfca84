package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrTokenNotFound      = errors.New("invalid or expired token")
	ErrSuspiciousInput    = errors.New("invalid input detected")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrGenerationFailed   = errors.New("proposal generation failed")
	ErrWebhookSignature   = errors.New("webhook signature verification failed")
)

// ValidationError carries a user-correctable message about one input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// QuotaError is an authorization denial from the quota gate. Reason is the
// gate's verdict, surfaced to the caller verbatim.
type QuotaError struct {
	Reason string
}

func (e *QuotaError) Error() string {
	return e.Reason
}
