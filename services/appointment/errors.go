package appointment

import "fmt"

// ValidationError signals a missing or malformed request field. It never
// follows a state change.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// NotFoundError signals an absent appointment, owner, pet, or guest.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Resource) }

// ConflictError signals a duplicate, e.g. a guest email that already has an
// account.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// OTPError signals an absent, mismatched, or expired one-time code. The
// staged entry is never consumed on failure.
type OTPError struct {
	Message string
}

func (e OTPError) Error() string { return e.Message }
