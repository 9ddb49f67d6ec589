package service

import "errors"

// Shared failure taxonomy. Handlers match these with errors.Is and map them
// onto HTTP statuses; services add context with fmt.Errorf("...: %w", ...).
var (
	// ErrNotFound means the entity does not exist within the caller's tenant.
	ErrNotFound = errors.New("not_found")

	// ErrDuplicateIdentity means the email or organization domain is taken.
	ErrDuplicateIdentity = errors.New("duplicate_identity")

	// ErrCapacityExceeded means the plan's user or observation ceiling is hit.
	// This is a soft failure: the caller's request was well-formed.
	ErrCapacityExceeded = errors.New("capacity_exceeded")

	// ErrInviteInvalid means the invite token is unknown, used, or expired.
	ErrInviteInvalid = errors.New("invite_invalid")

	// ErrForbidden means the actor lacks the capability or belongs to a
	// different tenant than the target entity.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials means the email/password pair did not check out.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrConfiguration means required reference data (e.g. the Free plan) is
	// missing from the deployment.
	ErrConfiguration = errors.New("configuration_error")

	// ErrConflict means a concurrent write won the race for a unique resource.
	ErrConflict = errors.New("conflict")

	// ErrValidation means the request payload failed a business validation.
	ErrValidation = errors.New("validation_failed")
)
