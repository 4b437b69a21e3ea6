package model

import "errors"

// Domain errors. The gRPC handler translates these into the structured
// Status.error codes; anything else becomes a generic transport error.
var (
	ErrMissingTenantName = errors.New("missing tenant name")
	ErrMissingUserEmail  = errors.New("missing user email")
	ErrMissingUserName   = errors.New("missing user name")
	ErrInvalidParent     = errors.New("invalid parent")
	ErrDifferentParent   = errors.New("parent does not match the stored parent")
	ErrNotFound          = errors.New("not found")
	ErrNoChanges         = errors.New("no changes")
	ErrConstraint        = errors.New("constraint failed")
	ErrUpdateFailed      = errors.New("optimistic update retries exhausted")
	ErrDatabase          = errors.New("database error")
)
