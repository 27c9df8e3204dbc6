package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrAuthentication     = fmt.Errorf("authentication failed")
	ErrPermissionDenied   = fmt.Errorf("permission denied")
	ErrNotFound           = fmt.Errorf("not found")
	ErrRateLimited        = fmt.Errorf("rate limited")
	ErrStateConflict      = fmt.Errorf("state conflict")
	ErrUnknownEvent       = fmt.Errorf("unknown event")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrStoreUnavailable   = fmt.Errorf("store unavailable")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrDefaultRole        = fmt.Errorf("default role cannot be deleted or renamed")
	ErrSinkFull           = fmt.Errorf("sink buffer full")
)

// EventCode maps a failure to the code carried by the outbound error event.
// Unrecognized errors collapse to "internal" so no internal detail leaks.
func EventCode(err error) string {
	switch {
	case stderrors.Is(err, ErrAuthentication), stderrors.Is(err, ErrInvalidCredentials):
		return "authentication_error"
	case stderrors.Is(err, ErrPermissionDenied), stderrors.Is(err, ErrDefaultRole):
		return "permission_denied"
	case stderrors.Is(err, ErrNotFound):
		return "not_found"
	case stderrors.Is(err, ErrRateLimited):
		return "rate_limited"
	case stderrors.Is(err, ErrStateConflict):
		return "state_conflict"
	case stderrors.Is(err, ErrUnknownEvent):
		return "unknown_event"
	case stderrors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	default:
		return "internal"
	}
}
