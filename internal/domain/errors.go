package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrUnsupportedAuth    = errors.New("platform requires OAuth authentication")
	ErrConnectionFailure  = errors.New("failed to connect to platform")
	ErrSyncFailure        = errors.New("failed to sync platform")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PlatformError attaches the failing operation and platform to one of the
// sentinel errors above.
type PlatformError struct {
	Op       string
	Platform PlatformID
	Err      error
}

func NewPlatformError(op string, platform PlatformID, err error) *PlatformError {
	return &PlatformError{Op: op, Platform: platform, Err: err}
}

func (e *PlatformError) Error() string {
	if e.Platform == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Platform, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
