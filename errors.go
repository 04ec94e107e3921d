package hotspot

import (
	"errors"
	"fmt"
)

// Common errors returned by toggle operations
var (
	// ErrNoProfile indicates the internet profile wait exhausted its budget
	ErrNoProfile = errors.New("hotspot: no internet connection profile")

	// ErrRadioNotFound indicates no WiFi radio was enumerated
	ErrRadioNotFound = errors.New("hotspot: no wifi radio found")

	// ErrRadioAccessDenied indicates the radio access request was refused
	ErrRadioAccessDenied = errors.New("hotspot: radio access denied")

	// ErrCycleVerification indicates the radio cycle left the radio on
	ErrCycleVerification = errors.New("hotspot: radio still on after cycle")

	// ErrBridgeUnavailable indicates the platform supplied no async operation
	ErrBridgeUnavailable = errors.New("hotspot: async bridge unavailable")

	// ErrAwaitTimeout indicates a polled await exhausted its completion checks
	ErrAwaitTimeout = errors.New("hotspot: native operation did not complete")
)

// OpError represents an error from a toggle operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Adapter is the adapter the toggle run was operating on
	Adapter string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	if e.Adapter == "" {
		return fmt.Sprintf("hotspot %s: %v", e.Op.String(), e.Err)
	}
	return fmt.Sprintf("hotspot %s %q: %v", e.Op.String(), e.Adapter, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// TetheringError represents a tethering start or stop request that
// completed with a non-success platform status code
type TetheringError struct {
	// Op is the tethering operation that failed
	Op Operation
	// Status is the platform-defined result code
	Status OperationStatus
}

// Error returns a formatted error message
func (e *TetheringError) Error() string {
	return fmt.Sprintf("hotspot %s: status %s", e.Op.String(), e.Status.String())
}
