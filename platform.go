package hotspot

import "context"

// AsyncOp is a handle to an in-flight native asynchronous operation.
// Completion is observed through the Completed channel; Err is only
// meaningful once that channel is closed.
type AsyncOp interface {
	// Completed returns a channel closed when the native operation finishes
	Completed() <-chan struct{}
	// Err returns the operation's error, valid after Completed is closed
	Err() error
}

// TetheringOp is an AsyncOp carrying the platform result code of a
// tethering start or stop request.
type TetheringOp interface {
	AsyncOp
	// Status returns the platform result code, valid after completion
	Status() OperationStatus
}

// ConnectionProfile is an opaque reference to the platform's current
// internet route. It may be absent at boot; presence is a precondition
// for creating a TetheringSession.
type ConnectionProfile interface {
	// Name returns the profile's display name
	Name() string
}

// Radio is an opaque handle to one physical transceiver. Handles are
// scoped to a single toggle run and go stale after operations with radio
// side effects; re-resolve through RadioController.Refresh rather than
// caching across steps.
type Radio interface {
	// Name returns the radio's display name
	Name() string
	// Kind returns the transceiver type
	Kind() RadioKind
	// State returns the current power state
	State() RadioState
	// SetState requests a power state change and returns the in-flight
	// native operation
	SetState(target RadioState) AsyncOp
}

// TetheringSession is an opaque handle to the platform tethering manager,
// bound to one connection profile. Sessions are created fresh each toggle
// run and never persisted.
type TetheringSession interface {
	// OperationalState returns whether the hotspot is currently running
	OperationalState() TetheringState
	// Start requests hotspot startup and returns the in-flight operation
	Start() TetheringOp
	// Stop requests hotspot shutdown and returns the in-flight operation
	Stop() TetheringOp
}

// Platform is the set of native capabilities the toggle sequence consumes.
// Implementations wrap the host's tethering and radio primitives; the
// core never reaches past this interface.
type Platform interface {
	// InternetConnectionProfile returns the current internet profile and
	// whether one is available
	InternetConnectionProfile() (ConnectionProfile, bool)

	// CreateTetheringSession binds a tethering session to the profile
	CreateTetheringSession(profile ConnectionProfile) (TetheringSession, error)

	// RequestRadioAccess asks the platform for radio control permission
	RequestRadioAccess() (AccessStatus, error)

	// Radios enumerates the host's radios
	Radios() ([]Radio, error)
}

// AdapterRestarter is an optional Platform capability: a full restart of
// the wireless adapter itself, used by the radio-restart cycle when
// Config.RestartAdapter is set. Platforms that cannot restart adapters
// simply do not implement it.
type AdapterRestarter interface {
	// RestartAdapter disables and re-enables the adapter
	RestartAdapter(ctx context.Context, adapter WifiAdapter) error
}
