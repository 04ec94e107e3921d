package hotspot

import "time"

// Default timing values governing the toggle sequence
const (
	// DefaultProfileWaitAttempts is the default number of polls for an
	// internet connection profile before giving up
	DefaultProfileWaitAttempts = 12

	// DefaultProfileWaitInterval is the default pause between profile polls
	DefaultProfileWaitInterval = 5 * time.Second

	// DefaultSettleDelay is the default pause after a tethering start/stop
	// before the next radio state read
	DefaultSettleDelay = 2 * time.Second

	// DefaultRadioOffDelay is the pause the radio-restart cycle holds the
	// radio off before switching it back on
	DefaultRadioOffDelay = 2 * time.Second

	// DefaultRadioOnSettle is the pause the radio-restart cycle waits after
	// switching the radio back on
	DefaultRadioOnSettle = 6 * time.Second

	// DefaultBridgePollInterval is the default pause between completion
	// checks when the bridge runs in polling mode
	DefaultBridgePollInterval = 100 * time.Millisecond

	// DefaultBridgeMaxPolls is the default number of completion checks the
	// bridge makes in polling mode before reporting a timeout
	DefaultBridgeMaxPolls = 600
)

// Operation represents a native operation driven by the toggle sequence
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpAwait represents a bridge wait on a native async operation
	OpAwait
	// OpProfileWait represents the bounded wait for an internet profile
	OpProfileWait
	// OpRadioAccess represents the radio access request
	OpRadioAccess
	// OpRadioFind represents radio enumeration and WiFi resolution
	OpRadioFind
	// OpRadioSet represents a radio power state change
	OpRadioSet
	// OpRadioRefresh represents re-resolving a radio handle
	OpRadioRefresh
	// OpRadioCycle represents the radio cycling workaround
	OpRadioCycle
	// OpTetherCreate represents tethering session creation from a profile
	OpTetherCreate
	// OpTetherStart represents a tethering start request
	OpTetherStart
	// OpTetherStop represents a tethering stop request
	OpTetherStop
)

// Operation string constants
const (
	opUnknownStr      = "unknown"
	opAwaitStr        = "await"
	opProfileWaitStr  = "profile-wait"
	opRadioAccessStr  = "radio-access"
	opRadioFindStr    = "radio-find"
	opRadioSetStr     = "radio-set"
	opRadioRefreshStr = "radio-refresh"
	opRadioCycleStr   = "radio-cycle"
	opTetherCreateStr = "tether-create"
	opTetherStartStr  = "tether-start"
	opTetherStopStr   = "tether-stop"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpAwait:
		return opAwaitStr
	case OpProfileWait:
		return opProfileWaitStr
	case OpRadioAccess:
		return opRadioAccessStr
	case OpRadioFind:
		return opRadioFindStr
	case OpRadioSet:
		return opRadioSetStr
	case OpRadioRefresh:
		return opRadioRefreshStr
	case OpRadioCycle:
		return opRadioCycleStr
	case OpTetherCreate:
		return opTetherCreateStr
	case OpTetherStart:
		return opTetherStartStr
	case OpTetherStop:
		return opTetherStopStr
	default:
		return opUnknownStr
	}
}

// RadioState represents the observable power state of a radio
type RadioState int

const (
	// RadioUnknown means the platform could not report the radio state
	RadioUnknown RadioState = iota
	// RadioOn means the radio is powered on
	RadioOn
	// RadioOff means the radio is powered off but enabled
	RadioOff
)

// String returns the string representation of a RadioState
func (s RadioState) String() string {
	switch s {
	case RadioOn:
		return "on"
	case RadioOff:
		return "off"
	default:
		return "unknown"
	}
}

// RadioKind represents the transceiver type of an enumerated radio
type RadioKind int

const (
	// RadioKindOther represents an unclassified transceiver
	RadioKindOther RadioKind = iota
	// RadioKindWiFi represents a WiFi transceiver
	RadioKindWiFi
	// RadioKindMobileBroadband represents a cellular transceiver
	RadioKindMobileBroadband
	// RadioKindBluetooth represents a Bluetooth transceiver
	RadioKindBluetooth
)

// String returns the string representation of a RadioKind
func (k RadioKind) String() string {
	switch k {
	case RadioKindWiFi:
		return "wifi"
	case RadioKindMobileBroadband:
		return "mobile-broadband"
	case RadioKindBluetooth:
		return "bluetooth"
	default:
		return "other"
	}
}

// AccessStatus represents the result of a radio access request
type AccessStatus int

const (
	// AccessUnspecified means the platform gave no definite answer
	AccessUnspecified AccessStatus = iota
	// AccessAllowed means radio control is permitted
	AccessAllowed
	// AccessDeniedByUser means the user blocked radio control
	AccessDeniedByUser
	// AccessDeniedBySystem means policy blocked radio control
	AccessDeniedBySystem
)

// String returns the string representation of an AccessStatus
func (a AccessStatus) String() string {
	switch a {
	case AccessAllowed:
		return "allowed"
	case AccessDeniedByUser:
		return "denied-by-user"
	case AccessDeniedBySystem:
		return "denied-by-system"
	default:
		return "unspecified"
	}
}

// TetheringState represents the operational state of a tethering session
type TetheringState int

const (
	// TetheringOff means the hotspot is not running
	TetheringOff TetheringState = iota
	// TetheringOn means the hotspot is running
	TetheringOn
)

// String returns the string representation of a TetheringState
func (s TetheringState) String() string {
	if s == TetheringOn {
		return "on"
	}
	return "off"
}

// OperationStatus is the platform-defined result code of a tethering
// start or stop request
type OperationStatus int

const (
	// StatusSuccess means the request completed
	StatusSuccess OperationStatus = iota
	// StatusUnknownError means the platform reported an unclassified failure
	StatusUnknownError
	// StatusRadioUnavailable means the WiFi radio was not usable
	StatusRadioUnavailable
	// StatusInProgress means another tethering request was still running
	StatusInProgress
	// StatusNotReady means the tethering subsystem was not ready
	StatusNotReady
)

// String returns the string representation of an OperationStatus
func (s OperationStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRadioUnavailable:
		return "radio-unavailable"
	case StatusInProgress:
		return "in-progress"
	case StatusNotReady:
		return "not-ready"
	default:
		return "unknown-error"
	}
}

// WifiAdapter identifies the wireless adapter a toggle run operates on.
// It is resolved by the caller (see internal/adapterstore) and treated as
// immutable for the duration of one run.
type WifiAdapter struct {
	// Name is the adapter's interface name
	Name string
	// Description is the adapter's hardware description
	Description string
}

// String returns the adapter name, or the description when no name is set
func (a WifiAdapter) String() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Description
}
