package hotspot

import (
	"fmt"
	"time"
)

// CycleStrategy selects which radio cycling workaround the orchestrator
// performs before starting the hotspot. The two strategies are not
// equivalent in side effects and are never combined in one run.
type CycleStrategy int

const (
	// CycleTetherDance forces the radio off through a deliberate
	// tethering start/stop, and only when the radio is currently on.
	// Cycle success is verified before the real start. This is the
	// default policy.
	CycleTetherDance CycleStrategy = iota

	// CycleRadioRestart unconditionally switches the radio off and back
	// on with fixed delays, regardless of its prior state, optionally
	// followed by a full adapter restart.
	CycleRadioRestart
)

// CycleStrategy string constants
const (
	cycleTetherDanceStr  = "tether-dance"
	cycleRadioRestartStr = "radio-restart"
)

// String returns the string representation of a CycleStrategy
func (s CycleStrategy) String() string {
	if s == CycleRadioRestart {
		return cycleRadioRestartStr
	}
	return cycleTetherDanceStr
}

// ParseCycleStrategy converts a config/flag value into a CycleStrategy
func ParseCycleStrategy(v string) (CycleStrategy, error) {
	switch v {
	case cycleTetherDanceStr, "":
		return CycleTetherDance, nil
	case cycleRadioRestartStr:
		return CycleRadioRestart, nil
	default:
		return CycleTetherDance, fmt.Errorf("unknown cycle strategy %q", v)
	}
}

// RetryBudget bounds a polling loop: at most MaxAttempts polls with
// Interval pauses between them. It is a value object; one instance
// governs the internet profile wait.
type RetryBudget struct {
	// MaxAttempts is the maximum number of polls
	MaxAttempts int
	// Interval is the pause between polls
	Interval time.Duration
}

// Config carries the timing values and policy flags governing a toggle
// run. It is built once at process start and treated as immutable; the
// orchestrator never mutates it.
type Config struct {
	// ProfileWait bounds the internet profile polling loop
	ProfileWait RetryBudget

	// Strategy selects the radio cycling workaround
	Strategy CycleStrategy

	// SettleDelay is the pause after each tethering start/stop in the
	// tether-dance cycle before the next state read
	SettleDelay time.Duration

	// RadioOffDelay is how long the radio-restart cycle holds the radio
	// off before switching it back on
	RadioOffDelay time.Duration

	// RadioOnSettle is the pause after the radio-restart cycle switches
	// the radio back on
	RadioOnSettle time.Duration

	// RestartAdapter makes the radio-restart cycle finish with a full
	// adapter restart when the platform supports one
	RestartAdapter bool
}

// DefaultConfig returns the Config used when no options override it
func DefaultConfig() Config {
	return Config{
		ProfileWait: RetryBudget{
			MaxAttempts: DefaultProfileWaitAttempts,
			Interval:    DefaultProfileWaitInterval,
		},
		Strategy:      CycleTetherDance,
		SettleDelay:   DefaultSettleDelay,
		RadioOffDelay: DefaultRadioOffDelay,
		RadioOnSettle: DefaultRadioOnSettle,
	}
}
