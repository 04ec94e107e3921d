package hotspot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testAdapter = WifiAdapter{Name: "wlan0", Description: "Test 802.11ac"}

func newTestOrchestrator(platform Platform, cfg Config) (*Orchestrator, *fakeClock, *recordingNotifier) {
	clk := newFakeClock()
	notifier := &recordingNotifier{}
	orch := New(platform,
		WithConfig(cfg),
		WithClock(clk),
		WithLogger(NopLogger()),
		WithNotifier(notifier),
	)
	return orch, clk, notifier
}

func TestToggleDisableWhenRunning(t *testing.T) {
	// Disabling is idempotent and terminal: one stop, no radio
	// workaround, regardless of radio state.
	for _, radioState := range []RadioState{RadioOn, RadioOff} {
		t.Run("radio "+radioState.String(), func(t *testing.T) {
			platform := NewSimulatedPlatform()
			platform.SetTethering(TetheringOn)
			platform.WifiRadio().ForceState(radioState)

			orch, _, notifier := newTestOrchestrator(platform, DefaultConfig())

			require.True(t, orch.ToggleHotspot(context.Background(), testAdapter))
			require.Equal(t, TetheringOff, platform.Tethering())

			calls := platform.Calls()
			require.Equal(t, 1, countCalls(calls, "tether-stop"))
			require.Zero(t, countCalls(calls, "tether-start"))
			require.Zero(t, countCalls(calls, "radio-access"))
			require.Zero(t, countCalls(calls, "radios"))

			require.Equal(t, []string{"Mobile hotspot: disabled on wlan0"}, notifier.Messages())
		})
	}
}

func TestToggleEnableRadioAlreadyOff(t *testing.T) {
	// Profile available immediately, radio off, tethering off: the
	// cycle is skipped and start is called exactly once.
	platform := NewSimulatedPlatform()

	orch, clk, notifier := newTestOrchestrator(platform, DefaultConfig())

	require.True(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())

	calls := platform.Calls()
	require.Equal(t, 1, countCalls(calls, "tether-start"))
	require.Zero(t, countCalls(calls, "tether-stop"))
	for _, call := range calls {
		require.NotContains(t, call, "radio-set")
	}

	// No profile retries, no cycle: nothing slept
	require.Zero(t, clk.SleepCount())
	require.Equal(t, []string{"Mobile hotspot: enabled on wlan0"}, notifier.Messages())
}

func TestToggleRoundTrip(t *testing.T) {
	// Symmetry over two invocations: off -> on -> off.
	platform := NewSimulatedPlatform()
	orch, _, _ := newTestOrchestrator(platform, DefaultConfig())
	ctx := context.Background()

	require.True(t, orch.ToggleHotspot(ctx, testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())

	require.True(t, orch.ToggleHotspot(ctx, testAdapter))
	require.Equal(t, TetheringOff, platform.Tethering())
}

func TestToggleNoProfileShortCircuit(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.ClearProfile()

	cfg := DefaultConfig()
	orch, clk, notifier := newTestOrchestrator(platform, cfg)

	require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))

	calls := platform.Calls()
	// One probe during state checking plus the bounded wait's polls
	require.Equal(t, 1+cfg.ProfileWait.MaxAttempts, countCalls(calls, "profile"))

	// The radio and tethering manager are never touched
	for _, call := range calls {
		require.Equal(t, "profile", call)
	}

	// 11 pauses between 12 polls, within the 60s ceiling
	require.Equal(t, cfg.ProfileWait.MaxAttempts-1, clk.SleepCount())
	require.Equal(t, 55*time.Second, clk.Slept())
	require.Less(t, clk.Slept(), 60*time.Second)

	require.Empty(t, notifier.Messages())
}

func TestToggleProfileAppearsLate(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.ProfileAfterPolls(3)

	orch, clk, _ := newTestOrchestrator(platform, DefaultConfig())

	require.True(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())

	// Radio starts off so the cycle sleeps nothing; the only pauses are
	// the waiter's retries.
	require.Equal(t, 10*time.Second, clk.Slept())
}

func TestToggleCycleWhenRadioOn(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.WifiRadio().ForceState(RadioOn)

	orch, clk, _ := newTestOrchestrator(platform, DefaultConfig())

	require.True(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())

	// The dance start/stop precedes the real start, with a re-enumeration
	// between the dance and the verification read.
	calls := platform.Calls()
	require.Equal(t, 2, countCalls(calls, "tether-start"))
	require.Equal(t, 1, countCalls(calls, "tether-stop"))

	firstStart := indexOf(t, calls, "tether-start", 0)
	stop := indexOf(t, calls, "tether-stop", 0)
	finalStart := indexOf(t, calls, "tether-start", 1)
	require.Less(t, firstStart, stop)
	require.Less(t, stop, finalStart)

	refresh := lastIndexOf(calls, "radios")
	require.Greater(t, refresh, stop)
	require.Less(t, refresh, finalStart)

	// Two settle delays of 2s each
	require.Equal(t, 4*time.Second, clk.Slept())
}

func TestToggleCycleVerificationFailure(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.WifiRadio().ForceState(RadioOn)
	platform.StickyRadio = true

	orch, _, notifier := newTestOrchestrator(platform, DefaultConfig())

	require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))

	// The workaround is single-attempt: after the failed verification
	// nothing may start the hotspot.
	calls := platform.Calls()
	require.Equal(t, 1, countCalls(calls, "tether-start"))
	require.Equal(t, "tether-stop", lastTetherCall(calls))
	require.Equal(t, TetheringOff, platform.Tethering())
	require.Empty(t, notifier.Messages())
}

func TestToggleStartFailure(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.FailStart(StatusNotReady)

	orch, _, notifier := newTestOrchestrator(platform, DefaultConfig())

	require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOff, platform.Tethering())
	require.Empty(t, notifier.Messages())
}

func TestToggleStopFailure(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.SetTethering(TetheringOn)
	platform.FailStop(StatusUnknownError)

	orch, _, notifier := newTestOrchestrator(platform, DefaultConfig())

	require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())
	require.Empty(t, notifier.Messages())
}

func TestToggleRadioAccessDenied(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.SetAccess(AccessDeniedBySystem)

	orch, _, _ := newTestOrchestrator(platform, DefaultConfig())

	require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOff, platform.Tethering())
}

func TestToggleRadioRestartStrategy(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.WifiRadio().ForceState(RadioOn)

	cfg := DefaultConfig()
	cfg.Strategy = CycleRadioRestart
	cfg.RestartAdapter = true

	orch, clk, _ := newTestOrchestrator(platform, cfg)

	require.True(t, orch.ToggleHotspot(context.Background(), testAdapter))
	require.Equal(t, TetheringOn, platform.Tethering())

	calls := platform.Calls()
	require.Equal(t, 1, countCalls(calls, "radio-set wlan0 off"))
	require.Equal(t, 1, countCalls(calls, "radio-set wlan0 on"))
	require.Equal(t, 1, countCalls(calls, "adapter-restart wlan0"))

	// No dance: exactly one tethering start, no stop
	require.Equal(t, 1, countCalls(calls, "tether-start"))
	require.Zero(t, countCalls(calls, "tether-stop"))

	// 2s off hold plus 6s settle
	require.Equal(t, 8*time.Second, clk.Slept())
}

func TestToggleRecoversPanicFromPlatform(t *testing.T) {
	// A platform handing back a nil session makes the state read panic;
	// nothing may escape the ToggleHotspot boundary.
	platform := &fakePlatform{
		profile:    simProfile{name: "Ethernet"},
		hasProfile: true,
		session:    nil,
	}

	orch, _, notifier := newTestOrchestrator(platform, DefaultConfig())

	require.NotPanics(t, func() {
		require.False(t, orch.ToggleHotspot(context.Background(), testAdapter))
	})
	require.Empty(t, notifier.Messages())
}

func TestToggleContextCancelled(t *testing.T) {
	platform := NewSimulatedPlatform()
	platform.ClearProfile()

	orch, _, _ := newTestOrchestrator(platform, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.False(t, orch.ToggleHotspot(ctx, testAdapter))
}

// indexOf returns the position of the nth occurrence of call
func indexOf(t *testing.T, calls []string, call string, nth int) int {
	t.Helper()
	seen := 0
	for i, c := range calls {
		if c == call {
			if seen == nth {
				return i
			}
			seen++
		}
	}
	t.Fatalf("occurrence %d of %q not found in %v", nth, call, calls)
	return -1
}

func lastIndexOf(calls []string, call string) int {
	last := -1
	for i, c := range calls {
		if c == call {
			last = i
		}
	}
	return last
}

func lastTetherCall(calls []string) string {
	last := ""
	for _, c := range calls {
		if c == "tether-start" || c == "tether-stop" {
			last = c
		}
	}
	return last
}
