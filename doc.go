// Package hotspot toggles a machine's mobile WiFi hotspot through the
// host platform's tethering and radio primitives, working around two
// platform quirks: the tethering subsystem sometimes will not start
// cleanly unless the WiFi radio is cycled first, and the internet
// connection profile the tethering manager depends on may not exist
// yet at boot.
//
// The core functionality centers around the Orchestrator type, which
// drives the whole toggle sequence behind a single entry point:
//
//	orch := hotspot.New(platform,
//	    hotspot.WithLogger(logger),
//	    hotspot.WithNotifier(notifier),
//	)
//
//	ok := orch.ToggleHotspot(ctx, hotspot.WifiAdapter{Name: "wlan0"})
//
// A toggle run checks the current tethering state and either stops a
// running hotspot, or waits for an internet profile with a bounded
// retry budget, cycles the radio, and starts it. Every failure is
// logged and folded into the boolean result; nothing escapes the
// ToggleHotspot boundary as an error or panic.
//
// # Platform Capabilities
//
// The package never talks to the host directly. Everything it needs is
// expressed as the Platform interface plus the opaque handle types
// ConnectionProfile, Radio, and TetheringSession. Handles are scoped to
// one toggle run: radios are re-enumerated after operations with radio
// side effects, and tethering sessions are bound fresh from the current
// profile each run, never persisted.
//
// SimulatedPlatform is a complete in-memory Platform that models the
// radio-forcing side effects of tethering start/stop. It backs the
// package's own tests and hotspotctl's dry-run mode, and is useful for
// exercising toggle policies on hosts without native bindings.
//
// # Radio Cycling Policies
//
// Two incompatible workarounds exist for the stale-radio quirk and
// exactly one runs per toggle, selected through Config:
//
//   - CycleTetherDance (default): if the radio is on, start and stop
//     tethering itself to force a full power transition, then verify
//     the radio reads off before the real start.
//   - CycleRadioRestart: unconditionally switch the radio off and back
//     on with fixed delays, optionally followed by an adapter restart.
//
// # Design Philosophy
//
// This package prioritizes:
//
//   - One toggle run in flight per process; handles never reused
//   - Bounded waits everywhere a loop exists (no unbounded retries)
//   - Single-attempt, fail-fast radio cycling (repeating the cycle
//     risks compounding inconsistent radio state)
//   - An injected clock so every delay runs on simulated time in tests
//   - Context-aware blocking operations
package hotspot
