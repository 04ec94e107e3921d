package hotspot

import (
	"context"

	"github.com/google/uuid"
)

// toggleState identifies the current step of the toggle state machine.
// Transitions are logged; the states themselves never escape the
// orchestrator.
type toggleState int

const (
	stateChecking toggleState = iota
	stateStopping
	stateWaitingProfile
	stateCyclingRadio
	stateStarting
	stateDone
)

// String returns the string representation of a toggleState
func (s toggleState) String() string {
	switch s {
	case stateChecking:
		return "checking-state"
	case stateStopping:
		return "stopping-hotspot"
	case stateWaitingProfile:
		return "waiting-for-profile"
	case stateCyclingRadio:
		return "cycling-radio"
	case stateStarting:
		return "starting-hotspot"
	default:
		return "done"
	}
}

// Orchestrator drives the hotspot toggle sequence: decide the current
// tethering state, wait for prerequisites, perform the radio cycling
// workaround, and push the tethering manager through start or stop.
//
// A single Orchestrator supports at most one toggle run in flight;
// running two concurrently against the same adapter is undefined and
// must be prevented by the caller (single-instance execution).
type Orchestrator struct {
	cfg      Config
	platform Platform
	bridge   *Bridge
	clock    Clock
	log      Logger
	notify   Notifier

	radios   *RadioController
	profiles *ProfileWaiter
	tether   *TetheringController
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithConfig replaces the default Config
func WithConfig(cfg Config) Option {
	return func(o *Orchestrator) {
		o.cfg = cfg
	}
}

// WithLogger sets the injected logging collaborator
func WithLogger(log Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// WithNotifier sets the injected notification collaborator
func WithNotifier(n Notifier) Option {
	return func(o *Orchestrator) {
		o.notify = n
	}
}

// WithClock sets the clock used for settle delays and polling loops
func WithClock(clk Clock) Option {
	return func(o *Orchestrator) {
		o.clock = clk
	}
}

// WithBridge replaces the default async bridge
func WithBridge(b *Bridge) Option {
	return func(o *Orchestrator) {
		o.bridge = b
	}
}

// New creates an Orchestrator on top of platform and applies any
// provided options.
func New(platform Platform, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:      DefaultConfig(),
		platform: platform,
		clock:    wallClock{},
		log:      NopLogger(),
		notify:   NopNotifier(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.bridge == nil {
		o.bridge = NewBridge(WithBridgeClock(o.clock))
	}

	o.radios = NewRadioController(platform, o.bridge, o.log)
	o.profiles = NewProfileWaiter(platform, o.cfg.ProfileWait, o.clock, o.log)
	o.tether = NewTetheringController(platform, o.bridge, o.log)

	return o
}

// ToggleHotspot flips the hotspot for adapter: stops it when it is
// running, otherwise waits for an internet profile, cycles the radio,
// and starts it. The boolean result is the only thing that escapes:
// every failure from any step is logged and converted to false here,
// never re-raised past this boundary.
func (o *Orchestrator) ToggleHotspot(ctx context.Context, adapter WifiAdapter) (ok bool) {
	run := uuid.NewString()[:8]

	defer func() {
		if r := recover(); r != nil {
			o.log.Errorf("[%s] toggle panicked: %v", run, r)
			ok = false
		}
	}()

	enabled, err := o.toggle(ctx, run, adapter)
	if err != nil {
		o.log.Errorf("[%s] toggle failed: %v", run, err)
		return false
	}

	if enabled {
		o.notify.Notify("Mobile hotspot", "enabled on "+adapter.String())
	} else {
		o.notify.Notify("Mobile hotspot", "disabled on "+adapter.String())
	}
	return true
}

// toggle runs the state machine. It returns whether the run ended with
// tethering enabled, or the first error of the failing step.
func (o *Orchestrator) toggle(ctx context.Context, run string, adapter WifiAdapter) (bool, error) {
	st := stateChecking
	o.log.Infof("[%s] %s: adapter %q", run, st, adapter.String())

	// The session can only be bound once a profile exists. At boot the
	// profile may still be absent; in that case the hotspot cannot be
	// running either, so fall straight through to the enable path.
	var sess TetheringSession
	if profile, profileOK := o.platform.InternetConnectionProfile(); profileOK {
		s, err := o.tether.FromProfile(profile)
		if err != nil {
			return false, err
		}
		sess = s

		if o.tether.State(sess) == TetheringOn {
			st = stateStopping
			o.log.Infof("[%s] %s", run, st)

			// Terminal: no radio workaround on the disable path.
			if err := o.tether.Stop(ctx, sess); err != nil {
				return false, err
			}
			o.log.Infof("[%s] %s: hotspot disabled", run, stateDone)
			return false, nil
		}
	}

	st = stateWaitingProfile
	o.log.Infof("[%s] %s", run, st)

	profile, err := o.profiles.Wait(ctx)
	if err != nil {
		// Abort before touching the radio.
		return false, err
	}

	// One session per run: only bind here if checking found no profile.
	if sess == nil {
		sess, err = o.tether.FromProfile(profile)
		if err != nil {
			return false, err
		}
	}

	st = stateCyclingRadio
	o.log.Infof("[%s] %s: strategy %s", run, st, o.cfg.Strategy)

	switch o.cfg.Strategy {
	case CycleRadioRestart:
		err = o.cycleRadioRestart(ctx, run, adapter)
	default:
		err = o.cycleTetherDance(ctx, run, sess)
	}
	if err != nil {
		return false, err
	}

	st = stateStarting
	o.log.Infof("[%s] %s", run, st)

	if err := o.tether.Start(ctx, sess); err != nil {
		return false, err
	}

	o.log.Infof("[%s] %s: hotspot enabled", run, stateDone)
	return true, nil
}

// cycleTetherDance forces the radio into a clean off state before the
// real start. Some platforms will not start tethering reliably while
// the radio is already on in a stale state; starting and stopping
// tethering itself forces the radio through a full power transition and
// leaves it enabled-but-off. The cycle runs once and is verified, never
// retried: repeating it risks compounding inconsistent radio state.
func (o *Orchestrator) cycleTetherDance(ctx context.Context, run string, sess TetheringSession) error {
	radio, err := o.radios.FindWifiRadio(ctx)
	if err != nil {
		return err
	}

	if state := radio.State(); state != RadioOn {
		o.log.Infof("[%s] radio %q is %s, skipping cycle", run, radio.Name(), state)
		return nil
	}

	o.log.Infof("[%s] radio %q is on, forcing off via tethering cycle", run, radio.Name())

	if err := o.tether.Start(ctx, sess); err != nil {
		return err
	}
	if err := o.clock.Sleep(ctx, o.cfg.SettleDelay); err != nil {
		return err
	}
	if err := o.tether.Stop(ctx, sess); err != nil {
		return err
	}
	if err := o.clock.Sleep(ctx, o.cfg.SettleDelay); err != nil {
		return err
	}

	// The dance invalidates the handle; verify against a fresh one.
	radio, err = o.radios.Refresh(ctx, radio)
	if err != nil {
		return err
	}
	if state := radio.State(); state != RadioOff {
		return &OpError{Op: OpRadioCycle, Err: ErrCycleVerification}
	}

	o.log.Debugf("[%s] radio cycle verified: radio off", run)
	return nil
}

// cycleRadioRestart switches the radio off and back on with fixed
// delays regardless of its prior state. A failed set-state is logged
// and tolerated; the subsequent tethering start decides whether the
// radio ended up usable.
func (o *Orchestrator) cycleRadioRestart(ctx context.Context, run string, adapter WifiAdapter) error {
	radio, err := o.radios.FindWifiRadio(ctx)
	if err != nil {
		return err
	}

	if !o.radios.SetState(ctx, radio, RadioOff) {
		o.log.Warnf("[%s] radio off request failed, continuing", run)
	}
	if err := o.clock.Sleep(ctx, o.cfg.RadioOffDelay); err != nil {
		return err
	}

	radio, err = o.radios.Refresh(ctx, radio)
	if err != nil {
		return err
	}
	if !o.radios.SetState(ctx, radio, RadioOn) {
		o.log.Warnf("[%s] radio on request failed, continuing", run)
	}
	if err := o.clock.Sleep(ctx, o.cfg.RadioOnSettle); err != nil {
		return err
	}

	if o.cfg.RestartAdapter {
		restarter, hasRestart := o.platform.(AdapterRestarter)
		if !hasRestart {
			o.log.Warnf("[%s] adapter restart configured but platform cannot restart adapters", run)
			return nil
		}
		o.log.Infof("[%s] restarting adapter %q", run, adapter.String())
		if err := restarter.RestartAdapter(ctx, adapter); err != nil {
			return &OpError{Op: OpRadioCycle, Adapter: adapter.String(), Err: err}
		}
	}

	return nil
}
