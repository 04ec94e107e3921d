package hotspot

import "context"

// TetheringController wraps the platform tethering manager: session
// creation from a connection profile, operational state reads, and
// awaited start/stop requests.
type TetheringController struct {
	platform Platform
	bridge   *Bridge
	log      Logger
}

// NewTetheringController creates a TetheringController on top of platform
func NewTetheringController(platform Platform, bridge *Bridge, log Logger) *TetheringController {
	return &TetheringController{
		platform: platform,
		bridge:   bridge,
		log:      log,
	}
}

// FromProfile binds a fresh tethering session to profile. Sessions are
// never reused across toggle runs.
func (tc *TetheringController) FromProfile(profile ConnectionProfile) (TetheringSession, error) {
	sess, err := tc.platform.CreateTetheringSession(profile)
	if err != nil {
		return nil, &OpError{Op: OpTetherCreate, Err: err}
	}
	tc.log.Debugf("tethering session bound to profile %q", profile.Name())
	return sess, nil
}

// State reads the session's current operational state
func (tc *TetheringController) State(sess TetheringSession) TetheringState {
	return sess.OperationalState()
}

// Start requests hotspot startup and awaits completion. A non-success
// platform status surfaces as a TetheringError.
func (tc *TetheringController) Start(ctx context.Context, sess TetheringSession) error {
	return tc.request(ctx, OpTetherStart, sess.Start())
}

// Stop requests hotspot shutdown and awaits completion. A non-success
// platform status surfaces as a TetheringError.
func (tc *TetheringController) Stop(ctx context.Context, sess TetheringSession) error {
	return tc.request(ctx, OpTetherStop, sess.Stop())
}

func (tc *TetheringController) request(ctx context.Context, op Operation, nativeOp TetheringOp) error {
	if err := tc.bridge.Await(ctx, nativeOp); err != nil {
		return &OpError{Op: op, Err: err}
	}
	if status := nativeOp.Status(); status != StatusSuccess {
		return &TetheringError{Op: op, Status: status}
	}
	tc.log.Debugf("%s completed", op)
	return nil
}
