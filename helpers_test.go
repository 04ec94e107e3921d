package hotspot

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// fakeClock runs the toggle sequence on simulated time: sleeps are
// recorded and return immediately.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	return nil
}

// Slept returns the total simulated time spent sleeping
func (c *fakeClock) Slept() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total time.Duration
	for _, d := range c.sleeps {
		total += d
	}
	return total
}

func (c *fakeClock) SleepCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sleeps)
}

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) logf(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// recordingNotifier captures notifications for assertions
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, title+": "+message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

// fakePlatform is a minimal scriptable Platform for edge cases the
// simulated platform cannot express (enumeration failures, no WiFi
// radio, hung operations).
type fakePlatform struct {
	profile    ConnectionProfile
	hasProfile bool

	session    TetheringSession
	sessionErr error

	access    AccessStatus
	accessErr error

	radios    []Radio
	radiosErr error
}

func (p *fakePlatform) InternetConnectionProfile() (ConnectionProfile, bool) {
	return p.profile, p.hasProfile
}

func (p *fakePlatform) CreateTetheringSession(ConnectionProfile) (TetheringSession, error) {
	return p.session, p.sessionErr
}

func (p *fakePlatform) RequestRadioAccess() (AccessStatus, error) {
	return p.access, p.accessErr
}

func (p *fakePlatform) Radios() ([]Radio, error) {
	return p.radios, p.radiosErr
}

// fakeRadio is a Radio whose SetState returns a canned operation
type fakeRadio struct {
	name  string
	kind  RadioKind
	state RadioState
	setOp AsyncOp
}

func (r *fakeRadio) Name() string                { return r.name }
func (r *fakeRadio) Kind() RadioKind             { return r.kind }
func (r *fakeRadio) State() RadioState           { return r.state }
func (r *fakeRadio) SetState(RadioState) AsyncOp { return r.setOp }

// manualOp is an AsyncOp completed by the test
type manualOp struct {
	done chan struct{}
	err  error
}

func newManualOp() *manualOp {
	return &manualOp{done: make(chan struct{})}
}

func (op *manualOp) complete(err error) {
	op.err = err
	close(op.done)
}

func (op *manualOp) Completed() <-chan struct{} { return op.done }
func (op *manualOp) Err() error                 { return op.err }

// unbridgedOp is an AsyncOp the platform could not actually bridge
type unbridgedOp struct{}

func (unbridgedOp) Completed() <-chan struct{} { return nil }
func (unbridgedOp) Err() error                 { return nil }

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}
