package hotspot

import (
	"context"
	"fmt"
	"sync"
)

// SimulatedPlatform is an in-memory Platform for development and
// dry-run use. It models the platform quirk the toggle works around:
// starting tethering forces the WiFi radio on, stopping it leaves the
// radio enabled-but-off. Every native call is recorded so callers can
// inspect what a toggle run would have done.
type SimulatedPlatform struct {
	mu sync.Mutex

	profileName    string
	profileAbsent  bool
	profileInPolls int

	access AccessStatus
	radios []*SimulatedRadio

	tethering   TetheringState
	startStatus OperationStatus
	stopStatus  OperationStatus

	// StickyRadio leaves the radio on after a tethering stop, modeling
	// a host where the forced power transition does not take
	StickyRadio bool

	calls []string
}

// SimulatedRadio is one transceiver of a SimulatedPlatform
type SimulatedRadio struct {
	platform *SimulatedPlatform

	name  string
	kind  RadioKind
	state RadioState
}

// NewSimulatedPlatform creates a platform with one WiFi radio ("wlan0",
// off), radio access allowed, an internet profile present, and
// tethering off.
func NewSimulatedPlatform() *SimulatedPlatform {
	p := &SimulatedPlatform{
		profileName: "Ethernet",
		access:      AccessAllowed,
	}
	p.radios = []*SimulatedRadio{{platform: p, name: "wlan0", kind: RadioKindWiFi, state: RadioOff}}
	return p
}

func (p *SimulatedPlatform) record(call string) {
	p.calls = append(p.calls, call)
}

// Calls returns the native calls made so far, in order
func (p *SimulatedPlatform) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.calls))
	copy(out, p.calls)
	return out
}

// SetProfile makes an internet profile with the given name available
func (p *SimulatedPlatform) SetProfile(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profileName = name
	p.profileAbsent = false
	p.profileInPolls = 0
}

// ClearProfile removes the internet profile
func (p *SimulatedPlatform) ClearProfile() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profileAbsent = true
	p.profileInPolls = 0
}

// ProfileAfterPolls makes the profile absent until it has been polled n
// more times, modeling the boot window before a route is up
func (p *SimulatedPlatform) ProfileAfterPolls(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profileAbsent = true
	p.profileInPolls = n
}

// SetAccess sets the answer to radio access requests
func (p *SimulatedPlatform) SetAccess(status AccessStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.access = status
}

// SetTethering sets the current tethering operational state
func (p *SimulatedPlatform) SetTethering(state TetheringState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tethering = state
}

// Tethering returns the current tethering operational state
func (p *SimulatedPlatform) Tethering() TetheringState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tethering
}

// FailStart makes subsequent start requests complete with status
func (p *SimulatedPlatform) FailStart(status OperationStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startStatus = status
}

// FailStop makes subsequent stop requests complete with status
func (p *SimulatedPlatform) FailStop(status OperationStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopStatus = status
}

// AddRadio adds a transceiver and returns it
func (p *SimulatedPlatform) AddRadio(name string, kind RadioKind, state RadioState) *SimulatedRadio {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := &SimulatedRadio{platform: p, name: name, kind: kind, state: state}
	p.radios = append(p.radios, r)
	return r
}

// WifiRadio returns the first WiFi transceiver, or nil
func (p *SimulatedPlatform) WifiRadio() *SimulatedRadio {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wifiLocked()
}

func (p *SimulatedPlatform) wifiLocked() *SimulatedRadio {
	for _, r := range p.radios {
		if r.kind == RadioKindWiFi {
			return r
		}
	}
	return nil
}

// InternetConnectionProfile implements Platform
func (p *SimulatedPlatform) InternetConnectionProfile() (ConnectionProfile, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("profile")

	if p.profileAbsent {
		if p.profileInPolls > 0 {
			p.profileInPolls--
			if p.profileInPolls == 0 {
				p.profileAbsent = false
			}
		}
		return nil, false
	}
	return simProfile{name: p.profileName}, true
}

// CreateTetheringSession implements Platform
func (p *SimulatedPlatform) CreateTetheringSession(profile ConnectionProfile) (TetheringSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("tether-create")

	if profile == nil {
		return nil, fmt.Errorf("nil connection profile")
	}
	return &simSession{platform: p}, nil
}

// RequestRadioAccess implements Platform
func (p *SimulatedPlatform) RequestRadioAccess() (AccessStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("radio-access")
	return p.access, nil
}

// Radios implements Platform
func (p *SimulatedPlatform) Radios() ([]Radio, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("radios")

	// Fresh handle values each enumeration; state lives on the platform
	out := make([]Radio, len(p.radios))
	for i, r := range p.radios {
		out[i] = r
	}
	return out, nil
}

// RestartAdapter implements AdapterRestarter
func (p *SimulatedPlatform) RestartAdapter(_ context.Context, adapter WifiAdapter) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("adapter-restart " + adapter.String())
	return nil
}

// Name implements Radio
func (r *SimulatedRadio) Name() string {
	return r.name
}

// Kind implements Radio
func (r *SimulatedRadio) Kind() RadioKind {
	return r.kind
}

// State implements Radio
func (r *SimulatedRadio) State() RadioState {
	r.platform.mu.Lock()
	defer r.platform.mu.Unlock()
	return r.state
}

// ForceState sets the radio state directly, bypassing the async path
func (r *SimulatedRadio) ForceState(state RadioState) {
	r.platform.mu.Lock()
	defer r.platform.mu.Unlock()
	r.state = state
}

// SetState implements Radio
func (r *SimulatedRadio) SetState(target RadioState) AsyncOp {
	r.platform.mu.Lock()
	defer r.platform.mu.Unlock()
	r.platform.record(fmt.Sprintf("radio-set %s %s", r.name, target))
	r.state = target
	return completedOp{}
}

// simProfile is the simulated connection profile
type simProfile struct {
	name string
}

func (p simProfile) Name() string {
	return p.name
}

// simSession is the simulated tethering session
type simSession struct {
	platform *SimulatedPlatform
}

func (s *simSession) OperationalState() TetheringState {
	s.platform.mu.Lock()
	defer s.platform.mu.Unlock()
	return s.platform.tethering
}

func (s *simSession) Start() TetheringOp {
	p := s.platform
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("tether-start")

	if p.startStatus != StatusSuccess {
		return simTetherOp{status: p.startStatus}
	}

	p.tethering = TetheringOn
	// Starting the hotspot forces the wifi radio on
	if wifi := p.wifiLocked(); wifi != nil {
		wifi.state = RadioOn
	}
	return simTetherOp{status: StatusSuccess}
}

func (s *simSession) Stop() TetheringOp {
	p := s.platform
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("tether-stop")

	if p.stopStatus != StatusSuccess {
		return simTetherOp{status: p.stopStatus}
	}

	p.tethering = TetheringOff
	// Stopping leaves the radio enabled-but-off, unless it is sticky
	if wifi := p.wifiLocked(); wifi != nil && !p.StickyRadio {
		wifi.state = RadioOff
	}
	return simTetherOp{status: StatusSuccess}
}

// completedOp is an AsyncOp that finished before it was returned
type completedOp struct {
	err error
}

var closedCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func (completedOp) Completed() <-chan struct{} {
	return closedCh
}

func (op completedOp) Err() error {
	return op.err
}

// simTetherOp is a TetheringOp that finished before it was returned
type simTetherOp struct {
	completedOp
	status OperationStatus
}

func (op simTetherOp) Status() OperationStatus {
	return op.status
}
