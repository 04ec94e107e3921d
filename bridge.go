package hotspot

import (
	"context"
	"time"
)

// Bridge blocks the calling goroutine until a native asynchronous
// operation completes. It carries no retry policy of its own: Await has
// no timeout (the underlying operation must itself be bounded), and Poll
// makes an explicit bounded number of completion checks. Callers impose
// their own waits above it.
type Bridge struct {
	// PollInterval is the pause between completion checks in Poll
	PollInterval time.Duration

	// MaxPolls is the number of completion checks Poll makes before
	// reporting ErrAwaitTimeout
	MaxPolls int

	clock Clock
}

// BridgeOption configures a Bridge
type BridgeOption func(*Bridge)

// WithPollInterval sets the pause between Poll completion checks
func WithPollInterval(d time.Duration) BridgeOption {
	return func(b *Bridge) {
		b.PollInterval = d
	}
}

// WithMaxPolls sets the number of Poll completion checks
func WithMaxPolls(n int) BridgeOption {
	return func(b *Bridge) {
		b.MaxPolls = n
	}
}

// WithBridgeClock sets the clock used for Poll pauses
func WithBridgeClock(clk Clock) BridgeOption {
	return func(b *Bridge) {
		b.clock = clk
	}
}

// NewBridge creates a Bridge with default settings
func NewBridge(opts ...BridgeOption) *Bridge {
	b := &Bridge{
		PollInterval: DefaultBridgePollInterval,
		MaxPolls:     DefaultBridgeMaxPolls,
		clock:        wallClock{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.MaxPolls < 1 {
		b.MaxPolls = 1
	}

	return b
}

// Await blocks until op completes or ctx is cancelled, then returns the
// operation's error. A nil operation, or one with no completion channel,
// means the platform could not supply the bridging mechanism; Await
// fails fast with ErrBridgeUnavailable instead of blocking forever.
func (b *Bridge) Await(ctx context.Context, op AsyncOp) error {
	if op == nil {
		return &OpError{Op: OpAwait, Err: ErrBridgeUnavailable}
	}
	done := op.Completed()
	if done == nil {
		return &OpError{Op: OpAwait, Err: ErrBridgeUnavailable}
	}

	select {
	case <-done:
		return op.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Poll checks op for completion up to MaxPolls times, pausing
// PollInterval between checks, and returns ErrAwaitTimeout when the
// operation is still running after the last check.
func (b *Bridge) Poll(ctx context.Context, op AsyncOp) error {
	if op == nil {
		return &OpError{Op: OpAwait, Err: ErrBridgeUnavailable}
	}
	done := op.Completed()
	if done == nil {
		return &OpError{Op: OpAwait, Err: ErrBridgeUnavailable}
	}

	for attempt := 0; attempt < b.MaxPolls; attempt++ {
		if attempt > 0 {
			if err := b.clock.Sleep(ctx, b.PollInterval); err != nil {
				return err
			}
		}

		select {
		case <-done:
			return op.Err()
		default:
		}
	}

	return &OpError{Op: OpAwait, Err: ErrAwaitTimeout}
}
