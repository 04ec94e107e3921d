package hotspot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBridgeAwaitCompleted(t *testing.T) {
	b := NewBridge()

	require.NoError(t, b.Await(context.Background(), completedOp{}))

	opErr := errors.New("native failure")
	require.ErrorIs(t, b.Await(context.Background(), completedOp{err: opErr}), opErr)
}

func TestBridgeAwaitBlocksUntilCompletion(t *testing.T) {
	b := NewBridge()
	op := newManualOp()

	done := make(chan error, 1)
	go func() {
		done <- b.Await(context.Background(), op)
	}()

	select {
	case <-done:
		t.Fatal("await returned before the operation completed")
	case <-time.After(50 * time.Millisecond):
	}

	op.complete(nil)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("await did not return after completion")
	}
}

func TestBridgeAwaitUnavailable(t *testing.T) {
	b := NewBridge()

	require.ErrorIs(t, b.Await(context.Background(), nil), ErrBridgeUnavailable)
	require.ErrorIs(t, b.Await(context.Background(), unbridgedOp{}), ErrBridgeUnavailable)
}

func TestBridgeAwaitContextCancelled(t *testing.T) {
	b := NewBridge()
	op := newManualOp()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, b.Await(ctx, op), context.Canceled)
}

func TestBridgePollCompletes(t *testing.T) {
	clk := newFakeClock()
	b := NewBridge(WithBridgeClock(clk), WithPollInterval(100*time.Millisecond), WithMaxPolls(10))

	op := newManualOp()
	op.complete(nil)

	require.NoError(t, b.Poll(context.Background(), op))
	require.Zero(t, clk.SleepCount())
}

func TestBridgePollBoundedTimeout(t *testing.T) {
	clk := newFakeClock()
	b := NewBridge(WithBridgeClock(clk), WithPollInterval(100*time.Millisecond), WithMaxPolls(10))

	err := b.Poll(context.Background(), newManualOp())
	require.ErrorIs(t, err, ErrAwaitTimeout)

	// 10 checks, 9 pauses
	require.Equal(t, 9, clk.SleepCount())
	require.Equal(t, 900*time.Millisecond, clk.Slept())
}

func TestBridgePollUnavailable(t *testing.T) {
	b := NewBridge(WithBridgeClock(newFakeClock()))

	require.ErrorIs(t, b.Poll(context.Background(), nil), ErrBridgeUnavailable)
	require.ErrorIs(t, b.Poll(context.Background(), unbridgedOp{}), ErrBridgeUnavailable)
}
