package hotspot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpErrorFormatting(t *testing.T) {
	err := &OpError{Op: OpRadioCycle, Err: ErrCycleVerification}
	require.Equal(t, `hotspot radio-cycle: hotspot: radio still on after cycle`, err.Error())
	require.ErrorIs(t, err, ErrCycleVerification)

	withAdapter := &OpError{Op: OpRadioCycle, Adapter: "wlan0", Err: ErrCycleVerification}
	require.Contains(t, withAdapter.Error(), `"wlan0"`)
}

func TestOpErrorUnwrapChain(t *testing.T) {
	inner := errors.New("access refused")
	err := &OpError{Op: OpRadioAccess, Err: inner}

	require.ErrorIs(t, err, inner)

	var opErr *OpError
	require.ErrorAs(t, error(err), &opErr)
	require.Equal(t, OpRadioAccess, opErr.Op)
}

func TestTetheringErrorFormatting(t *testing.T) {
	err := &TetheringError{Op: OpTetherStart, Status: StatusNotReady}
	require.Equal(t, "hotspot tether-start: status not-ready", err.Error())
}

func TestOperationStrings(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpUnknown, "unknown"},
		{OpAwait, "await"},
		{OpProfileWait, "profile-wait"},
		{OpRadioAccess, "radio-access"},
		{OpRadioFind, "radio-find"},
		{OpRadioSet, "radio-set"},
		{OpRadioRefresh, "radio-refresh"},
		{OpRadioCycle, "radio-cycle"},
		{OpTetherCreate, "tether-create"},
		{OpTetherStart, "tether-start"},
		{OpTetherStop, "tether-stop"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.op.String())
	}
}

func TestStateStrings(t *testing.T) {
	require.Equal(t, "on", RadioOn.String())
	require.Equal(t, "off", RadioOff.String())
	require.Equal(t, "unknown", RadioUnknown.String())

	require.Equal(t, "on", TetheringOn.String())
	require.Equal(t, "off", TetheringOff.String())

	require.Equal(t, "wifi", RadioKindWiFi.String())
	require.Equal(t, "allowed", AccessAllowed.String())
	require.Equal(t, "success", StatusSuccess.String())
}
