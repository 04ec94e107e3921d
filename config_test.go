package hotspot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 12, cfg.ProfileWait.MaxAttempts)
	require.Equal(t, 5*time.Second, cfg.ProfileWait.Interval)
	require.Equal(t, CycleTetherDance, cfg.Strategy)
	require.Equal(t, 2*time.Second, cfg.SettleDelay)
	require.Equal(t, 2*time.Second, cfg.RadioOffDelay)
	require.Equal(t, 6*time.Second, cfg.RadioOnSettle)
	require.False(t, cfg.RestartAdapter)
}

func TestParseCycleStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    CycleStrategy
		wantErr bool
	}{
		{input: "tether-dance", want: CycleTetherDance},
		{input: "", want: CycleTetherDance},
		{input: "radio-restart", want: CycleRadioRestart},
		{input: "both", wantErr: true},
		{input: "TETHER-DANCE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseCycleStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCycleStrategyString(t *testing.T) {
	require.Equal(t, "tether-dance", CycleTetherDance.String())
	require.Equal(t, "radio-restart", CycleRadioRestart.String())
}
