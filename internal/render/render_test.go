package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitedGain_Disabled(t *testing.T) {
	l := LimiterOpts{Enabled: false, TargetDB: -3}
	assert.Equal(t, 1.0, limitedGain(1.0, l))
	assert.Equal(t, 2.5, limitedGain(2.5, l))
	assert.Equal(t, 0.0, limitedGain(-1.0, l))
}

func TestLimitedGain_CeilingApplied(t *testing.T) {
	l := LimiterOpts{Enabled: true, TargetDB: -3}
	ceiling := math.Pow(10, -3.0/20) // about 0.708

	assert.InDelta(t, ceiling, limitedGain(1.0, l), 1e-9)
	assert.InDelta(t, ceiling, limitedGain(5.0, l), 1e-9)
	// Below the ceiling, gain passes through untouched.
	assert.Equal(t, 0.5, limitedGain(0.5, l))
}

func TestLimitedGain_ZeroTargetUnity(t *testing.T) {
	l := LimiterOpts{Enabled: true, TargetDB: 0}
	assert.InDelta(t, 1.0, limitedGain(3.0, l), 1e-9)
	assert.Equal(t, 0.9, limitedGain(0.9, l))
}

func TestGainToVolume(t *testing.T) {
	assert.Equal(t, 0.0, gainToVolume(1.0))
	assert.Equal(t, 1.0, gainToVolume(2.0))
	assert.Equal(t, -1.0, gainToVolume(0.5))
	assert.Equal(t, -10.0, gainToVolume(0))
	assert.Equal(t, -10.0, gainToVolume(-2))
}

func TestNewDoesNotTouchHardware(t *testing.T) {
	r := New(nil)
	assert.False(t, r.initialized)
	assert.Equal(t, 44100, int(r.sampleRate))
	// Close on an uninitialized renderer is a no-op.
	r.Close()
}
