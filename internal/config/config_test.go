package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosfx/retrosfx/internal/output"
	"github.com/retrosfx/retrosfx/internal/pattern"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retro-sfx.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.QuietEnabled)
	assert.Equal(t, 22*60, cfg.QuietStart)
	assert.Equal(t, 7*60, cfg.QuietEnd)
	assert.Equal(t, output.ModeRandom, cfg.OutputMode)
	assert.Equal(t, 70, cfg.RandomAudioPercent)
	assert.Equal(t, "default", cfg.AudioDevice)
	assert.Equal(t, 1.0, cfg.AudioGain)
	assert.False(t, cfg.Limiter.Enabled)
	assert.Len(t, cfg.Profiles, 4)
	for _, prof := range pattern.Profiles() {
		pc := cfg.Profiles[prof]
		assert.Nil(t, pc.EnabledVariations, "%s defaults to all variations", prof)
		assert.LessOrEqual(t, pc.IntervalMin, pc.IntervalMax)
		assert.LessOrEqual(t, pc.BeepsMin, pc.BeepsMax)
	}
	assert.False(t, cfg.SoundFile.Enabled)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := Load("/nonexistent/retro-sfx.conf")
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConf(t, `
QUIET_ENABLED=0
QUIET_START="23:30"
QUIET_END="06:15"
OUTPUT_MODE=audio
RANDOM_AUDIO_PERCENT=40
AUDIO_DEVICE=hw:1,0
AUDIO_GAIN=0.8
LIMITER_ENABLED=1
LIM_TARGET_DB=-6
WOPR_ENABLED_VARIATIONS=0,1,2
WOPR_INTERVAL_MIN=2
WOPR_INTERVAL_MAX=4
WOPR_BEEPS_MIN=2
WOPR_BEEPS_MAX=5
SOUNDFILE_ENABLED=1
SOUNDFILE_DIR=/srv/sounds
SOUNDFILE_DURATION_MIN=2.5
SOUNDFILE_DURATION_MAX=12
`)
	cfg := Load(path)

	assert.False(t, cfg.QuietEnabled)
	assert.Equal(t, 23*60+30, cfg.QuietStart)
	assert.Equal(t, 6*60+15, cfg.QuietEnd)
	assert.Equal(t, output.ModeAudio, cfg.OutputMode)
	assert.Equal(t, 40, cfg.RandomAudioPercent)
	assert.Equal(t, "hw:1,0", cfg.AudioDevice)
	assert.Equal(t, 0.8, cfg.AudioGain)
	assert.True(t, cfg.Limiter.Enabled)
	assert.Equal(t, -6.0, cfg.Limiter.TargetDB)

	wopr := cfg.Profiles[pattern.ProfileWopr]
	assert.Equal(t, []int{0, 1, 2}, wopr.EnabledVariations)
	assert.Equal(t, 2*time.Minute, wopr.IntervalMin)
	assert.Equal(t, 4*time.Minute, wopr.IntervalMax)
	assert.Equal(t, 2, wopr.BeepsMin)
	assert.Equal(t, 5, wopr.BeepsMax)

	assert.True(t, cfg.SoundFile.Enabled)
	assert.Equal(t, "/srv/sounds", cfg.SoundFile.Dir)
	assert.Equal(t, 2.5, cfg.SoundFile.DurationMin)
	assert.Equal(t, 12.0, cfg.SoundFile.DurationMax)
}

func TestLoad_ClampsOutOfRange(t *testing.T) {
	low := Load(writeConf(t, "RANDOM_AUDIO_PERCENT=-5\n"))
	assert.Equal(t, 0, low.RandomAudioPercent)

	high := Load(writeConf(t, "RANDOM_AUDIO_PERCENT=150\n"))
	assert.Equal(t, 100, high.RandomAudioPercent)

	beeps := Load(writeConf(t, "MAINFRAME_BEEPS_MIN=30\nMAINFRAME_BEEPS_MAX=40\n"))
	mf := beeps.Profiles[pattern.ProfileMainframe]
	assert.Equal(t, 20, mf.BeepsMin)
	assert.Equal(t, 20, mf.BeepsMax)
}

func TestLoad_SwapsInvertedBounds(t *testing.T) {
	cfg := Load(writeConf(t, "WOPR_INTERVAL_MIN=10\nWOPR_INTERVAL_MAX=2\nWOPR_BEEPS_MIN=6\nWOPR_BEEPS_MAX=1\n"))
	wopr := cfg.Profiles[pattern.ProfileWopr]
	assert.Equal(t, 2*time.Minute, wopr.IntervalMin)
	assert.Equal(t, 10*time.Minute, wopr.IntervalMax)
	assert.Equal(t, 1, wopr.BeepsMin)
	assert.Equal(t, 6, wopr.BeepsMax)
}

func TestLoad_BadFieldFallsBackOthersSurvive(t *testing.T) {
	cfg := Load(writeConf(t, `
QUIET_START=sometime
RANDOM_AUDIO_PERCENT=lots
not even a key value pair
OUTPUT_MODE=pcspkr
MODEM_ENABLED_VARIATIONS=one,two
`))
	// Malformed values fall back to their defaults.
	assert.Equal(t, 22*60, cfg.QuietStart)
	assert.Equal(t, 70, cfg.RandomAudioPercent)
	assert.Nil(t, cfg.Profiles[pattern.ProfileModem].EnabledVariations)
	// The well-formed field still applies.
	assert.Equal(t, output.ModePCSpkr, cfg.OutputMode)
}

func TestLoad_MalformedLineKeepsOtherFields(t *testing.T) {
	cfg := Load(writeConf(t, `OUTPUT_MODE=audio
this line has no equals sign at all
RANDOM_AUDIO_PERCENT=40
`))
	assert.Equal(t, output.ModeAudio, cfg.OutputMode)
	assert.Equal(t, 40, cfg.RandomAudioPercent)
}

func TestLoad_CommentsAndBlanksIgnored(t *testing.T) {
	cfg := Load(writeConf(t, `
# operator notes live here
OUTPUT_MODE=pcspkr

# QUIET_ENABLED=0
`))
	assert.Equal(t, output.ModePCSpkr, cfg.OutputMode)
	assert.True(t, cfg.QuietEnabled, "commented-out lines stay inert")
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	cfg := Load(writeConf(t, "SOME_FUTURE_KEY=hello\nOUTPUT_MODE=audio\n"))
	assert.Equal(t, output.ModeAudio, cfg.OutputMode)
}

func TestLoad_VariationsAllAndFiltering(t *testing.T) {
	all := Load(writeConf(t, "WOPR_ENABLED_VARIATIONS=all\n"))
	assert.Nil(t, all.Profiles[pattern.ProfileWopr].EnabledVariations)

	filtered := Load(writeConf(t, "WOPR_ENABLED_VARIATIONS=3,11,7,-1\n"))
	assert.Equal(t, []int{3, 7}, filtered.Profiles[pattern.ProfileWopr].EnabledVariations)
}

func TestSet_ReplaceAndAppend(t *testing.T) {
	path := writeConf(t, "OUTPUT_MODE=random\nRANDOM_AUDIO_PERCENT=70\n")

	require.NoError(t, Set(path, "OUTPUT_MODE", "audio"))
	require.NoError(t, Set(path, "QUIET_ENABLED", "0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "OUTPUT_MODE=audio")
	assert.Contains(t, content, "RANDOM_AUDIO_PERCENT=70")
	assert.Contains(t, content, "QUIET_ENABLED=0")
	assert.NotContains(t, content, "OUTPUT_MODE=random")

	cfg := Load(path)
	assert.Equal(t, output.ModeAudio, cfg.OutputMode)
	assert.False(t, cfg.QuietEnabled)
}

func TestSet_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retro-sfx.conf")
	require.NoError(t, Set(path, "OUTPUT_MODE", "pcspkr"))

	cfg := Load(path)
	assert.Equal(t, output.ModePCSpkr, cfg.OutputMode)
}
