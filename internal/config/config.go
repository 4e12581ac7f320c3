// Package config loads and writes the daemon's key=value configuration.
// Every field has a compiled-in default; a missing, malformed or
// out-of-range value silently falls back to its default and numeric
// ranges clamp rather than reject, so one bad line never invalidates the
// rest of the file. The daemon calls Load on every scheduling tick.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/retrosfx/retrosfx/internal/output"
	"github.com/retrosfx/retrosfx/internal/pattern"
	"github.com/retrosfx/retrosfx/internal/quiet"
)

// DefaultPath is where the config file lives unless overridden.
const DefaultPath = "/etc/retro-sfx.conf"

// Config is one immutable configuration snapshot.
type Config struct {
	QuietEnabled bool
	QuietStart   int // minutes since midnight
	QuietEnd     int

	OutputMode         output.Mode
	RandomAudioPercent int
	AudioDevice        string
	AudioGain          float64

	Limiter LimiterConfig

	Profiles map[pattern.Profile]ProfileConfig

	SoundFile SoundFileConfig
}

// LimiterConfig holds the audio limiter parameters handed to the renderer.
type LimiterConfig struct {
	Enabled  bool
	Attack   float64 // seconds
	Decay    float64 // seconds
	SoftKnee int     // dB
	TargetDB float64
}

// ProfileConfig holds the per-profile scheduling knobs.
type ProfileConfig struct {
	// EnabledVariations restricts playable variation indices; nil means all.
	EnabledVariations []int
	IntervalMin       time.Duration
	IntervalMax       time.Duration
	BeepsMin          int
	BeepsMax          int
}

// SoundFileConfig holds the hashed sound-file event settings.
type SoundFileConfig struct {
	Enabled     bool
	Dir         string
	DurationMin float64 // seconds
	DurationMax float64
	IntervalMin time.Duration
	IntervalMax time.Duration
}

const (
	beepsFloor = 1
	beepsCeil  = 20
)

// Default returns a Config populated entirely with compiled-in defaults.
func Default() *Config {
	profiles := make(map[pattern.Profile]ProfileConfig, len(pattern.Profiles()))
	profiles[pattern.ProfileWopr] = ProfileConfig{
		IntervalMin: 1 * time.Minute, IntervalMax: 2 * time.Minute,
		BeepsMin: 1, BeepsMax: 6,
	}
	profiles[pattern.ProfileMainframe] = ProfileConfig{
		IntervalMin: 1 * time.Minute, IntervalMax: 5 * time.Minute,
		BeepsMin: 1, BeepsMax: 2,
	}
	profiles[pattern.ProfileAliensTerm] = ProfileConfig{
		IntervalMin: 1 * time.Minute, IntervalMax: 3 * time.Minute,
		BeepsMin: 2, BeepsMax: 4,
	}
	profiles[pattern.ProfileModem] = ProfileConfig{
		IntervalMin: 5 * time.Minute, IntervalMax: 15 * time.Minute,
		BeepsMin: 4, BeepsMax: 8,
	}
	return &Config{
		QuietEnabled:       true,
		QuietStart:         22 * 60,
		QuietEnd:           7 * 60,
		OutputMode:         output.ModeRandom,
		RandomAudioPercent: 70,
		AudioDevice:        "default",
		AudioGain:          1.0,
		Limiter: LimiterConfig{
			Enabled:  false,
			Attack:   0.005,
			Decay:    0.10,
			SoftKnee: 6,
			TargetDB: -3,
		},
		Profiles: profiles,
		SoundFile: SoundFileConfig{
			Enabled:     false,
			Dir:         "/usr/share/retro-sfx/sounds",
			DurationMin: 5,
			DurationMax: 30,
			IntervalMin: 10 * time.Minute,
			IntervalMax: 30 * time.Minute,
		},
	}
}

// Load reads the config file at path, overlaying the defaults field by
// field. A missing or unreadable file yields pure defaults; so does every
// individual value the file gets wrong, and lines that are not key=value
// at all are skipped without touching the rest. Load never returns an error
// because no configuration problem is fatal to the daemon.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	env := parseLines(string(data))

	cfg.QuietEnabled = boolVal(env, "QUIET_ENABLED", cfg.QuietEnabled)
	cfg.QuietStart = clockVal(env, "QUIET_START", cfg.QuietStart)
	cfg.QuietEnd = clockVal(env, "QUIET_END", cfg.QuietEnd)

	if v, ok := env["OUTPUT_MODE"]; ok {
		cfg.OutputMode = output.ParseMode(strings.TrimSpace(v))
	}
	cfg.RandomAudioPercent = intVal(env, "RANDOM_AUDIO_PERCENT", cfg.RandomAudioPercent, 0, 100)
	if v, ok := env["AUDIO_DEVICE"]; ok && strings.TrimSpace(v) != "" {
		cfg.AudioDevice = strings.TrimSpace(v)
	}
	cfg.AudioGain = floatVal(env, "AUDIO_GAIN", cfg.AudioGain, 0, 10)

	cfg.Limiter.Enabled = boolVal(env, "LIMITER_ENABLED", cfg.Limiter.Enabled)
	cfg.Limiter.Attack = floatVal(env, "LIM_ATTACK", cfg.Limiter.Attack, 0, 1)
	cfg.Limiter.Decay = floatVal(env, "LIM_DECAY", cfg.Limiter.Decay, 0, 5)
	cfg.Limiter.SoftKnee = intVal(env, "LIM_SOFTKNEE", cfg.Limiter.SoftKnee, 0, 24)
	cfg.Limiter.TargetDB = floatVal(env, "LIM_TARGET_DB", cfg.Limiter.TargetDB, -60, 0)

	for _, prof := range pattern.Profiles() {
		pc := cfg.Profiles[prof]
		prefix := strings.ToUpper(string(prof))
		if v, ok := env[prefix+"_ENABLED_VARIATIONS"]; ok {
			pc.EnabledVariations = parseVariations(v)
		}
		pc.IntervalMin = minutesVal(env, prefix+"_INTERVAL_MIN", pc.IntervalMin)
		pc.IntervalMax = minutesVal(env, prefix+"_INTERVAL_MAX", pc.IntervalMax)
		if pc.IntervalMin > pc.IntervalMax {
			pc.IntervalMin, pc.IntervalMax = pc.IntervalMax, pc.IntervalMin
		}
		pc.BeepsMin = intVal(env, prefix+"_BEEPS_MIN", pc.BeepsMin, beepsFloor, beepsCeil)
		pc.BeepsMax = intVal(env, prefix+"_BEEPS_MAX", pc.BeepsMax, beepsFloor, beepsCeil)
		if pc.BeepsMin > pc.BeepsMax {
			pc.BeepsMin, pc.BeepsMax = pc.BeepsMax, pc.BeepsMin
		}
		cfg.Profiles[prof] = pc
	}

	sf := &cfg.SoundFile
	sf.Enabled = boolVal(env, "SOUNDFILE_ENABLED", sf.Enabled)
	if v, ok := env["SOUNDFILE_DIR"]; ok && strings.TrimSpace(v) != "" {
		sf.Dir = strings.TrimSpace(v)
	}
	sf.DurationMin = floatVal(env, "SOUNDFILE_DURATION_MIN", sf.DurationMin, 0.1, 300)
	sf.DurationMax = floatVal(env, "SOUNDFILE_DURATION_MAX", sf.DurationMax, 0.1, 300)
	if sf.DurationMin > sf.DurationMax {
		sf.DurationMin, sf.DurationMax = sf.DurationMax, sf.DurationMin
	}
	sf.IntervalMin = minutesVal(env, "SOUNDFILE_INTERVAL_MIN", sf.IntervalMin)
	sf.IntervalMax = minutesVal(env, "SOUNDFILE_INTERVAL_MAX", sf.IntervalMax)
	if sf.IntervalMin > sf.IntervalMax {
		sf.IntervalMin, sf.IntervalMax = sf.IntervalMax, sf.IntervalMin
	}

	return cfg
}

// Set updates a single key in the config file, preserving every other
// line. The key is replaced in place if present, appended otherwise; the
// file is created when missing.
func Set(path, key, value string) error {
	if path == "" {
		path = DefaultPath
	}
	var lines []string
	replaced := false
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		for i, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), key+"=") {
				lines[i] = key + "=" + value
				replaced = true
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if !replaced {
		lines = append(lines, key+"="+value)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// parseLines parses the file's key=value lines one at a time, skipping
// blanks, comments and anything that does not parse. Feeding lines to
// godotenv individually keeps one junk line from discarding the rest of
// the file.
func parseLines(content string) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, "=") {
			continue
		}
		kv, err := godotenv.Unmarshal(trimmed)
		if err != nil {
			continue
		}
		for k, v := range kv {
			env[k] = v
		}
	}
	return env
}

func boolVal(env map[string]string, key string, def bool) bool {
	v, ok := env[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func intVal(env map[string]string, key string, def, lo, hi int) int {
	v, ok := env[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func floatVal(env map[string]string, key string, def, lo, hi float64) float64 {
	v, ok := env[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func clockVal(env map[string]string, key string, def int) int {
	v, ok := env[key]
	if !ok {
		return def
	}
	min, err := quiet.ParseClock(v)
	if err != nil {
		return def
	}
	return min
}

// minutesVal reads a whole-minute interval bound; values below one minute
// clamp up to one.
func minutesVal(env map[string]string, key string, def time.Duration) time.Duration {
	v, ok := env[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	if n < 1 {
		n = 1
	}
	return time.Duration(n) * time.Minute
}

// parseVariations parses "all" or a comma-separated index list. Indices
// outside [0,9] are dropped; an empty or unparseable list means all.
func parseVariations(v string) []int {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "all") {
		return nil
	}
	var set []int
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		if n >= 0 && n < pattern.VariationsPerProfile {
			set = append(set, n)
		}
	}
	return set
}
