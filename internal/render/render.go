// Package render hosts the two rendering primitives: the PC-speaker
// buzzer and the external audio sink. Both calls block for the full
// duration of the tone so the scheduler's output stays serialized, and
// both fail softly: a missing binary or absent hardware is an error for
// the caller to drop, never a crash.
package render

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioOpts carries the per-event audio parameters resolved from config.
// Device is surfaced to the operator via the init log; the in-process
// sink always plays through the platform mixer's default route, so
// pointing at another device takes an aplay/pipewire-level redirect.
type AudioOpts struct {
	Device  string
	Gain    float64
	Limiter LimiterOpts
}

// LimiterOpts mirrors the config limiter block. The core honors the
// enabled flag and target ceiling; attack, decay and softknee are
// recorded for the backend but no envelope shaping is performed here.
type LimiterOpts struct {
	Enabled  bool
	Attack   float64
	Decay    float64
	SoftKnee int
	TargetDB float64
}

// minAudioDur is the floor for audible sink output; shorter requests are
// stretched so they do not vanish in the output buffer.
const minAudioDur = 30 * time.Millisecond

// Renderer drives both backends. The speaker is initialized once on first
// audio use and reused for every subsequent tone.
type Renderer struct {
	mu          sync.Mutex
	logger      *slog.Logger
	sampleRate  beep.SampleRate
	initialized bool
}

// New creates a renderer. No hardware is touched until the first emit.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		logger:     logger,
		sampleRate: beep.SampleRate(44100),
	}
}

// EmitAudio synthesizes a sine tone at freq for dur and plays it through
// the audio sink, blocking until playback completes.
func (r *Renderer) EmitAudio(freq int, dur time.Duration, opts AudioOpts) error {
	if dur < minAudioDur {
		dur = minAudioDur
	}
	if err := r.ensureInitialized(opts.Device); err != nil {
		return err
	}

	tone, err := generators.SinTone(r.sampleRate, freq)
	if err != nil {
		return fmt.Errorf("failed to generate tone: %w", err)
	}

	var streamer beep.Streamer = beep.Take(r.sampleRate.N(dur), tone)

	gain := limitedGain(opts.Gain, opts.Limiter)
	if gain != 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   gainToVolume(gain),
			Silent:   gain <= 0,
		}
	}

	speaker.PlayAndWait(streamer)
	return nil
}

// ensureInitialized opens the speaker once. Device selection is the
// platform mixer's job; the configured device is logged for the operator.
func (r *Renderer) ensureInitialized(device string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}
	bufferSize := r.sampleRate.N(100 * time.Millisecond)
	if err := speaker.Init(r.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	r.initialized = true
	r.logger.Info("speaker initialized", "sample_rate", r.sampleRate, "device", device)
	return nil
}

// Close releases the audio sink.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		speaker.Close()
		r.initialized = false
	}
	r.logger.Debug("renderer closed")
}

// limitedGain applies the limiter's ceiling to the configured gain: with
// the limiter on, output never exceeds the target dB level.
func limitedGain(gain float64, l LimiterOpts) float64 {
	if gain < 0 {
		gain = 0
	}
	if !l.Enabled {
		return gain
	}
	ceiling := math.Pow(10, l.TargetDB/20)
	if gain > ceiling {
		return ceiling
	}
	return gain
}

// gainToVolume converts a linear gain multiplier to the exponent the
// volume effect expects (base 2).
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return -10 // effectively silent; Silent flag covers the rest
	}
	return math.Log2(gain)
}
