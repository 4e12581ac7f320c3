// Package daemon provides the main scheduling loop for retrosfxd.
package daemon

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/hardware"
	"github.com/retrosfx/retrosfx/internal/output"
	"github.com/retrosfx/retrosfx/internal/pattern"
	"github.com/retrosfx/retrosfx/internal/quiet"
	"github.com/retrosfx/retrosfx/internal/render"
	"github.com/retrosfx/retrosfx/internal/state"
	"github.com/retrosfx/retrosfx/internal/synth"
)

// Renderer is the rendering boundary the scheduler hands events to. Both
// calls block for the tone's duration; failures drop the event, never the
// loop.
type Renderer interface {
	EmitPCSpkr(freq int, dur time.Duration) error
	EmitAudio(freq int, dur time.Duration, opts render.AudioOpts) error
}

const (
	// idlePoll is how often a disabled or quiet daemon re-checks state.
	idlePoll = 2 * time.Second

	// soundFileChancePercent is the chance an active tick plays a hashed
	// sound-file sequence instead of a profile pattern.
	soundFileChancePercent = 10
)

// soundFileExts are the file types eligible for hashed playback. Only the
// name is hashed, but limiting to audio files keeps the directory scan
// honest.
var soundFileExts = map[string]bool{
	".wav": true, ".ogg": true, ".mp3": true, ".flac": true,
}

// Scheduler runs the tick loop: reload config and state, honor quiet
// hours, fire one event, sleep a jittered interval, repeat. Config and
// runtime state are re-read every tick and never cached, so edits take
// effect without a restart.
type Scheduler struct {
	confPath string
	runDir   string
	probe    hardware.Probe
	renderer Renderer
	logger   *slog.Logger

	// Injected for tests.
	rng   *rand.Rand
	now   func() time.Time
	sleep func(context.Context, time.Duration) error

	warnedNoOutput bool
}

// New creates a scheduler wired to the real clock and a time-seeded
// random source.
func New(confPath, runDir string, probe hardware.Probe, renderer Renderer, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		confPath: confPath,
		runDir:   runDir,
		probe:    probe,
		renderer: renderer,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Run executes ticks until the context is cancelled. Cancellation lands
// at whichever sleep or inter-beep gap is current; no event is resumed
// afterwards.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler started", "conf", s.confPath, "rundir", s.runDir)
	for {
		if err := s.runTick(ctx); err != nil {
			s.logger.Info("scheduler stopped", "reason", err)
			return err
		}
	}
}

// event is one fired sequence plus its pacing and the interval bounds to
// sleep afterwards.
type event struct {
	kind  string // "pattern" or "soundfile"
	beeps []pattern.BeepEvent

	gapMin, gapMax     time.Duration
	pauseMin, pauseMax time.Duration
	intMin, intMax     time.Duration

	profile   pattern.Profile
	variation int
	file      string
}

// runTick evaluates one scheduling cycle.
func (s *Scheduler) runTick(ctx context.Context) error {
	cfg := config.Load(s.confPath)
	st := state.Read(s.runDir)

	if !st.Enabled || quiet.InQuietHours(s.now(), cfg.QuietStart, cfg.QuietEnd, cfg.QuietEnabled) {
		return s.sleep(ctx, idlePoll)
	}

	ev := s.buildEvent(cfg, st)

	backend := output.Select(
		cfg.OutputMode,
		s.probe.PCSpkrAvailable(),
		s.probe.AudioAvailable(),
		cfg.RandomAudioPercent,
		s.rng.Intn(100),
	)
	if backend == output.BackendNone {
		if !s.warnedNoOutput {
			s.logger.Warn("no output backend available, dropping events until one appears")
			s.warnedNoOutput = true
		}
		return s.sleep(ctx, s.durBetween(ev.intMin, ev.intMax))
	}
	if s.warnedNoOutput {
		s.logger.Info("output backend available again", "backend", backend.String())
		s.warnedNoOutput = false
	}

	s.renderEvent(ctx, backend, cfg, ev)

	if pause := s.durBetween(ev.pauseMin, ev.pauseMax); pause > 0 {
		if err := s.sleep(ctx, pause); err != nil {
			return err
		}
	}
	return s.sleep(ctx, s.durBetween(ev.intMin, ev.intMax))
}

// buildEvent decides the event kind and produces its beep sequence.
func (s *Scheduler) buildEvent(cfg *config.Config, st state.State) event {
	if cfg.SoundFile.Enabled && s.rng.Intn(100) < soundFileChancePercent {
		if ev, ok := s.buildSoundFileEvent(cfg); ok {
			return ev
		}
		// No eligible files; fall through to a pattern event.
	}
	return s.buildPatternEvent(cfg, st)
}

func (s *Scheduler) buildPatternEvent(cfg *config.Config, st state.State) event {
	pc := cfg.Profiles[st.Profile]
	pat, idx := pattern.Variation(st.Profile, pc.EnabledVariations, s.rng.Intn(pattern.VariationsPerProfile))
	if st.Profile == pattern.ProfileWopr {
		pat = pattern.Jitter(pat, s.rng)
	}
	n := pc.BeepsMin + s.rng.Intn(pc.BeepsMax-pc.BeepsMin+1)
	pat = pattern.Resize(pat, n)
	return event{
		kind:      "pattern",
		beeps:     pat.Beeps,
		gapMin:    pat.GapMin,
		gapMax:    pat.GapMax,
		pauseMin:  pat.PauseMin,
		pauseMax:  pat.PauseMax,
		intMin:    pc.IntervalMin,
		intMax:    pc.IntervalMax,
		profile:   st.Profile,
		variation: idx,
	}
}

func (s *Scheduler) buildSoundFileEvent(cfg *config.Config) (event, bool) {
	files := listSoundFiles(cfg.SoundFile.Dir)
	if len(files) == 0 {
		return event{}, false
	}
	file := files[s.rng.Intn(len(files))]
	span := cfg.SoundFile.DurationMax - cfg.SoundFile.DurationMin
	seconds := cfg.SoundFile.DurationMin + s.rng.Float64()*span
	return event{
		kind:   "soundfile",
		beeps:  synth.Synthesize(file, seconds),
		gapMin: synth.EventGap,
		gapMax: synth.EventGap,
		intMin: cfg.SoundFile.IntervalMin,
		intMax: cfg.SoundFile.IntervalMax,
		file:   file,
	}, true
}

// renderEvent plays the sequence through the chosen backend. A failed
// beep drops the remainder of the event; the next tick's draw is the
// retry.
func (s *Scheduler) renderEvent(ctx context.Context, backend output.Backend, cfg *config.Config, ev event) {
	eventID := ulid.Make().String()
	log := s.logger.With("event_id", eventID, "kind", ev.kind, "backend", backend.String())
	if ev.kind == "soundfile" {
		log = log.With("file", ev.file)
	} else {
		log = log.With("profile", ev.profile, "variation", ev.variation)
	}
	log.Debug("firing event", "beeps", len(ev.beeps))

	opts := render.AudioOpts{
		Device: cfg.AudioDevice,
		Gain:   cfg.AudioGain,
		Limiter: render.LimiterOpts{
			Enabled:  cfg.Limiter.Enabled,
			Attack:   cfg.Limiter.Attack,
			Decay:    cfg.Limiter.Decay,
			SoftKnee: cfg.Limiter.SoftKnee,
			TargetDB: cfg.Limiter.TargetDB,
		},
	}

	for i, bp := range ev.beeps {
		if ctx.Err() != nil {
			return
		}
		var err error
		switch backend {
		case output.BackendPCSpkr:
			err = s.renderer.EmitPCSpkr(bp.Freq, bp.Dur)
		case output.BackendAudio:
			err = s.renderer.EmitAudio(bp.Freq, bp.Dur, opts)
		}
		if err != nil {
			log.Warn("render failed, dropping event", "beep", i, "error", err)
			return
		}
		if i < len(ev.beeps)-1 {
			if s.sleep(ctx, s.durBetween(ev.gapMin, ev.gapMax)) != nil {
				return
			}
		}
	}
}

// durBetween draws uniformly from [min, max]; a degenerate range returns
// min.
func (s *Scheduler) durBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.rng.Int63n(int64(max-min)+1))
}

// listSoundFiles returns the eligible files in dir, sorted by ReadDir.
func listSoundFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if soundFileExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

// sleepCtx is a context-aware timed wait.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
