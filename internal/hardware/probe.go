// Package hardware reports which rendering backends the machine can drive.
// The daemon depends only on the Probe interface so selection logic can be
// tested with injected availability.
package hardware

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Probe reports backend availability. Implementations are re-queried on
// every scheduling decision rather than cached, so hot-plugged devices are
// picked up within one tick.
type Probe interface {
	PCSpkrAvailable() bool
	AudioAvailable() bool
	DetectAudioDevice() string
}

// SystemProbe inspects the local machine: kernel module list and input
// device nodes for the PC speaker, ALSA card listings for audio.
type SystemProbe struct {
	logger *slog.Logger

	// Overridable for tests.
	modulesPath string
	cardsPath   string
	soundClass  string
}

// NewSystemProbe creates a probe for the local machine.
func NewSystemProbe(logger *slog.Logger) *SystemProbe {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemProbe{
		logger:      logger,
		modulesPath: "/proc/modules",
		cardsPath:   "/proc/asound/cards",
		soundClass:  "/sys/class/sound",
	}
}

// PCSpkrAvailable reports whether the pcspkr buzzer looks usable: the
// kernel module is loaded and the beep binary is on PATH. Device nodes
// under /dev/input confirm it, but a loaded module alone is accepted since
// some platforms expose the speaker without an input node.
func (p *SystemProbe) PCSpkrAvailable() bool {
	data, err := os.ReadFile(p.modulesPath)
	if err != nil || !strings.Contains(string(data), "pcspkr") {
		p.logger.Debug("pcspkr module not loaded", "path", p.modulesPath)
		return false
	}
	if _, err := exec.LookPath("beep"); err != nil {
		p.logger.Debug("beep binary not found on PATH")
		return false
	}
	for _, node := range []string{
		"/dev/input/by-path/platform-pcspkr-event-spkr",
		"/dev/input/by-path/platform-pcspkr",
	} {
		if _, err := os.Stat(node); err == nil {
			return true
		}
	}
	return true
}

// AudioAvailable reports whether any sound card is present.
func (p *SystemProbe) AudioAvailable() bool {
	if data, err := os.ReadFile(p.cardsPath); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			// Card lines look like " 0 [PCH   ]: HDA-Intel - ..."
			trimmed := strings.TrimLeft(line, " ")
			if trimmed != line && len(trimmed) > 0 && trimmed[0] >= '0' && trimmed[0] <= '9' {
				return true
			}
		}
	}
	cards, err := filepath.Glob(filepath.Join(p.soundClass, "card*"))
	return err == nil && len(cards) > 0
}

// DetectAudioDevice picks the best playback device, preferring pipewire
// and pulse bridges over raw ALSA. Returns "default" when nothing better
// answers and the empty string when no audio hardware exists at all.
func (p *SystemProbe) DetectAudioDevice() string {
	if !p.AudioAvailable() {
		return ""
	}
	for _, dev := range []string{"pipewire", "pulse"} {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := exec.CommandContext(ctx, "aplay", "-D", dev, "-l").Run()
		cancel()
		if err == nil {
			p.logger.Debug("audio device detected", "device", dev)
			return dev
		}
	}
	p.logger.Debug("no bridge device answered, using default")
	return "default"
}
