package hardware

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProbe(t *testing.T) *SystemProbe {
	t.Helper()
	p := NewSystemProbe(nil)
	dir := t.TempDir()
	p.modulesPath = filepath.Join(dir, "modules")
	p.cardsPath = filepath.Join(dir, "cards")
	p.soundClass = filepath.Join(dir, "sound")
	return p
}

func TestPCSpkrAvailable_NoModulesFile(t *testing.T) {
	p := newTestProbe(t)
	assert.False(t, p.PCSpkrAvailable())
}

func TestPCSpkrAvailable_ModuleNotLoaded(t *testing.T) {
	p := newTestProbe(t)
	require.NoError(t, os.WriteFile(p.modulesPath, []byte("snd_hda_intel 16384 0 - Live\n"), 0644))
	assert.False(t, p.PCSpkrAvailable())
}

func TestPCSpkrAvailable_ModuleLoadedWithBeep(t *testing.T) {
	p := newTestProbe(t)
	require.NoError(t, os.WriteFile(p.modulesPath, []byte("pcspkr 12288 0 - Live\n"), 0644))

	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "beep"), []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", binDir)

	assert.True(t, p.PCSpkrAvailable())
}

func TestAudioAvailable_CardsFile(t *testing.T) {
	p := newTestProbe(t)
	cards := " 0 [PCH            ]: HDA-Intel - HDA Intel PCH\n" +
		"                      HDA Intel PCH at 0xf7f10000 irq 32\n"
	require.NoError(t, os.WriteFile(p.cardsPath, []byte(cards), 0644))
	assert.True(t, p.AudioAvailable())
}

func TestAudioAvailable_EmptyCardsFile(t *testing.T) {
	p := newTestProbe(t)
	require.NoError(t, os.WriteFile(p.cardsPath, []byte("--- no soundcards ---\n"), 0644))
	assert.False(t, p.AudioAvailable())
}

func TestAudioAvailable_SysfsFallback(t *testing.T) {
	p := newTestProbe(t)
	require.NoError(t, os.MkdirAll(filepath.Join(p.soundClass, "card0"), 0755))
	assert.True(t, p.AudioAvailable())
}

func TestDetectAudioDevice_NoHardware(t *testing.T) {
	p := newTestProbe(t)
	assert.Equal(t, "", p.DetectAudioDevice())
}

func TestProbeLogsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	p := NewSystemProbe(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	dir := t.TempDir()
	p.modulesPath = filepath.Join(dir, "modules")
	p.cardsPath = filepath.Join(dir, "cards")
	p.soundClass = filepath.Join(dir, "sound")

	assert.False(t, p.PCSpkrAvailable())
	assert.Contains(t, buf.String(), "pcspkr module not loaded")
}
