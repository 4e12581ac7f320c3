// Package state reads and writes the daemon's runtime-state files: one
// holding "0"|"1" for enabled, one holding the active profile name. The
// control CLI owns the write side; the daemon only reads, re-reading every
// tick and treating anything invalid as "use the default". Reads take no
// locks; a stale-but-valid prior value is acceptable, atomicity of
// updates is the writer's concern.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retrosfx/retrosfx/internal/pattern"
)

// DefaultRunDir is the runtime directory unless overridden.
const DefaultRunDir = "/run/retro-sfx"

const (
	enabledFile = "enabled"
	profileFile = "profile"
)

// State is one runtime-state snapshot.
type State struct {
	Enabled bool
	Profile pattern.Profile
}

// Read loads the current runtime state from dir. Missing or malformed
// files resolve to the defaults: enabled, mainframe.
func Read(dir string) State {
	st := State{Enabled: true, Profile: pattern.DefaultProfile}
	if data, err := os.ReadFile(filepath.Join(dir, enabledFile)); err == nil {
		st.Enabled = strings.TrimSpace(string(data)) != "0"
	}
	if data, err := os.ReadFile(filepath.Join(dir, profileFile)); err == nil {
		st.Profile = pattern.ParseProfile(strings.TrimSpace(string(data)))
	}
	return st
}

// EnabledPath returns the path of the enabled flag file.
func EnabledPath(dir string) string {
	return filepath.Join(dir, enabledFile)
}

// ProfilePath returns the path of the active-profile file.
func ProfilePath(dir string) string {
	return filepath.Join(dir, profileFile)
}

// WriteEnabled sets the enabled flag, creating the run dir if needed.
func WriteEnabled(dir string, on bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create run dir: %w", err)
	}
	v := "0"
	if on {
		v = "1"
	}
	return os.WriteFile(EnabledPath(dir), []byte(v+"\n"), 0644)
}

// WriteProfile sets the active profile, creating the run dir if needed.
func WriteProfile(dir string, p pattern.Profile) error {
	if !p.Valid() {
		return fmt.Errorf("invalid profile %q", p)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create run dir: %w", err)
	}
	return os.WriteFile(ProfilePath(dir), []byte(string(p)+"\n"), 0644)
}

// Seed creates the state files with defaults when they do not exist yet,
// so a freshly started daemon and CLI agree on the initial state.
func Seed(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create run dir: %w", err)
	}
	if _, err := os.Stat(EnabledPath(dir)); os.IsNotExist(err) {
		if err := WriteEnabled(dir, true); err != nil {
			return err
		}
	}
	if _, err := os.Stat(ProfilePath(dir)); os.IsNotExist(err) {
		if err := WriteProfile(dir, pattern.DefaultProfile); err != nil {
			return err
		}
	}
	return nil
}
