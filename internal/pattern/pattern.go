// Package pattern provides the per-profile beep sequence library.
// Each profile carries ten fixed variations; selection, beep-count
// resizing and jitter all take caller-supplied randomness so the
// scheduler stays testable with fixed draws.
package pattern

import (
	"math/rand"
	"sort"
	"time"
)

// Profile identifies a sound personality.
type Profile string

const (
	ProfileWopr       Profile = "wopr"
	ProfileMainframe  Profile = "mainframe"
	ProfileAliensTerm Profile = "aliensterm"
	ProfileModem      Profile = "modem"
)

// DefaultProfile is used whenever the runtime state holds an unknown name.
const DefaultProfile = ProfileMainframe

// VariationsPerProfile is the number of fixed variations each profile has.
const VariationsPerProfile = 10

// Profiles returns all known profiles in a stable order.
func Profiles() []Profile {
	return []Profile{ProfileWopr, ProfileMainframe, ProfileAliensTerm, ProfileModem}
}

// ParseProfile resolves a profile name, falling back to the default for
// anything it does not recognise.
func ParseProfile(s string) Profile {
	p := Profile(s)
	if p.Valid() {
		return p
	}
	return DefaultProfile
}

// Valid reports whether p names a known profile.
func (p Profile) Valid() bool {
	switch p {
	case ProfileWopr, ProfileMainframe, ProfileAliensTerm, ProfileModem:
		return true
	}
	return false
}

// BeepEvent is a single tone: frequency in Hz and how long to hold it.
type BeepEvent struct {
	Freq int
	Dur  time.Duration
}

// Pattern is an ordered beep sequence plus pacing hints: the gap range
// between beeps and the pause range after the whole pattern. The hints
// guide the renderer; they are not part of the sequence itself.
type Pattern struct {
	Beeps    []BeepEvent
	GapMin   time.Duration
	GapMax   time.Duration
	PauseMin time.Duration
	PauseMax time.Duration
}

// Variation picks one of the profile's ten variations. The enabled set
// restricts which indices may be returned; selection remaps the draw by
// modulo of the enabled set's size, so it can never loop and never lands
// outside the set. An empty or fully-invalid set falls back to all ten.
// The draw must be in [0, VariationsPerProfile). Returns the pattern and
// the chosen index.
func Variation(profile Profile, enabled []int, draw int) (Pattern, int) {
	set := normalizeEnabled(enabled)
	if draw < 0 {
		draw = 0
	}
	idx := set[draw%len(set)]
	return variationTable(profile)[idx], idx
}

// normalizeEnabled filters the set to valid indices, sorts and dedupes.
// Empty input means every variation is playable.
func normalizeEnabled(enabled []int) []int {
	seen := make(map[int]bool, len(enabled))
	var set []int
	for _, v := range enabled {
		if v >= 0 && v < VariationsPerProfile && !seen[v] {
			seen[v] = true
			set = append(set, v)
		}
	}
	if len(set) == 0 {
		set = make([]int, VariationsPerProfile)
		for i := range set {
			set[i] = i
		}
		return set
	}
	sort.Ints(set)
	return set
}

// Resize cycles the pattern's beeps to exactly n events. A pattern shorter
// than n repeats from its start; n < 1 is treated as 1.
func Resize(p Pattern, n int) Pattern {
	if n < 1 {
		n = 1
	}
	if len(p.Beeps) == 0 {
		return p
	}
	beeps := make([]BeepEvent, n)
	for i := range beeps {
		beeps[i] = p.Beeps[i%len(p.Beeps)]
	}
	out := p
	out.Beeps = beeps
	return out
}

// Jitter clamp bounds for the WOPR profile's randomization.
const (
	jitterFreqSpread = 200
	jitterFreqMin    = 100
	jitterFreqMax    = 3000
	jitterDurMin     = 10 * time.Millisecond
	jitterDurMax     = 800 * time.Millisecond
)

// Jitter returns a copy of the pattern with WOPR-style randomization:
// each frequency shifted by up to +/-200 Hz and each duration scaled
// between 20% and 500%, both clamped to audible bounds.
func Jitter(p Pattern, rng *rand.Rand) Pattern {
	beeps := make([]BeepEvent, len(p.Beeps))
	for i, b := range p.Beeps {
		freq := b.Freq + rng.Intn(2*jitterFreqSpread+1) - jitterFreqSpread
		if freq < jitterFreqMin {
			freq = jitterFreqMin
		}
		if freq > jitterFreqMax {
			freq = jitterFreqMax
		}
		mult := 0.2 + rng.Float64()*4.8
		dur := time.Duration(float64(b.Dur) * mult)
		if dur < jitterDurMin {
			dur = jitterDurMin
		}
		if dur > jitterDurMax {
			dur = jitterDurMax
		}
		beeps[i] = BeepEvent{Freq: freq, Dur: dur}
	}
	out := p
	out.Beeps = beeps
	return out
}
