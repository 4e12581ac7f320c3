// Package synth converts a sound file's identity into a buzzer-safe beep
// sequence. No audio is decoded: the file's path string is hashed and the
// digest drives the tones, so identical inputs always produce identical
// sequences.
package synth

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/retrosfx/retrosfx/internal/pattern"
)

// EventGap is the fixed pacing gap a renderer should leave between
// synthesized beeps. It is a rendering hint, not part of the sequence.
const EventGap = 50 * time.Millisecond

const (
	minBeeps = 5
	maxBeeps = 15

	minFreq  = 200
	freqSpan = 1800

	minBeepMs = 50
	maxBeepMs = 200
)

// Synthesize derives an ordered beep sequence from a file identifier and a
// target play duration in seconds.
//
// The identifier's MD5 digest is rendered as 32 hex characters and read in
// 2-character windows at offset (i*2) mod 32. The offset wraps modulo the
// digest length, though with at most 15 beeps it never actually does. Each
// window's byte value picks the beep's frequency in [200,2000] Hz and its
// duration, clamped to [50,200] ms around the even per-beep segment.
func Synthesize(id string, seconds float64) []pattern.BeepEvent {
	sum := md5.Sum([]byte(id))
	digest := hex.EncodeToString(sum[:])

	numBeeps := int(5 + seconds*2)
	if numBeeps < minBeeps {
		numBeeps = minBeeps
	}
	if numBeeps > maxBeeps {
		numBeeps = maxBeeps
	}
	segmentMs := int(seconds*1000) / numBeeps

	beeps := make([]pattern.BeepEvent, 0, numBeeps)
	for i := 0; i < numBeeps; i++ {
		off := (i * 2) % len(digest)
		v, err := strconv.ParseUint(digest[off:off+2], 16, 8)
		if err != nil {
			// Unreachable for a hex digest; keep the sequence length stable.
			v = 50
		}
		freq := minFreq + int(v)*freqSpan/255
		durMs := segmentMs + int(v)%150
		if durMs < minBeepMs {
			durMs = minBeepMs
		}
		if durMs > maxBeepMs {
			durMs = maxBeepMs
		}
		beeps = append(beeps, pattern.BeepEvent{
			Freq: freq,
			Dur:  time.Duration(durMs) * time.Millisecond,
		})
	}
	return beeps
}
