// Package output decides which rendering backend a fired event goes to.
// The selection function is pure: hardware availability and the random
// draw are supplied by the caller, so every branch of the fallback table
// is unit-testable.
package output

// Mode is the operator-configured output preference.
type Mode string

const (
	ModePCSpkr Mode = "pcspkr"
	ModeAudio  Mode = "audio"
	ModeRandom Mode = "random"
)

// ParseMode resolves a mode name; anything unknown falls back to random.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModePCSpkr, ModeAudio, ModeRandom:
		return Mode(s)
	}
	return ModeRandom
}

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModePCSpkr, ModeAudio, ModeRandom:
		return true
	}
	return false
}

// Backend is a resolved rendering path.
type Backend int

const (
	// BackendNone means no output is possible; the event is dropped.
	BackendNone Backend = iota
	// BackendPCSpkr is the PC-speaker buzzer.
	BackendPCSpkr
	// BackendAudio is the external audio sink.
	BackendAudio
)

func (b Backend) String() string {
	switch b {
	case BackendPCSpkr:
		return "pcspkr"
	case BackendAudio:
		return "audio"
	default:
		return "none"
	}
}

// Select resolves the backend for one event. percent is the chance of
// choosing audio in random mode; draw is a caller-supplied uniform integer
// in [0,100). The preferred backend falls back to the other one when
// unavailable, and to none when neither works.
func Select(mode Mode, pcspkrOK, audioOK bool, percent, draw int) Backend {
	switch mode {
	case ModePCSpkr:
		switch {
		case pcspkrOK:
			return BackendPCSpkr
		case audioOK:
			return BackendAudio
		}
	case ModeAudio:
		switch {
		case audioOK:
			return BackendAudio
		case pcspkrOK:
			return BackendPCSpkr
		}
	case ModeRandom:
		switch {
		case pcspkrOK && audioOK:
			if draw < percent {
				return BackendAudio
			}
			return BackendPCSpkr
		case audioOK:
			return BackendAudio
		case pcspkrOK:
			return BackendPCSpkr
		}
	}
	return BackendNone
}
