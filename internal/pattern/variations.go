package pattern

import "time"

// b is a table-literal shorthand for a beep event with a millisecond duration.
func b(freq, ms int) BeepEvent {
	return BeepEvent{Freq: freq, Dur: time.Duration(ms) * time.Millisecond}
}

// seq builds a variation with the profile's pacing hints attached.
func seq(gapMin, gapMax, pauseMin, pauseMax time.Duration, beeps ...BeepEvent) Pattern {
	return Pattern{
		Beeps:    beeps,
		GapMin:   gapMin,
		GapMax:   gapMax,
		PauseMin: pauseMin,
		PauseMax: pauseMax,
	}
}

func variationTable(profile Profile) *[VariationsPerProfile]Pattern {
	switch profile {
	case ProfileWopr:
		return &woprVariations
	case ProfileAliensTerm:
		return &alienstermVariations
	case ProfileModem:
		return &modemVariations
	default:
		return &mainframeVariations
	}
}

// WOPR: fast, chatty, highly varied. Short gaps and short rests.
var woprVariations = [VariationsPerProfile]Pattern{
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(1200, 40), b(900, 35), b(1600, 50)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(700, 70), b(1100, 40), b(700, 40)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(300, 200)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(1500, 30), b(1700, 30), b(1900, 40)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(800, 60), b(600, 80)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(1000, 35), b(1000, 35), b(600, 120)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(400, 140), b(900, 50)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(500, 25), b(1200, 45), b(800, 60)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(600, 100)),
	seq(50*time.Millisecond, 400*time.Millisecond, 200*time.Millisecond, 1500*time.Millisecond,
		b(1300, 20), b(900, 50), b(700, 80), b(1100, 40)),
}

// Mainframe: slow, low, ambient. Long rests between events.
var mainframeVariations = [VariationsPerProfile]Pattern{
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(300, 80)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(300, 80)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(300, 80)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(260, 120)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(260, 120)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(420, 60), b(320, 60)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(220, 180)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(500, 30), b(500, 30)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(500, 30), b(500, 30)),
	seq(40*time.Millisecond, 90*time.Millisecond, 4*time.Second, 11*time.Second, b(180, 260)),
}

// Alien terminal: eerie sweeps and glissandi.
var alienstermVariations = [VariationsPerProfile]Pattern{
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1400, 35), b(1200, 35), b(1000, 45)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1400, 35), b(1200, 35), b(1000, 45)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1800, 25), b(700, 90)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1600, 40), b(2000, 20), b(1600, 40)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1600, 40), b(2000, 20), b(1600, 40)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(900, 60), b(1300, 60), b(900, 60)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(2100, 18), b(1900, 18), b(1700, 18), b(1500, 18)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(600, 160), b(1400, 40)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(1000, 30), b(1500, 30), b(2000, 30), b(1200, 60)),
	seq(30*time.Millisecond, 80*time.Millisecond, 200*time.Millisecond, 900*time.Millisecond,
		b(2400, 15), b(800, 120)),
}

// Modem: dial, ring, handshake and carrier stages. DTMF digit pairs are
// rendered as alternating single tones since the buzzer is monophonic.
var modemVariations = [VariationsPerProfile]Pattern{
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(350, 300), b(697, 70), b(770, 70), b(852, 70), b(941, 70)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(440, 250), b(480, 250)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(2100, 400), b(1200, 90), b(2250, 90)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(1270, 60), b(1070, 60), b(1270, 60), b(1070, 60)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(1800, 40), b(980, 40), b(1650, 40), b(1150, 40)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(697, 60), b(1209, 60), b(770, 60), b(1336, 60), b(852, 60), b(1477, 60)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(2400, 120), b(1200, 120), b(2400, 120)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(480, 250), b(620, 250), b(480, 250)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(1100, 80), b(2200, 80), b(1100, 80), b(2200, 80)),
	seq(20*time.Millisecond, 100*time.Millisecond, 1*time.Second, 3*time.Second,
		b(2100, 200), b(1070, 160), b(980, 300)),
}
