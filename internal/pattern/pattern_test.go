package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	assert.Equal(t, ProfileWopr, ParseProfile("wopr"))
	assert.Equal(t, ProfileModem, ParseProfile("modem"))
	assert.Equal(t, ProfileMainframe, ParseProfile("not-a-profile"))
	assert.Equal(t, ProfileMainframe, ParseProfile(""))
}

func TestVariation_EveryProfileHasTen(t *testing.T) {
	for _, prof := range Profiles() {
		for draw := 0; draw < VariationsPerProfile; draw++ {
			pat, idx := Variation(prof, nil, draw)
			assert.Equal(t, draw, idx, "unrestricted draw maps straight to its index")
			require.NotEmpty(t, pat.Beeps, "%s variation %d", prof, draw)
			for _, bp := range pat.Beeps {
				assert.Greater(t, bp.Freq, 0)
				assert.Greater(t, bp.Dur, time.Duration(0))
			}
		}
	}
}

func TestVariation_EnabledSetRespected(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		_, idx := Variation(ProfileWopr, []int{0, 1}, rng.Intn(VariationsPerProfile))
		assert.Contains(t, []int{0, 1}, idx)
	}
}

func TestVariation_EmptyOrInvalidSetMeansAll(t *testing.T) {
	seen := make(map[int]bool)
	for draw := 0; draw < VariationsPerProfile; draw++ {
		_, idx := Variation(ProfileMainframe, nil, draw)
		seen[idx] = true
	}
	assert.Len(t, seen, VariationsPerProfile)

	// Out-of-range entries are dropped; a set with nothing left falls
	// back to all ten.
	_, idx := Variation(ProfileMainframe, []int{-3, 42}, 7)
	assert.Equal(t, 7, idx)
}

func TestVariation_SetIsSortedAndDeduped(t *testing.T) {
	for draw := 0; draw < VariationsPerProfile; draw++ {
		_, idx := Variation(ProfileModem, []int{9, 2, 2, 5}, draw)
		assert.Contains(t, []int{2, 5, 9}, idx)
	}
}

func TestResize(t *testing.T) {
	pat, _ := Variation(ProfileWopr, nil, 0)
	require.Len(t, pat.Beeps, 3)

	grown := Resize(pat, 7)
	assert.Len(t, grown.Beeps, 7)
	assert.Equal(t, pat.Beeps[0], grown.Beeps[0])
	assert.Equal(t, pat.Beeps[0], grown.Beeps[3], "sequence cycles from its start")
	assert.Equal(t, pat.Beeps[1], grown.Beeps[4])

	shrunk := Resize(pat, 1)
	assert.Len(t, shrunk.Beeps, 1)

	floor := Resize(pat, 0)
	assert.Len(t, floor.Beeps, 1)

	// The original stays untouched.
	assert.Len(t, pat.Beeps, 3)
}

func TestJitter_StaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pat, _ := Variation(ProfileWopr, nil, 9)
	for i := 0; i < 500; i++ {
		jittered := Jitter(pat, rng)
		require.Len(t, jittered.Beeps, len(pat.Beeps))
		for _, bp := range jittered.Beeps {
			assert.GreaterOrEqual(t, bp.Freq, 100)
			assert.LessOrEqual(t, bp.Freq, 3000)
			assert.GreaterOrEqual(t, bp.Dur, 10*time.Millisecond)
			assert.LessOrEqual(t, bp.Dur, 800*time.Millisecond)
		}
	}
}
