package quiet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"22:00", 22 * 60, false},
		{"07:00", 7 * 60, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{" 9:30 ", 9*60 + 30, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "22:00", FormatClock(22*60))
	assert.Equal(t, "07:05", FormatClock(7*60+5))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestInQuietHours_SpansMidnight(t *testing.T) {
	start := 22 * 60 // 22:00
	end := 7 * 60    // 07:00

	assert.True(t, InQuietHours(at(23, 30), start, end, true))
	assert.True(t, InQuietHours(at(6, 59), start, end, true))
	assert.False(t, InQuietHours(at(12, 0), start, end, true))
	assert.True(t, InQuietHours(at(22, 0), start, end, true), "window start is inclusive")
	assert.False(t, InQuietHours(at(7, 0), start, end, true), "window end is exclusive")
}

func TestInQuietHours_SameDayWindow(t *testing.T) {
	start := 9 * 60 // 09:00
	end := 17 * 60  // 17:00

	assert.True(t, InQuietHours(at(9, 0), start, end, true))
	assert.True(t, InQuietHours(at(12, 30), start, end, true))
	assert.False(t, InQuietHours(at(17, 0), start, end, true))
	assert.False(t, InQuietHours(at(8, 59), start, end, true))
	assert.False(t, InQuietHours(at(23, 0), start, end, true))
}

func TestInQuietHours_EqualBoundsAlwaysQuiet(t *testing.T) {
	w := 10 * 60
	assert.True(t, InQuietHours(at(0, 0), w, w, true))
	assert.True(t, InQuietHours(at(10, 0), w, w, true))
	assert.True(t, InQuietHours(at(23, 59), w, w, true))
}

func TestInQuietHours_DisabledNeverQuiet(t *testing.T) {
	start := 22 * 60
	end := 7 * 60

	assert.False(t, InQuietHours(at(23, 30), start, end, false))
	assert.False(t, InQuietHours(at(3, 0), start, end, false))
	assert.False(t, InQuietHours(at(22, 0), 10*60, 10*60, false))
}
