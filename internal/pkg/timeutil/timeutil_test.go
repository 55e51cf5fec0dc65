package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Clock
	}{
		{"07:00", NewClock(7, 0)},
		{"17:30", NewClock(17, 30)},
		{"08:15:30", NewClock(8, 15)},
		{"2024-03-04T09:45:00Z", NewClock(9, 45)},
		{"2024-03-04 09:45", NewClock(9, 45)},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}

	for _, bad := range []string{"", "  ", "25:00 oclock", "noon"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"2024-03-04", "2024-03-04"},
		{"2024-03-04T09:45:00Z", "2024-03-04"},
		{"03/04/2024", "2024-03-04"},
		{" 2024-03-04 ", "2024-03-04"},
	}
	for _, c := range cases {
		got, err := NormalizeDate(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}

	for _, bad := range []string{"", "4th of March", "2024-13-40"} {
		_, err := NormalizeDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestOverlapMinutes(t *testing.T) {
	t.Parallel()

	lunchStart, lunchEnd := NewClock(12, 0), NewClock(13, 0)

	// fully covering lunch
	assert.Equal(t, 60, OverlapMinutes(NewClock(8, 0), NewClock(17, 0), lunchStart, lunchEnd))
	// partially into lunch
	assert.Equal(t, 30, OverlapMinutes(NewClock(8, 0), NewClock(12, 30), lunchStart, lunchEnd))
	// disjoint
	assert.Equal(t, 0, OverlapMinutes(NewClock(13, 0), NewClock(17, 0), lunchStart, lunchEnd))
	assert.Equal(t, 0, OverlapMinutes(NewClock(8, 0), NewClock(12, 0), lunchStart, lunchEnd))
}

func TestRounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7.53, Round2(7.526))
	assert.Equal(t, 7.52, Round2(7.524))
	assert.Equal(t, 0.938, Round3(0.9375))
}

func TestClockString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "07:05", NewClock(7, 5).String())
	assert.Equal(t, "17:30", NewClock(17, 30).String())
}
