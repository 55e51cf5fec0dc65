package timecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	t.Parallel()

	p, err := NewPeriod("2024-06-01", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, Period{Start: "2024-06-01", End: "2024-06-15"}, p)

	// endpoints normalize to canonical form
	p, err = NewPeriod("06/01/2024", "2024-06-15T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, Period{Start: "2024-06-01", End: "2024-06-15"}, p)

	// one-day period is valid
	_, err = NewPeriod("2024-06-01", "2024-06-01")
	assert.NoError(t, err)
}

func TestNewPeriod_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
	}{
		{"empty start", "", "2024-06-15"},
		{"empty end", "2024-06-01", ""},
		{"malformed start", "June 1st", "2024-06-15"},
		{"end precedes start", "2024-06-15", "2024-06-01"},
	}
	for _, c := range cases {
		_, err := NewPeriod(c.start, c.end)
		assert.ErrorIs(t, err, ErrInvalidPeriod, c.name)
	}
}

func TestPeriodContains(t *testing.T) {
	t.Parallel()

	p := Period{Start: "2024-06-01", End: "2024-06-15"}
	assert.True(t, p.Contains("2024-06-01"))
	assert.True(t, p.Contains("2024-06-15"))
	assert.False(t, p.Contains("2024-05-31"))
	assert.False(t, p.Contains("2024-06-16"))

	// empty endpoints are unbounded
	assert.True(t, Period{}.Contains("1999-01-01"))
	assert.True(t, Period{Start: "2024-06-01"}.Contains("2030-12-31"))
	assert.False(t, Period{End: "2024-06-15"}.Contains("2024-06-16"))
}
