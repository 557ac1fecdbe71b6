package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISO8601DateTime_RoundTrip(t *testing.T) {
	tests := []struct {
		in        string
		precision Precision
	}{
		{"20240131093000+1000", PrecisionSecond},
		{"20240131093000+0000", PrecisionSecond},
		{"202401310930+0930", PrecisionMinute},
		{"19630524", PrecisionDay},
		{"196305", PrecisionMonth},
		{"1963", PrecisionYear},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d ISO8601DateTime
			require.NoError(t, d.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.precision, d.Precision)

			out, err := d.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.in, string(out))
		})
	}
}

func TestParseISO8601DateTime(t *testing.T) {
	ts, p, err := ParseISO8601DateTime("20240131093000.123+1000")
	require.NoError(t, err)
	assert.Equal(t, PrecisionSecond, p)
	_, off := ts.Zone()
	assert.Equal(t, 10*3600, off)
	assert.Equal(t, time.Date(2024, 1, 30, 23, 30, 0, 0, time.UTC), ts.UTC())

	ts, _, err = ParseISO8601DateTime("20240131093000")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())

	for _, bad := range []string{"", "2024013", "20240131+1000", "2024133"} {
		_, _, err := ParseISO8601DateTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestISO8601DateTime_Ordering(t *testing.T) {
	birth := Date(1963, time.May, 24)
	death := Date(2020, time.January, 2)
	assert.True(t, birth.Before(death))
	assert.True(t, death.After(birth))
	assert.Equal(t, "19630524", birth.String())
	assert.True(t, ISO8601DateTime{}.IsZero())
}
