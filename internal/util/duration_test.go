package util

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseDuration inverts ConvertSecondsToDuration for the round-trip checks.
func parseDuration(t *testing.T, s string) int {
	t.Helper()
	total := 0
	for _, part := range strings.Fields(s) {
		unit := part[len(part)-1]
		n, err := strconv.Atoi(part[:len(part)-1])
		require.NoError(t, err)
		switch unit {
		case 'h':
			total += n * 3600
		case 'm':
			total += n * 60
		case 's':
			total += n
		default:
			t.Fatalf("unexpected unit %q in %q", unit, part)
		}
	}
	return total
}

func TestConvertSecondsToDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{-5, "0s"},
		{59, "59s"},
		{60, "1m"},
		{61, "1m 1s"},
		{3600, "1h"},
		{3601, "1h 1s"},
		{3660, "1h 1m"},
		{3661, "1h 1m 1s"},
		{7322, "2h 2m 2s"},
		{86399, "23h 59m 59s"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ConvertSecondsToDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestConvertSecondsToDuration_RoundTrip(t *testing.T) {
	for _, seconds := range []int{1, 59, 60, 61, 3599, 3600, 3661, 45296, 359999} {
		got := ConvertSecondsToDuration(seconds)
		assert.Equal(t, seconds, parseDuration(t, got), "formatted as %q", got)
	}
}

func TestCoerceSeconds(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"0", 0},
		{"61", 61},
		{"90.5", 90},
		{"", 0},
		{"n/a", 0},
		{"-30", 0},
		{"-1.5", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceSeconds(tc.raw), "raw=%q", tc.raw)
	}
}
