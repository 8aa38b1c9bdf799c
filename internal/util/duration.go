package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertSecondsToDuration renders a second count as "1h 1m 1s", dropping
// zero-valued units. Zero total renders as "0s". Parsing the output back
// always recovers the original count.
func ConvertSecondsToDuration(totalSeconds int) string {
	if totalSeconds <= 0 {
		return "0s"
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// CoerceSeconds parses a stored duration value into whole seconds.
// Values arrive as strings, occasionally fractional; anything missing or
// malformed counts as zero.
func CoerceSeconds(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f < 0 {
			return 0
		}
		return int(f)
	}
	return 0
}
