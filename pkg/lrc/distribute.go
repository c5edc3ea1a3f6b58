package lrc

import (
	"math"
	"strings"
)

// DefaultSpacingMs is the gap between lines when the media duration is unknown.
const DefaultSpacingMs = 2000

// DistributeTimestamps spreads non-blank lines evenly over totalDurationMs and
// returns them as tagged text, one "[mm:ss.cc] text" per line.
// A zero or negative duration falls back to DefaultSpacingMs between lines.
func DistributeTimestamps(lines []string, totalDurationMs float64) string {
	return DistributeTimestampsWithSpacing(lines, totalDurationMs, DefaultSpacingMs)
}

// DistributeTimestampsWithSpacing is DistributeTimestamps with a custom
// fallback spacing for unknown durations.
func DistributeTimestampsWithSpacing(lines []string, totalDurationMs float64, spacingMs int) string {
	var kept []string
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	offsets := Offsets(len(kept), totalDurationMs, spacingMs)

	var b strings.Builder
	for i, text := range kept {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatTag(offsets[i]))
		b.WriteByte(' ')
		b.WriteString(text)
	}
	return b.String()
}

// DistributeText splits raw plain text into lines and distributes them.
func DistributeText(text string, totalDurationMs float64, spacingMs int) string {
	return DistributeTimestampsWithSpacing(splitLines(text), totalDurationMs, spacingMs)
}

// Offsets returns the offsets assigned to n lines: floor(i*d/n) for a known
// duration d, otherwise i*spacingMs.
func Offsets(n int, totalDurationMs float64, spacingMs int) []int {
	out := make([]int, n)
	for i := range out {
		if totalDurationMs > 0 {
			out[i] = int(math.Floor(float64(i) * totalDurationMs / float64(n)))
		} else {
			out[i] = i * spacingMs
		}
	}
	return out
}
