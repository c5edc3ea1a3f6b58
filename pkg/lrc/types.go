// Package lrc parses LRC-style timed lyrics and resolves the active line for a
// playback position.
package lrc

import (
	"fmt"
	"strings"
)

// Untimed is the offset of a line with no known position.
const Untimed = -1

// Line is a single lyric line.
type Line struct {
	// OffsetMs is the number of milliseconds from media start at which the
	// line becomes active, or Untimed.
	OffsetMs int `json:"offset_ms"`

	// Text is the lyric content with the tag stripped and whitespace trimmed.
	Text string `json:"text"`
}

// Timed returns true if the line has a known offset.
func (l Line) Timed() bool {
	return l.OffsetMs != Untimed
}

// Mode selects how raw text is interpreted.
type Mode string

const (
	// ModeTimed parses [mm:ss.xx] tags.
	ModeTimed Mode = "timed"
	// ModePlain treats every line as untimed text.
	ModePlain Mode = "plain"
)

// ParseMode converts a user-supplied mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "timed", "lrc":
		return ModeTimed, nil
	case "plain", "txt", "text":
		return ModePlain, nil
	default:
		return "", fmt.Errorf("unknown mode %q (use timed or plain)", s)
	}
}
