package lrc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timestampPattern matches the inside of a tag: minutes:seconds[.fraction].
var timestampPattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?:[.:](\d{1,3}))?$`)

// ParseTimestamp converts a tag body like "01:23.45" to milliseconds.
// Returns false if the tag does not have the minutes:seconds[.fraction] shape.
//
// A fraction whose integer value is below 100 is read as centiseconds, anything
// else as milliseconds, so "99" is 990ms while "100" is 100ms. Minutes and
// seconds are not range checked.
func ParseTimestamp(tag string) (int, bool) {
	m := timestampPattern.FindStringSubmatch(strings.TrimSpace(tag))
	if m == nil {
		return 0, false
	}

	mm, _ := strconv.Atoi(m[1])
	ss, _ := strconv.Atoi(m[2])

	frac := 0
	if m[3] != "" {
		frac, _ = strconv.Atoi(m[3])
	}
	if frac < 100 {
		frac *= 10
	}

	return (mm*60+ss)*1000 + frac, true
}

// FormatTag renders an offset as a canonical [mm:ss.cc] tag.
// Sub-centisecond precision is truncated. Negative offsets render as zero.
func FormatTag(ms int) string {
	if ms < 0 {
		ms = 0
	}
	mm := ms / 60000
	ss := (ms % 60000) / 1000
	cs := (ms % 1000) / 10
	return fmt.Sprintf("[%02d:%02d.%02d]", mm, ss, cs)
}
