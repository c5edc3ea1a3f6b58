package lrc

import (
	"regexp"
	"sort"
	"strings"
)

// tagPattern finds the first timestamp tag on a line and captures the rest of
// the line after it.
var tagPattern = regexp.MustCompile(`\[(\d{1,2}:\d{1,2}(?:[.:]\d{1,3})?)\](.*)$`)

// Parse interprets text according to mode.
func Parse(text string, mode Mode) []Line {
	if mode == ModePlain {
		return ParsePlain(text)
	}
	return ParseTimedText(text)
}

// ParseTimedText parses LRC-like text into lines sorted by offset.
//
// Only the first tag on a line is honoured. Lines without a tag are kept as
// untimed lines, blank lines are skipped, and lines whose tag fails to parse
// are dropped. Untimed lines sort after all timed lines in input order.
func ParseTimedText(text string) []Line {
	var out []Line
	for _, raw := range splitLines(text) {
		if line, ok := parseLine(raw); ok {
			out = append(out, line)
		}
	}
	sortLines(out)
	return out
}

// ParsePlain turns every raw line into an untimed line. Blank lines are kept
// so the rendered layout matches the source.
func ParsePlain(text string) []Line {
	if text == "" {
		return nil
	}
	raws := splitLines(text)
	out := make([]Line, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Line{OffsetMs: Untimed, Text: strings.TrimSpace(raw)})
	}
	return out
}

// parseLine classifies a single raw line. The second return value is false
// when the line produces no entry.
func parseLine(raw string) (Line, bool) {
	if tag, rest, found := FindTag(raw); found {
		ms, ok := ParseTimestamp(tag)
		if !ok {
			return Line{}, false
		}
		return Line{OffsetMs: ms, Text: strings.TrimSpace(rest)}, true
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{}, false
	}
	return Line{OffsetMs: Untimed, Text: trimmed}, true
}

// FindTag locates the first timestamp tag on a raw line. It returns the tag
// body without brackets and the untrimmed text following it.
func FindTag(raw string) (tag, rest string, found bool) {
	m := tagPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// sortLines orders timed lines by offset and moves untimed lines to the end.
// The sort is stable, so ties and untimed lines keep their input order.
func sortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.Timed() {
			return false
		}
		if !b.Timed() {
			return true
		}
		return a.OffsetMs < b.OffsetMs
	})
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
