package lrc

import (
	"regexp"
	"strings"
)

// Kind classifies how the parser treated a raw line.
type Kind string

const (
	KindTimed   Kind = "timed"
	KindUntimed Kind = "untimed"
	KindBlank   Kind = "blank"
	KindDropped Kind = "dropped"
)

// bracketPattern finds any bracketed span, such as [ar:Artist].
var bracketPattern = regexp.MustCompile(`\[[^\]]*\]`)

// LineReport describes one raw input line.
type LineReport struct {
	// Number is the 1-based line number.
	Number int `json:"number"`

	Kind Kind   `json:"kind"`
	Raw  string `json:"raw"`

	// OffsetMs is set for timed lines, Untimed otherwise.
	OffsetMs int `json:"offset_ms"`

	// Bracketed is true for an untimed line that contains a bracketed span
	// that is not a timestamp. Such lines are kept as ordinary text.
	Bracketed bool `json:"bracketed,omitempty"`
}

// Report summarizes what ParseTimedText does with a text without changing it.
type Report struct {
	Lines     []LineReport `json:"lines"`
	Timed     int          `json:"timed"`
	Untimed   int          `json:"untimed"`
	Blank     int          `json:"blank"`
	Dropped   int          `json:"dropped"`
	Bracketed int          `json:"bracketed"`
}

// Inspect classifies every raw line of text the same way ParseTimedText does.
func Inspect(text string) *Report {
	r := &Report{}
	if text == "" {
		return r
	}

	for i, raw := range splitLines(text) {
		lr := LineReport{Number: i + 1, Raw: raw, OffsetMs: Untimed}

		if tag, _, found := FindTag(raw); found {
			if ms, ok := ParseTimestamp(tag); ok {
				lr.Kind = KindTimed
				lr.OffsetMs = ms
				r.Timed++
			} else {
				lr.Kind = KindDropped
				r.Dropped++
			}
		} else if strings.TrimSpace(raw) == "" {
			lr.Kind = KindBlank
			r.Blank++
		} else {
			lr.Kind = KindUntimed
			r.Untimed++
			if bracketPattern.MatchString(raw) {
				lr.Bracketed = true
				r.Bracketed++
			}
		}

		r.Lines = append(r.Lines, lr)
	}
	return r
}

// Issues returns the lines a careful author may want to look at: dropped
// lines and untimed lines carrying non-timestamp brackets.
func (r *Report) Issues() []LineReport {
	var out []LineReport
	for _, l := range r.Lines {
		if l.Kind == KindDropped || l.Bracketed {
			out = append(out, l)
		}
	}
	return out
}

// HasIssues returns true if Issues would return anything.
func (r *Report) HasIssues() bool {
	return r.Dropped > 0 || r.Bracketed > 0
}
