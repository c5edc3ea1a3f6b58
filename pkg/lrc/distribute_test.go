package lrc

import (
	"reflect"
	"strings"
	"testing"
)

func offsetsOf(lines []Line) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = l.OffsetMs
	}
	return out
}

func TestDistributeTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		duration float64
		want     []int
	}{
		{"even spread", []string{"a", "b", "c", "d"}, 4000, []int{0, 1000, 2000, 3000}},
		{"unknown duration", []string{"a", "b"}, 0, []int{0, 2000}},
		{"negative duration", []string{"a", "b", "c"}, -1, []int{0, 2000, 4000}},
		{"floor", []string{"a", "b", "c"}, 1000, []int{0, 330, 660}},
		{"blank lines skipped", []string{"a", "", "  ", "b"}, 3000, []int{0, 1500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DistributeTimestamps(tt.lines, tt.duration)
			got := offsetsOf(ParseTimedText(out))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("offsets = %v, want %v\noutput:\n%s", got, tt.want, out)
			}
		})
	}
}

func TestDistributeTimestamps_Format(t *testing.T) {
	got := DistributeTimestamps([]string{"Hello", " World "}, 125000)
	want := "[00:00.00] Hello\n[01:02.50] World"
	if got != want {
		t.Errorf("DistributeTimestamps() = %q, want %q", got, want)
	}
}

func TestDistributeTimestamps_Empty(t *testing.T) {
	if got := DistributeTimestamps(nil, 1000); got != "" {
		t.Errorf("DistributeTimestamps(nil) = %q, want empty", got)
	}
	if got := DistributeTimestamps([]string{"", " "}, 1000); got != "" {
		t.Errorf("DistributeTimestamps(blank) = %q, want empty", got)
	}
}

func TestDistributeTimestampsWithSpacing(t *testing.T) {
	out := DistributeTimestampsWithSpacing([]string{"a", "b", "c"}, 0, 500)
	got := offsetsOf(ParseTimedText(out))
	if want := []int{0, 500, 1000}; !reflect.DeepEqual(got, want) {
		t.Errorf("offsets = %v, want %v", got, want)
	}
}

func TestDistributeText(t *testing.T) {
	out := DistributeText("one\r\n\r\ntwo\n", 0, DefaultSpacingMs)
	if want := "[00:00.00] one\n[00:02.00] two"; out != want {
		t.Errorf("DistributeText() = %q, want %q", out, want)
	}
}

func TestDistribute_RoundTrip(t *testing.T) {
	lines := []string{"first", "second [not a tag]", "[00:09.00] looks timed", "fourth", "fifth"}
	durations := []float64{0, 7, 1000, 4000, 180000, 3599999}

	for _, d := range durations {
		parsed := ParseTimedText(DistributeTimestamps(lines, d))
		if len(parsed) != len(lines) {
			t.Fatalf("d=%v: got %d lines, want %d", d, len(parsed), len(lines))
		}
		for i, l := range parsed {
			if l.Text != strings.TrimSpace(lines[i]) {
				t.Errorf("d=%v: line %d = %q, want %q", d, i, l.Text, lines[i])
			}
		}
	}
}

// Output always writes centiseconds, so a three digit fraction does not
// survive a parse/format/parse cycle.
func TestDistribute_NotIdentityThroughFormat(t *testing.T) {
	ms, _ := ParseTimestamp("00:01.123")
	tag := FormatTag(ms)
	again, _ := ParseTimestamp(strings.Trim(tag, "[]"))
	if again == ms {
		t.Errorf("expected precision loss, got %d both times", ms)
	}
	if again != 1120 {
		t.Errorf("reparsed = %d, want 1120", again)
	}
}
