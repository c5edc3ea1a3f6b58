package lrc

import "testing"

func TestActiveIndex(t *testing.T) {
	lines := []Line{{500, "a"}, {1000, "b"}, {1000, "c"}, {3000, "d"}, {Untimed, "x"}, {Untimed, "y"}}

	tests := []struct {
		name  string
		query int
		want  int
	}{
		{"before first", 499, -1},
		{"at first", 500, 0},
		{"between", 750, 0},
		{"equal offsets picks last", 1000, 2},
		{"just before last", 2999, 2},
		{"at last", 3000, 3},
		{"after last", 999999, 3},
		{"negative", -10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveIndex(lines, tt.query); got != tt.want {
				t.Errorf("ActiveIndex(%d) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestActiveIndex_Empty(t *testing.T) {
	if got := ActiveIndex(nil, 1000); got != -1 {
		t.Errorf("ActiveIndex(nil) = %d, want -1", got)
	}
}

func TestActiveIndex_NoTimedLines(t *testing.T) {
	lines := []Line{{Untimed, "a"}, {Untimed, "b"}}
	for _, q := range []int{-1, 0, 5000} {
		if got := ActiveIndex(lines, q); got != -1 {
			t.Errorf("ActiveIndex(untimed, %d) = %d, want -1", q, got)
		}
	}
}

// linearActive is the reference the binary search must agree with.
func linearActive(lines []Line, q int) int {
	ans := -1
	for i, l := range lines {
		if l.Timed() && l.OffsetMs <= q {
			ans = i
		}
	}
	return ans
}

func TestActiveIndex_MatchesLinearScan(t *testing.T) {
	text := "[00:01.00]a\nu1\n[00:01.50]b\n[00:04.00]c\n[00:04.00]d\nu2\n[01:00]e"
	lines := ParseTimedText(text)

	firstTimed := lines[0].OffsetMs
	lastTimedIdx := linearActive(lines, 1<<30)

	prev := -1
	for q := 0; q <= 65000; q += 50 {
		got := ActiveIndex(lines, q)
		if want := linearActive(lines, q); got != want {
			t.Fatalf("ActiveIndex(%d) = %d, want %d", q, got, want)
		}
		if q < firstTimed && got != -1 {
			t.Fatalf("ActiveIndex(%d) = %d before first offset", q, got)
		}
		if got < prev {
			t.Fatalf("ActiveIndex not monotonic at %d: %d < %d", q, got, prev)
		}
		prev = got
	}
	if prev != lastTimedIdx {
		t.Errorf("ActiveIndex after last offset = %d, want %d", prev, lastTimedIdx)
	}
}

func BenchmarkActiveIndex(b *testing.B) {
	lines := make([]Line, 4000)
	for i := range lines {
		lines[i] = Line{OffsetMs: i * 250, Text: "line"}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ActiveIndex(lines, (i*37)%1000000)
	}
}
