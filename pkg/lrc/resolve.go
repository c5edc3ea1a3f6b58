package lrc

import "sort"

// ActiveIndex returns the index of the last timed line whose offset is at or
// before queryMs, or -1 if there is none.
//
// lines must be sorted the way ParseTimedText sorts them. Untimed lines sit at
// the tail and never qualify, which keeps the predicate monotonic.
func ActiveIndex(lines []Line, queryMs int) int {
	n := sort.Search(len(lines), func(i int) bool {
		l := lines[i]
		return !l.Timed() || l.OffsetMs > queryMs
	})
	return n - 1
}
