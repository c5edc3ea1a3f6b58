package lrc

import "container/heap"

// Merge combines several sorted line sequences into one timeline.
//
// Timed lines are interleaved by offset; equal offsets keep track order, then
// input order. Untimed lines follow, track by track.
func Merge(tracks ...[]Line) []Line {
	total := 0
	for _, t := range tracks {
		total += len(t)
	}
	out := make([]Line, 0, total)

	h := &cursorHeap{}
	for i, t := range tracks {
		if len(t) > 0 && t[0].Timed() {
			*h = append(*h, &cursor{track: i, lines: t})
		}
	}
	heap.Init(h)

	for h.Len() > 0 {
		c := (*h)[0]
		out = append(out, c.lines[c.pos])
		c.pos++
		if c.pos < len(c.lines) && c.lines[c.pos].Timed() {
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}

	for _, t := range tracks {
		for _, l := range t {
			if !l.Timed() {
				out = append(out, l)
			}
		}
	}
	return out
}

// cursor tracks the read position within one track.
type cursor struct {
	track int
	lines []Line
	pos   int
}

func (c *cursor) offset() int { return c.lines[c.pos].OffsetMs }

// cursorHeap implements heap.Interface ordered by the current offset.
type cursorHeap []*cursor

func (h cursorHeap) Len() int { return len(h) }

func (h cursorHeap) Less(i, j int) bool {
	if h[i].offset() != h[j].offset() {
		return h[i].offset() < h[j].offset()
	}
	return h[i].track < h[j].track
}

func (h cursorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cursorHeap) Push(x interface{}) {
	*h = append(*h, x.(*cursor))
}

func (h *cursorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
