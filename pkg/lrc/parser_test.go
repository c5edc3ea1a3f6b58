package lrc

import (
	"reflect"
	"testing"
)

func TestParseTimedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Line
	}{
		{
			name: "mixed timed and untimed",
			text: "[00:01.00]Hello\nWorld\n[00:00.50]Intro",
			want: []Line{{500, "Intro"}, {1000, "Hello"}, {Untimed, "World"}},
		},
		{
			name: "crlf line endings",
			text: "[00:02.00] b\r\n[00:01.00] a\r\n",
			want: []Line{{1000, "a"}, {2000, "b"}},
		},
		{
			name: "tag not at line start",
			text: "chorus [00:02.00] sing along",
			want: []Line{{2000, "sing along"}},
		},
		{
			name: "only first tag honoured",
			text: "[00:01.00][00:05.00]Again",
			want: []Line{{1000, "[00:05.00]Again"}},
		},
		{
			name: "metadata kept as text",
			text: "[ar:Someone]\n[00:01.00]Line",
			want: []Line{{1000, "Line"}, {Untimed, "[ar:Someone]"}},
		},
		{
			name: "blank lines dropped",
			text: "\n   \n\t\n[00:01.00]x\n\n",
			want: []Line{{1000, "x"}},
		},
		{
			name: "tag with empty text kept",
			text: "[00:03.00]   ",
			want: []Line{{3000, ""}},
		},
		{
			name: "untimed keep input order",
			text: "c\na\n[00:09.00]t\nb",
			want: []Line{{9000, "t"}, {Untimed, "c"}, {Untimed, "a"}, {Untimed, "b"}},
		},
		{
			name: "equal offsets keep input order",
			text: "[00:01.00]first\n[00:00.10]zero\n[00:01.00]second",
			want: []Line{{100, "zero"}, {1000, "first"}, {1000, "second"}},
		},
		{
			name: "short fields",
			text: "[1:2]short",
			want: []Line{{62000, "short"}},
		},
		{
			name: "malformed bracket is text",
			text: "[00:01.1234]too precise",
			want: []Line{{Untimed, "[00:01.1234]too precise"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimedText(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTimedText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimedText_Empty(t *testing.T) {
	if got := ParseTimedText(""); len(got) != 0 {
		t.Errorf("ParseTimedText(\"\") = %v, want empty", got)
	}
}

func TestParseTimedText_SortInvariant(t *testing.T) {
	text := "x\n[00:30.00]c\ny\n[00:10.00]a\n[00:20.00]b\nz\n[00:05.5]pre"
	lines := ParseTimedText(text)

	seenUntimed := false
	last := -1
	for i, l := range lines {
		if !l.Timed() {
			seenUntimed = true
			continue
		}
		if seenUntimed {
			t.Fatalf("timed line at %d after untimed line: %v", i, lines)
		}
		if l.OffsetMs < last {
			t.Fatalf("offsets not sorted at %d: %v", i, lines)
		}
		last = l.OffsetMs
	}
}

func TestParsePlain(t *testing.T) {
	got := ParsePlain("  one \n\ntwo\r\n")
	want := []Line{{Untimed, "one"}, {Untimed, ""}, {Untimed, "two"}, {Untimed, ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePlain() = %v, want %v", got, want)
	}

	if got := ParsePlain(""); len(got) != 0 {
		t.Errorf("ParsePlain(\"\") = %v, want empty", got)
	}
}

func TestParse_Mode(t *testing.T) {
	text := "[00:01.00]a\nb"

	timed := Parse(text, ModeTimed)
	if len(timed) != 2 || timed[0].OffsetMs != 1000 {
		t.Errorf("Parse(timed) = %v", timed)
	}

	plain := Parse(text, ModePlain)
	if len(plain) != 2 || plain[0].Timed() || plain[0].Text != "[00:01.00]a" {
		t.Errorf("Parse(plain) = %v", plain)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"timed", ModeTimed, false},
		{"LRC", ModeTimed, false},
		{"plain", ModePlain, false},
		{" txt ", ModePlain, false},
		{"auto", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
