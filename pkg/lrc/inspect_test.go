package lrc

import "testing"

func TestInspect(t *testing.T) {
	text := "[ti:Title]\n[00:01.00]one\n\nplain line\n[00:02.00]two"
	r := Inspect(text)

	if r.Timed != 2 || r.Untimed != 2 || r.Blank != 1 || r.Dropped != 0 {
		t.Errorf("counts = timed %d untimed %d blank %d dropped %d", r.Timed, r.Untimed, r.Blank, r.Dropped)
	}
	if r.Bracketed != 1 {
		t.Errorf("Bracketed = %d, want 1", r.Bracketed)
	}
	if len(r.Lines) != 5 {
		t.Fatalf("Lines = %d, want 5", len(r.Lines))
	}

	first := r.Lines[0]
	if first.Number != 1 || first.Kind != KindUntimed || !first.Bracketed {
		t.Errorf("Lines[0] = %+v", first)
	}
	if r.Lines[1].OffsetMs != 1000 {
		t.Errorf("Lines[1].OffsetMs = %d, want 1000", r.Lines[1].OffsetMs)
	}

	issues := r.Issues()
	if len(issues) != 1 || issues[0].Number != 1 {
		t.Errorf("Issues() = %+v", issues)
	}
	if !r.HasIssues() {
		t.Error("HasIssues() = false, want true")
	}
}

func TestInspect_AgreesWithParser(t *testing.T) {
	text := "a\n[00:01.00]b\n\n[1:2.345]c\n[x]d\n  \n"
	r := Inspect(text)
	parsed := ParseTimedText(text)

	if got := r.Timed + r.Untimed; got != len(parsed) {
		t.Errorf("timed+untimed = %d, parser produced %d lines", got, len(parsed))
	}
}

func TestInspect_Empty(t *testing.T) {
	r := Inspect("")
	if len(r.Lines) != 0 || r.HasIssues() {
		t.Errorf("Inspect(\"\") = %+v", r)
	}
}
