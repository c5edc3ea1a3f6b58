package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// untimedTag stands in for the tag of an untimed line so text stays aligned.
const untimedTag = "[--:--.--]"

// TextFormatter formats output as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// FormatDocument renders one line per lyric line, tag first.
func (f *TextFormatter) FormatDocument(ctx context.Context, doc *DocumentReport, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatSummary(doc, w)
	}

	if f.opts.Verbose {
		if err := f.formatSummary(doc, w); err != nil {
			return err
		}
	}

	for _, l := range doc.Lines {
		var err error
		if doc.Mode == lrc.ModePlain {
			_, err = fmt.Fprintln(w, l.Text)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", tagFor(l), l.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatSummary(doc *DocumentReport, w io.Writer) error {
	s := doc.Summary
	_, err := fmt.Fprintf(w, "%s (%s): %d lines, %d timed, %d untimed%s\n",
		doc.Path, doc.Mode, s.Total, s.Timed, s.Untimed, spanOf(s))
	return err
}

// FormatActive renders the window with the active line marked.
func (f *TextFormatter) FormatActive(ctx context.Context, view *ActiveView, w io.Writer) error {
	if f.opts.Quiet {
		if a := view.Active(); a != nil {
			_, err := fmt.Fprintln(w, a.Line.Text)
			return err
		}
		return nil
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "position %s, line %d\n", lrc.FormatTag(view.PositionMs), view.Index)
	}

	for _, wl := range view.Window {
		marker := "  "
		if wl.Active {
			marker = "> "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", marker, tagFor(wl.Line), wl.Line.Text); err != nil {
			return err
		}
	}
	return nil
}

// FormatEvent renders load notices and active line changes.
func (f *TextFormatter) FormatEvent(ctx context.Context, ev *Event, w io.Writer) error {
	switch ev.Type {
	case EventLoad:
		if f.opts.Quiet || ev.Summary == nil {
			return nil
		}
		_, err := fmt.Fprintf(w, "-- loaded %d lines (%d timed)\n", ev.Summary.Total, ev.Summary.Timed)
		return err
	case EventChange:
		if ev.View == nil {
			return nil
		}
		if err := f.FormatActive(ctx, ev.View, w); err != nil {
			return err
		}
		if !f.opts.Quiet && len(ev.View.Window) > 1 {
			_, err := fmt.Fprintln(w)
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// FormatInspection renders counts and the lines worth a second look.
func (f *TextFormatter) FormatInspection(ctx context.Context, path string, r *lrc.Report, w io.Writer) error {
	fmt.Fprintf(w, "=== %s ===\n", path)
	fmt.Fprintf(w, "Timed: %d  Untimed: %d  Blank: %d  Dropped: %d\n", r.Timed, r.Untimed, r.Blank, r.Dropped)

	if f.opts.Quiet {
		return nil
	}

	if f.opts.Verbose {
		for _, l := range r.Lines {
			fmt.Fprintf(w, "  %4d %-8s %s\n", l.Number, l.Kind, l.Raw)
		}
	}

	issues := r.Issues()
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues detected")
		return err
	}

	fmt.Fprintf(w, "Issues: %d\n", len(issues))
	for _, l := range issues {
		switch {
		case l.Kind == lrc.KindDropped:
			fmt.Fprintf(w, "  - line %d: unparseable timestamp, line dropped: %s\n", l.Number, l.Raw)
		case l.Bracketed:
			fmt.Fprintf(w, "  - line %d: bracket is not a timestamp, kept as text: %s\n", l.Number, l.Raw)
		}
	}
	return nil
}

// FormatDetection renders the suggested mode and the tag formats seen.
func (f *TextFormatter) FormatDetection(ctx context.Context, path string, r *detector.DetectionResult, w io.Writer) error {
	reason := fmt.Sprintf("%.0f%% of %d sampled lines tagged", r.Confidence*100, r.SampledLines)
	if r.FromExtension {
		reason = "by extension, " + reason
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", path, r.Mode, reason)

	if f.opts.Quiet {
		return nil
	}

	for _, m := range r.Matches {
		fmt.Fprintf(w, "  %-14s %3d tag(s)  e.g. %s\n", m.Format.Name, m.MatchCount, m.Format.Example)
		if f.opts.Verbose {
			fmt.Fprintf(w, "    sample: %s (%dms)\n", m.SampleLine, m.OffsetMs)
		}
	}
	if r.AmbiguityNote != "" {
		fmt.Fprintf(w, "  Note: %s\n", r.AmbiguityNote)
	}
	return nil
}

func tagFor(l lrc.Line) string {
	if !l.Timed() {
		return untimedTag
	}
	return lrc.FormatTag(l.OffsetMs)
}

func spanOf(s Summary) string {
	if s.Timed == 0 {
		return ""
	}
	return fmt.Sprintf(", %s to %s", lrc.FormatTag(s.FirstMs), lrc.FormatTag(s.LastMs))
}
