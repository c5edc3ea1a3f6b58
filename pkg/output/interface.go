package output

import (
	"context"
	"io"

	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// Formatter renders lyric data in a specific format.
type Formatter interface {
	// FormatDocument renders a parsed sequence.
	FormatDocument(ctx context.Context, doc *DocumentReport, w io.Writer) error

	// FormatActive renders the active line with its surrounding window.
	FormatActive(ctx context.Context, view *ActiveView, w io.Writer) error

	// FormatEvent renders one playback event.
	FormatEvent(ctx context.Context, ev *Event, w io.Writer) error

	// FormatInspection renders a leniency report.
	FormatInspection(ctx context.Context, path string, r *lrc.Report, w io.Writer) error

	// FormatDetection renders format detection results.
	FormatDetection(ctx context.Context, path string, r *detector.DetectionResult, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds offsets, counts and per-line classification.
	Verbose bool

	// Quiet prints only the essential line or summary.
	Quiet bool
}

// New returns the formatter registered under name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "", "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, &UnknownFormatError{Name: name}
	}
}

// UnknownFormatError is returned by New for an unsupported format name.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "unknown output format \"" + e.Name + "\" (use text or json)"
}
