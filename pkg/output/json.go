package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// JSONFormatter formats output as JSON. Events are written one object per
// line so a stream can be consumed incrementally.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) encode(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatDocument renders the document, or only its summary when quiet.
func (f *JSONFormatter) FormatDocument(ctx context.Context, doc *DocumentReport, w io.Writer) error {
	if f.opts.Quiet {
		return f.encode(w, doc.Summary)
	}
	return f.encode(w, doc)
}

// FormatActive renders the active view.
func (f *JSONFormatter) FormatActive(ctx context.Context, view *ActiveView, w io.Writer) error {
	return f.encode(w, view)
}

// FormatEvent writes a single compact JSON line.
func (f *JSONFormatter) FormatEvent(ctx context.Context, ev *Event, w io.Writer) error {
	return json.NewEncoder(w).Encode(ev)
}

type inspectionJSON struct {
	Path   string           `json:"path"`
	Report *lrc.Report      `json:"report"`
	Issues []lrc.LineReport `json:"issues"`
}

// FormatInspection renders the report; quiet drops the per-line list.
func (f *JSONFormatter) FormatInspection(ctx context.Context, path string, r *lrc.Report, w io.Writer) error {
	out := inspectionJSON{Path: path, Report: r, Issues: r.Issues()}
	if out.Issues == nil {
		out.Issues = []lrc.LineReport{}
	}
	if f.opts.Quiet {
		trimmed := *r
		trimmed.Lines = nil
		out.Report = &trimmed
	}
	return f.encode(w, out)
}

type formatMatchJSON struct {
	Name       string  `json:"name"`
	Example    string  `json:"example"`
	Share      float64 `json:"share"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
	OffsetMs   int     `json:"offset_ms"`
}

type detectionJSON struct {
	Path          string            `json:"path"`
	Mode          lrc.Mode          `json:"mode"`
	Confidence    float64           `json:"confidence"`
	SampledLines  int               `json:"sampled_lines"`
	TaggedLines   int               `json:"tagged_lines"`
	FromExtension bool              `json:"from_extension"`
	Formats       []formatMatchJSON `json:"formats"`
	AmbiguityNote string            `json:"ambiguity_note,omitempty"`
}

// FormatDetection renders detection results.
func (f *JSONFormatter) FormatDetection(ctx context.Context, path string, r *detector.DetectionResult, w io.Writer) error {
	out := detectionJSON{
		Path:          path,
		Mode:          r.Mode,
		Confidence:    r.Confidence,
		SampledLines:  r.SampledLines,
		TaggedLines:   r.TaggedLines,
		FromExtension: r.FromExtension,
		Formats:       []formatMatchJSON{},
		AmbiguityNote: r.AmbiguityNote,
	}
	for _, m := range r.Matches {
		out.Formats = append(out.Formats, formatMatchJSON{
			Name:       m.Format.Name,
			Example:    m.Format.Example,
			Share:      m.Share,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			OffsetMs:   m.OffsetMs,
		})
	}
	return f.encode(w, out)
}
