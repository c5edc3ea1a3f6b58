// Package detector guesses whether lyric text is LRC-style timed text or plain
// text, and reports which tag spellings it uses.
package detector

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// Defaults for detection.
const (
	DefaultSampleSize = 100
	DefaultThreshold  = 0.5
)

// DetectionResult holds the result of analyzing lyric text.
type DetectionResult struct {
	Matches       []FormatMatch // Tag formats seen, sorted by share descending
	SampledLines  int           // Number of non-blank lines sampled
	TaggedLines   int           // Number of sampled lines with a parseable tag
	Confidence    float64       // TaggedLines / SampledLines
	Mode          lrc.Mode      // Suggested parse mode
	FromExtension bool          // True if the file extension decided the mode
	AmbiguityNote string        // Warning about fraction units if applicable
}

// FormatMatch counts the tags of one format.
type FormatMatch struct {
	Format     *TagFormat
	Share      float64 // Fraction of tagged lines using this format
	MatchCount int     // Number of tags in this format
	SampleLine string  // Example line that matched
	OffsetMs   int     // Parsed offset of the sample
}

// Detector samples lyric text to pick a parse mode.
type Detector struct {
	formats    []*TagFormat
	sampleSize int
	threshold  float64
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithThreshold sets the tagged-line ratio at or above which text is treated
// as timed (default 0.5).
func WithThreshold(t float64) Option {
	return func(d *Detector) {
		if t > 0 && t <= 1 {
			d.threshold = t
		}
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: DefaultSampleSize,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a lyrics file. A .lrc extension always selects
// timed mode, matching how LRC files are imported.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	result := d.DetectFromLines(lines)
	if strings.EqualFold(filepath.Ext(path), ".lrc") {
		result.Mode = lrc.ModeTimed
		result.FromExtension = true
	}
	return result, nil
}

// DetectFromText samples raw text.
func (d *Detector) DetectFromText(text string) *DetectionResult {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, strings.TrimSuffix(l, "\r"))
		if len(lines) >= d.sampleSize {
			break
		}
	}
	return d.DetectFromLines(lines)
}

// DetectFromLines analyzes a slice of lines. Blank lines are ignored.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{Mode: lrc.ModePlain}

	type formatStats struct {
		format     *TagFormat
		matchCount int
		sampleLine string
		offsetMs   int
	}
	stats := make(map[string]*formatStats)
	lowMillis := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.SampledLines++

		tag, _, found := lrc.FindTag(line)
		if !found {
			continue
		}
		ms, ok := lrc.ParseTimestamp(tag)
		if !ok {
			continue
		}
		result.TaggedLines++

		for _, format := range d.formats {
			if !format.Pattern.MatchString(tag) {
				continue
			}
			if stats[format.Name] == nil {
				stats[format.Name] = &formatStats{
					format:     format,
					sampleLine: strings.TrimSpace(line),
					offsetMs:   ms,
				}
			}
			stats[format.Name].matchCount++
			if format.Ambiguous && fractionBelow100(tag) {
				lowMillis = true
			}
			break
		}
	}

	if result.SampledLines == 0 {
		return result
	}

	result.Confidence = float64(result.TaggedLines) / float64(result.SampledLines)
	if result.TaggedLines > 0 && result.Confidence >= d.threshold {
		result.Mode = lrc.ModeTimed
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Share:      float64(s.matchCount) / float64(result.TaggedLines),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			OffsetMs:   s.offsetMs,
		})
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].MatchCount != result.Matches[j].MatchCount {
			return result.Matches[i].MatchCount > result.Matches[j].MatchCount
		}
		return result.Matches[i].Format.Name < result.Matches[j].Format.Name
	})

	switch {
	case lowMillis:
		result.AmbiguityNote = "Some three digit fractions are below 100 (e.g. .050). " +
			"These are read as centiseconds, so .050 is 500ms, not 50ms."
	case stats["Milliseconds"] != nil && len(stats) > 1:
		result.AmbiguityNote = "Tags mix millisecond and centisecond fractions. " +
			"Each tag is interpreted on its own; verify the timing looks right."
	}

	return result
}

// BestMatch returns the most common tag format, or nil if none was seen.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one tag was found.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}

// fractionBelow100 reports whether a three digit fraction has a value < 100.
func fractionBelow100(tag string) bool {
	i := strings.LastIndexAny(tag, ".:")
	if i < 0 || len(tag)-i-1 != 3 {
		return false
	}
	return tag[i+1] == '0'
}

// sampleFile reads up to sampleSize non-blank lines from a file.
func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lyrics file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(lines) < d.sampleSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}
