package detector

import "regexp"

// TagFormat is one spelling of the timestamp tag body.
type TagFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for display
	Example    string         // Example tag
	Ambiguous  bool           // True if the fraction unit depends on its value
}

// DefaultFormats returns the tag spellings the detector reports on.
// Each tag body matches exactly one of them.
func DefaultFormats() []*TagFormat {
	formats := []*TagFormat{
		{
			Name:       "Centiseconds",
			PatternStr: `^\d{1,2}:\d{1,2}[.:]\d{2}$`,
			Example:    "[01:23.45]",
		},
		{
			Name:       "Milliseconds",
			PatternStr: `^\d{1,2}:\d{1,2}[.:]\d{3}$`,
			Example:    "[01:23.456]",
			Ambiguous:  true,
		},
		{
			Name:       "Deciseconds",
			PatternStr: `^\d{1,2}:\d{1,2}[.:]\d$`,
			Example:    "[01:23.4]",
		},
		{
			Name:       "Whole seconds",
			PatternStr: `^\d{1,2}:\d{1,2}$`,
			Example:    "[01:23]",
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
