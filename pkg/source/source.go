// Package source loads lyric files and decides how to parse them.
package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccollicutt/lyricsync/pkg/detector"
	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// MaxFileSize is the largest lyrics file Load accepts.
const MaxFileSize = 4 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a loaded and parsed lyrics file.
type Document struct {
	// Path is the file the text was read from.
	Path string `json:"path"`

	// Mode is the mode the text was parsed with.
	Mode lrc.Mode `json:"mode"`

	// Detected is true if Mode was chosen by sampling the content.
	Detected bool `json:"detected"`

	// Text is the raw file content.
	Text string `json:"-"`

	// Lines is the parsed sequence.
	Lines []lrc.Line `json:"lines"`
}

// Loader reads lyric files.
type Loader struct {
	// Mode forces a parse mode. Empty means choose by extension and content.
	Mode lrc.Mode

	// Detector samples content when Mode is empty. Nil uses detector.New().
	Detector *detector.Detector
}

// Load reads path and parses it. A .lrc file is always parsed as timed text;
// anything else is sampled by the detector unless a mode is forced.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening lyrics file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("lyrics file %s is too large (%d bytes, max %d)", path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("reading lyrics file %s: %w", path, err)
	}

	doc := &Document{
		Path: path,
		Text: string(bytes.TrimPrefix(data, utf8BOM)),
	}
	doc.Mode, doc.Detected = l.chooseMode(path, doc.Text)
	doc.Lines = lrc.Parse(doc.Text, doc.Mode)

	return doc, nil
}

func (l *Loader) chooseMode(path, text string) (lrc.Mode, bool) {
	if l.Mode != "" {
		return l.Mode, false
	}
	if strings.EqualFold(filepath.Ext(path), ".lrc") {
		return lrc.ModeTimed, false
	}
	det := l.Detector
	if det == nil {
		det = detector.New()
	}
	return det.DetectFromText(text).Mode, true
}

// LoadAll loads every path in order, stopping at the first error.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := l.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
