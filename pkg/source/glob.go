package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// lyricExtensions are the file types picked up when a directory is given.
var lyricExtensions = map[string]bool{
	".lrc": true,
	".txt": true,
}

// ExpandGlobs expands file paths, directories and glob patterns into a
// deduplicated, sorted list of lyric files. A directory contributes its .lrc
// and .txt files (not recursively). Patterns that match nothing are returned
// as-is so the caller reports a useful file-not-found error.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				add(match)
				continue
			}
			files, err := lyricFilesIn(match)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		}
	}

	sort.Strings(result)

	return result, nil
}

func lyricFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if lyricExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
