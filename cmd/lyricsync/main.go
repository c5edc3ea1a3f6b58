// lyricsync - Timed Lyrics Sync Tool
//
// lyricsync parses LRC-style timed lyrics and resolves which line is active
// at a playback position.
package main

import (
	"os"

	"github.com/ccollicutt/lyricsync/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
