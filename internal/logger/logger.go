// Package logger writes leveled status messages for the lyricsync CLI.
// Status goes to stderr so that stdout carries only command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger writes "[timestamp] LEVEL message" lines.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
	now     func() time.Time
}

// New returns a logger writing to w. Debug messages are dropped unless verbose is set.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{w: w, verbose: verbose, now: time.Now}
}

var std = New(os.Stderr, false)

// Default returns the package-level logger.
func Default() *Logger { return std }

// SetVerbose toggles debug output on the package-level logger.
func SetVerbose(v bool) {
	std.mu.Lock()
	std.verbose = v
	std.mu.Unlock()
}

func Info(format string, args ...any) { std.Info(format, args...) }
func Error(format string, args ...any) { std.Error(format, args...) }
func Debug(format string, args ...any) { std.Debug(format, args...) }
func Success(format string, args ...any) { std.Success(format, args...) }

func (l *Logger) Info(format string, args ...any) { l.write("INFO", format, args...) }
func (l *Logger) Error(format string, args ...any) { l.write("ERROR", format, args...) }
func (l *Logger) Success(format string, args ...any) { l.write("OK", format, args...) }

func (l *Logger) Debug(format string, args ...any) {
	l.mu.Lock()
	verbose := l.verbose
	l.mu.Unlock()
	if verbose {
		l.write("DEBUG", format, args...)
	}
}

// LogWithErr logs message as info when err is nil and as an error otherwise.
func (l *Logger) LogWithErr(message string, err error) {
	if err == nil {
		l.Info("%s", message)
		return
	}
	l.Error("%s: %v", message, err)
}

func (l *Logger) write(prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.w, "[%s] %s %s\n", l.now().Format(timestampLayout), prefix, msg)
}
