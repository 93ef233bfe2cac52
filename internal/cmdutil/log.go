// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Level orders log severities; higher is chattier.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelTags = [...]struct {
	name string
	attr color.Attribute
}{
	LevelError: {"ERROR", color.FgRed},
	LevelWarn:  {"WARN", color.FgYellow},
	LevelInfo:  {"INFO", color.FgGreen},
	LevelDebug: {"DEBUG", color.FgCyan},
	LevelTrace: {"TRACE", color.FgBlue},
}

func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelTags[l].name
}

// LevelFor maps -v repetitions and --quiet to a level. The default is WARN.
func LevelFor(verbose int, quiet bool) Level {
	if quiet {
		return LevelError
	}
	l := LevelWarn + Level(verbose)
	if l > LevelTrace {
		l = LevelTrace
	}
	return l
}

// Logger writes "LEVEL: message" lines to dst. It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	dst   io.Writer
	level Level
	color bool
}

// NewLogger returns a logger; useColor tags levels with ANSI colors.
func NewLogger(dst io.Writer, level Level, useColor bool) *Logger {
	return &Logger{dst: dst, level: level, color: useColor}
}

// Nop discards everything.
func Nop() *Logger { return NewLogger(io.Discard, LevelError-1, false) }

func (l *Logger) Enabled(level Level) bool { return level <= l.level }

func (l *Logger) Logf(level Level, format string, a ...any) {
	if !l.Enabled(level) {
		return
	}
	tag := levelTags[level].name
	if l.color {
		c := color.New(levelTags[level].attr)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.dst, "%s: "+format+"\n", append([]any{tag}, a...)...)
}

func (l *Logger) Errorf(format string, a ...any) { l.Logf(LevelError, format, a...) }
func (l *Logger) Warnf(format string, a ...any)  { l.Logf(LevelWarn, format, a...) }
func (l *Logger) Infof(format string, a ...any)  { l.Logf(LevelInfo, format, a...) }
func (l *Logger) Debugf(format string, a ...any) { l.Logf(LevelDebug, format, a...) }
func (l *Logger) Tracef(format string, a ...any) { l.Logf(LevelTrace, format, a...) }

// Warnf is the one-shot form used before a Logger exists.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
