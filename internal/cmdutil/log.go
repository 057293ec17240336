// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogEnv names the environment variable that sets the log level.
const LogEnv = "MFQE_LOG"

// Level orders diagnostics by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "OFF"
	}
}

// ParseLevel accepts debug, info, warn(ing), error and off (any case).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none", "quiet":
		return LevelOff, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Logger writes one line per message to dst: "[LEVEL] message".
// A nil *Logger discards everything.
type Logger struct {
	mu    sync.Mutex
	dst   io.Writer
	level Level
	color bool
}

// NewLogger logs messages at or above level to dst. With colorize set, level
// tags are coloured (fatih/color still honours NO_COLOR and non-terminals).
func NewLogger(dst io.Writer, level Level, colorize bool) *Logger {
	return &Logger{dst: dst, level: level, color: colorize}
}

// Level is the minimum level written.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelOff
	}
	return l.level
}

// Enabled reports whether messages at lv are written.
func (l *Logger) Enabled(lv Level) bool {
	return l != nil && lv >= l.level && l.level != LevelOff
}

func (l *Logger) logf(lv Level, format string, a ...any) {
	if !l.Enabled(lv) {
		return
	}
	tag := lv.String()
	if l.color {
		if c, ok := levelColors[lv]; ok {
			tag = c.Sprint(tag)
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.dst, "[%s] "+format+"\n", append([]any{tag}, a...)...)
}

func (l *Logger) Debugf(format string, a ...any) { l.logf(LevelDebug, format, a...) }
func (l *Logger) Infof(format string, a ...any)  { l.logf(LevelInfo, format, a...) }
func (l *Logger) Warnf(format string, a ...any)  { l.logf(LevelWarn, format, a...) }
func (l *Logger) Errorf(format string, a ...any) { l.logf(LevelError, format, a...) }

// Warnf writes a warning to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
