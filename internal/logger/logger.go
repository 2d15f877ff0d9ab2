// Package logger provides the levelled console logger used by ftlint.
//
// Nothing in the scanning core requires a logger; every consumer accepts the
// Logger interface and treats a nil value as Nop().
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelTrace = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// It is safe for concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mu          sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a logger filtering below level (trace, debug, info,
// warn, error; anything else means info). A nil writer discards everything.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       levelToInt(NormalizeLevel(level)),
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

func levelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *ConsoleLogger) Tracef(format string, args ...any) { l.log(levelTrace, "TRACE", format, args) }
func (l *ConsoleLogger) Debugf(format string, args ...any) { l.log(levelDebug, "DEBUG", format, args) }
func (l *ConsoleLogger) Infof(format string, args ...any)  { l.log(levelInfo, "INFO", format, args) }
func (l *ConsoleLogger) Warnf(format string, args ...any)  { l.log(levelWarn, "WARN", format, args) }
func (l *ConsoleLogger) Errorf(format string, args ...any) { l.log(levelError, "ERROR", format, args) }

func (l *ConsoleLogger) log(level int, name, format string, args []any) {
	if l.writer == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tag := name
	if l.colorOutput {
		tag = levelColor(level).Sprint(name)
	}
	fmt.Fprintf(l.writer, "[%s] [%s] %s\n", l.now().Format("15:04:05"), tag, fmt.Sprintf(format, args...))
}

func levelColor(level int) *color.Color {
	switch level {
	case levelTrace:
		return color.New(color.FgHiBlack)
	case levelDebug:
		return color.New(color.FgCyan)
	case levelWarn:
		return color.New(color.FgYellow)
	case levelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

func Nop() Logger {
	return nop{}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nop{}
	}
	return l
}
