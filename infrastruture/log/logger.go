// Package log adapts charmbracelet/log to the service logger interface,
// tagging every line with a coloured prefix.
package log

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"

	"github.com/beka-birhanu/vinom-pursuit/config"
	"github.com/beka-birhanu/vinom-pursuit/service/i"
)

var ErrNilWriter = errors.New("logger needs a writer")

var _ i.Logger = &Logger{}

// Logger writes leveled lines like "INFO APP: message".
type Logger struct {
	out *charmlog.Logger
}

// New creates a logger tagged with prefix, drawn in color, writing to w.
// Colours only show when w is a terminal.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	return newLogger(prefix, color, w, true)
}

func newLogger(prefix, color string, w io.Writer, timestamps bool) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	out := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          prefix,
		ReportTimestamp: timestamps,
		Level:           charmlog.InfoLevel,
	})

	styles := charmlog.DefaultStyles()
	if color != "" {
		styles.Prefix = styles.Prefix.Foreground(lipgloss.Color(color))
	}
	styles.Levels[charmlog.InfoLevel] = styles.Levels[charmlog.InfoLevel].Foreground(lipgloss.Color(config.LogInfoColor))
	styles.Levels[charmlog.WarnLevel] = styles.Levels[charmlog.WarnLevel].Foreground(lipgloss.Color(config.LogWarnColor))
	styles.Levels[charmlog.ErrorLevel] = styles.Levels[charmlog.ErrorLevel].Foreground(lipgloss.Color(config.LogErrorColor))
	out.SetStyles(styles)

	return &Logger{out: out}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := newLogger("", "", io.Discard, false)
	return l
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Info(msg)
}

// Warning logs something unexpected that the caller recovered from.
func (l *Logger) Warning(msg string) {
	l.out.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Error(msg)
}
