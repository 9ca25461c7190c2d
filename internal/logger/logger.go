// Package logger writes leveled diagnostic lines for the operator.
package logger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Logger interface {
	Debug(msg string, obj any)
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Error(msg string, obj any)
}

type NopLogger struct{}

func (NopLogger) Debug(string, any) {}
func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Error(string, any) {}

type writerLogger struct {
	w       io.Writer
	verbose bool
	styles  map[string]lipgloss.Style
}

// levelStyles binds the tag colors to w so the color profile follows the
// log destination rather than stdout.
func levelStyles(w io.Writer) map[string]lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	return map[string]lipgloss.Style{
		"DEBUG": r.NewStyle().Foreground(lipgloss.Color("244")),
		"INFO":  r.NewStyle().Foreground(lipgloss.Color("39")),
		"WARN":  r.NewStyle().Foreground(lipgloss.Color("214")),
		"ERROR": r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// New returns a Logger writing to w. Debug lines are dropped unless verbose.
func New(w io.Writer, verbose bool) Logger {
	if w == nil {
		return NopLogger{}
	}
	return writerLogger{w: w, verbose: verbose, styles: levelStyles(w)}
}

func (l writerLogger) write(level, msg string, obj any) {
	tag := l.styles[level].Render(fmt.Sprintf("%-5s", level))
	if obj == nil {
		_, _ = fmt.Fprintf(l.w, "%s %s\n", tag, msg)
		return
	}

	b, err := json.Marshal(obj)
	if err != nil {
		_, _ = fmt.Fprintf(l.w, "%s %s obj=%q\n", tag, msg, fmt.Sprintf("%+v", obj))
		return
	}
	_, _ = fmt.Fprintf(l.w, "%s %s obj=%s\n", tag, msg, string(b))
}

func (l writerLogger) Debug(msg string, obj any) {
	if !l.verbose {
		return
	}
	l.write("DEBUG", msg, obj)
}

func (l writerLogger) Info(msg string, obj any)  { l.write("INFO", msg, obj) }
func (l writerLogger) Warn(msg string, obj any)  { l.write("WARN", msg, obj) }
func (l writerLogger) Error(msg string, obj any) { l.write("ERROR", msg, obj) }
