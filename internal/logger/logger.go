// Package logger builds the eg diagnostic logger.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "EG_DEBUG"

// New returns a logger writing to w. Debug output is enabled by debug or by
// EG_DEBUG in the environment.
func New(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "eg",
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	l.SetStyles(styles)

	if debug || os.Getenv(DebugEnv) != "" {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
