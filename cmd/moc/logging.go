package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// levelLabel is how a log level is printed.
type levelLabel struct {
	text  string
	color lipgloss.Color
}

var levelLabels = map[log.Level]levelLabel{
	log.DebugLevel: {text: "DEBUG", color: lipgloss.Color("63")},
	log.InfoLevel:  {text: "INFO", color: lipgloss.Color("86")},
	log.WarnLevel:  {text: "WARN", color: lipgloss.Color("192")},
	log.ErrorLevel: {text: "ERROR", color: lipgloss.Color("204")},
}

// newLogger returns the logger of one tool run. Messages are prefixed with
// the program name; --debug lowers the level, --quiet keeps errors only.
func newLogger(w io.Writer, prog string, s settings, color bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case s.debug:
		level = log.DebugLevel
	case s.quiet:
		level = log.ErrorLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prog,
		Level:  level,
	})
	logger.SetStyles(logStyles(color))
	return logger
}

func logStyles(color bool) *log.Styles {
	styles := log.DefaultStyles()
	for level, label := range levelLabels {
		st := lipgloss.NewStyle().SetString(label.text).Bold(true)
		if color {
			st = st.Foreground(label.color)
		}
		styles.Levels[level] = st
	}
	if !color {
		styles.Prefix = lipgloss.NewStyle()
		styles.Key = lipgloss.NewStyle()
		styles.Value = lipgloss.NewStyle()
		styles.Separator = lipgloss.NewStyle()
	}
	return styles
}
