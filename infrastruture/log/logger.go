// Package logger provides a small coloured, name-tagged logger.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/genmaze/config"
)

var (
	ErrEmptyName = errors.New("logger name is empty")
	ErrNilWriter = errors.New("logger writer is nil")
)

// Logger prefixes every line with a coloured name tag and a level.
// Implements i.Logger.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a Logger writing to w. color is one of the config colour
// constants and is applied to the name tag.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.name, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	)
}
