// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing info and above to stderr.
func New() Logger {
	return NewWithOutput(nil, false)
}

// NewWithOutput returns a Logger writing to w (stderr when nil). When
// debug is true, debug messages are emitted as well.
func NewWithOutput(w io.Writer, debug bool) Logger {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{Logger: l}
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
