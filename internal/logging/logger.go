package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with optional verbose logging and lightweight timing
// helpers. The zero value discards everything.
type Logger struct {
	entry   *logrus.Entry
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	base := logrus.New()
	base.SetOutput(writer)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	base.SetLevel(logrus.InfoLevel)
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	return Logger{entry: logrus.NewEntry(base), Verbose: verbose}
}

// WithField returns a logger that adds key to every line.
func (l Logger) WithField(key string, value any) Logger {
	if l.entry == nil {
		return l
	}
	return Logger{entry: l.entry.WithField(key, value), Verbose: l.Verbose}
}

func (l Logger) WithFields(fields map[string]any) Logger {
	if l.entry == nil {
		return l
	}
	return Logger{entry: l.entry.WithFields(logrus.Fields(fields)), Verbose: l.Verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.entry == nil {
		return
	}
	l.entry.Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.entry == nil {
		return
	}
	l.entry.Warnf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if l.entry == nil {
		return
	}
	l.entry.Errorf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.entry == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
