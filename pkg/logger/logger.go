// Package logger provides the logrus loggers used by the generator and the
// command line tool.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const application = "cdagen"

var (
	mu            sync.RWMutex
	defaultLogger = newLogrus(os.Stderr, logrus.InfoLevel, false)
)

func newLogrus(out io.Writer, level logrus.Level, json bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// Default returns the default logger.
func Default() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *logrus.Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

// New creates a logger writing to output at level.
func New(output io.Writer, level logrus.Level) *logrus.Logger {
	return newLogrus(output, level, false)
}

// Config describes how a logger is set up from configuration.
type Config struct {
	Level string
	// Format is "text" or "json".
	Format string
	// File appends to a file instead of writing to stderr.
	File string
}

// Configure builds a logger from cfg and makes it the default.
func Configure(cfg Config) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "log level")
		}
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(filepath.Clean(cfg.File), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cfg.File)
		}
		out = f
	}

	l := newLogrus(out, level, strings.EqualFold(cfg.Format, "json"))
	SetDefault(l)
	return l, nil
}

// Component returns a field logger tagged with the application and
// component names.
func Component(name string) logrus.FieldLogger {
	return For(Default(), name)
}

// For tags l with the application and component names. A nil l uses the
// default logger.
func For(l logrus.FieldLogger, component string) logrus.FieldLogger {
	if l == nil {
		l = Default()
	}
	return l.WithFields(logrus.Fields{
		"application": application,
		"component":   component,
	})
}

// SetLevel sets the level of the default logger.
func SetLevel(level logrus.Level) {
	Default().SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// Infof logs an info message using the default logger.
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Errorf logs an error message using the default logger.
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}
