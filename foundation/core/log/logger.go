// File: logger.go
// Title: Logger
// Description: A leveled logger with inherited context fields. Loggers are
//              immutable once built; WithField returns a copy, so one logger
//              can be shared by the registry, the store and the runner.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-04-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-03-02 v0.2.0: Removed async buffering and request context
// - 2025-04-11 v0.3.0: Immutable loggers, error category and severity fields

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	mdwerror "github.com/msto63/pier/foundation/core/error"
)

// Logger writes entries at or above its level to a single output
type Logger struct {
	level  Level
	format formatter
	name   string
	fields Fields

	// shared by every copy made with WithField
	out *syncWriter
}

// Config describes a logger. A nil Output means stderr.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Write(p)
}

// NewWithConfig builds a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		level:  config.Level,
		format: formatterFor(config.Format),
		name:   config.Name,
		out:    &syncWriter{w: output},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

// WithField returns a copy of the logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	fields := make(Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	clone := *l
	clone.fields = fields
	return &clone
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields)
}

// LogError logs err with its code, category, operation and details as
// error_* fields. Low severity errors (unknown alias, duplicate alias) are
// logged at debug, everything else at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	code := mdwerror.GetCode(err)
	fields := Fields{
		"error_code":     code.String(),
		"error_category": code.Category(),
	}
	level := LevelError

	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		if op := mdwErr.Operation(); op != "" {
			fields["error_operation"] = op
		}
		for k, v := range mdwErr.Details() {
			fields["error_"+k] = v
		}
		fields["error_severity"] = mdwErr.Severity().String()
		if mdwErr.Severity() == mdwerror.SeverityLow {
			level = LevelDebug
		}
	}

	l.log(level, err.Error(), []Fields{fields})
}

func (l *Logger) log(level Level, message string, fields []Fields) {
	if !level.enabled(l.level) {
		return
	}

	e := &entry{
		time:    time.Now(),
		level:   level,
		logger:  l.name,
		message: message,
		fields:  make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		e.fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			e.fields[k] = v
		}
	}

	if out, err := l.format(e); err == nil {
		l.out.write(out)
	}
}
