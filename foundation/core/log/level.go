// File: level.go
// Title: Levels and Output Formats
// Description: Log levels and output formats, parsed from the PIER_LOG_LEVEL
//              and PIER_LOG_FORMAT settings.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-04-11

package log

import (
	"strings"

	mdwerror "github.com/msto63/pier/foundation/core/error"
)

// Level is the minimum importance an entry needs to be written
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff writes nothing, not even errors
	LevelOff
)

var levelNames = [...]struct{ name, tag string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelOff:   {"off", "OFF"},
}

func (l Level) String() string {
	if l < LevelTrace || l > LevelOff {
		return "unknown"
	}
	return levelNames[l].name
}

// tag is the three letter marker used by the text format
func (l Level) tag() string {
	if l < LevelTrace || l > LevelOff {
		return "???"
	}
	return levelNames[l].tag
}

// enabled reports whether an entry at l passes a logger set to min
func (l Level) enabled(min Level) bool {
	return l != LevelOff && l >= min
}

// ParseLevel reads a level name. "warning" and "none" are accepted as
// aliases for warn and off. Unknown names yield LevelWarn and an error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		return LevelWarn, nil
	case "none":
		return LevelOff, nil
	}
	for l, n := range levelNames {
		if n.name == name {
			return Level(l), nil
		}
	}
	return LevelWarn, invalidSetting("level", s)
}

// Format selects how entries are rendered
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat reads "text" or "json". An empty string means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, invalidSetting("format", s)
}

func invalidSetting(kind, value string) error {
	return mdwerror.Newf("invalid log %s %q", kind, value).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("log.Parse").
		WithDetail(kind, value)
}
