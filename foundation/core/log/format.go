// File: format.go
// Title: Entry Rendering
// Description: Renders entries as a single text line or a JSON object.
//              Fields are written in sorted key order so output is stable.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-04-11

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Fields are the key/value pairs attached to an entry
type Fields map[string]interface{}

func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// entry is one record handed to a formatter
type entry struct {
	time    time.Time
	level   Level
	logger  string
	message string
	fields  Fields
}

type formatter func(e *entry) ([]byte, error)

func formatterFor(f Format) formatter {
	if f == FormatJSON {
		return formatJSON
	}
	return formatText
}

// formatText renders `15:04:05 [INF] {name} message [k=v ...]`
func formatText(e *entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(e.time.Format("15:04:05"))
	fmt.Fprintf(&b, " [%s]", e.level.tag())
	if e.logger != "" {
		fmt.Fprintf(&b, " {%s}", e.logger)
	}
	b.WriteByte(' ')
	b.WriteString(e.message)

	if len(e.fields) > 0 {
		b.WriteString(" [")
		for i, k := range e.fields.sortedKeys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, e.fields[k])
		}
		b.WriteByte(']')
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func formatJSON(e *entry) ([]byte, error) {
	data := make(map[string]interface{}, len(e.fields)+4)
	for k, v := range e.fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = e.time.Format(time.RFC3339)
	data["level"] = e.level.String()
	data["message"] = e.message
	if e.logger != "" {
		data["logger"] = e.logger
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
