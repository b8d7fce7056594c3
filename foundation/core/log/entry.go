// File: entry.go
// Title: Log Entry and Field Helpers
// Description: The Entry type passed to formatters and the Fields helpers used
//              to attach structured data to a log call.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Dropped user/correlation IDs and caller capture

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
	Duration  time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration.String()}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Float64 creates a float field
func Float64(key string, value float64) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Any creates a field with an arbitrary value
func Any(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Merge combines two field sets, with other taking precedence
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
