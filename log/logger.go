/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements the leveled logger shared by the bintree
// packages and the command line tool.
package log

import (
	"io"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level uint32

const (
	// NotSet level is used to indicate that no level has been set
	// and allow for a default to be used
	NotSet Level = iota

	// Off is intended to avoid tracing any action.
	// This is the hightest possible rank.
	Off

	// Fatal designates errors after which the process cannot go on.
	Fatal

	// Error designates failed operations reported to the caller.
	Error

	// Warn designates potentially harmful situations.
	Warn

	// Info designates coarse-grained progress messages (e.g. a demo
	// suite starting or finishing).
	Info

	// Debug designates fine-grained events like subtree deletions
	// or cursor contract violations. Don't use it in production.
	Debug

	// Trace designates a even finer-grained informational events
	// than Debug level, like every registry update.
	Trace
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// LevelFromString returns a Level type for the named log level, or
// "NotSet" if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "off", "silent":
		return Off
	case "fatal":
		return Fatal
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	default:
		return NotSet
	}
}

// Logger describes the interface that must be implemented
// by all loggers.
type Logger interface {
	// Trace emits a message at the TRACE level.
	Trace(msg string)
	// Tracef formats a message according to a format specifier
	// and emits it at the TRACE level.
	Tracef(format string, args ...interface{})
	// Debug emits a message at the DEBUG level.
	Debug(msg string)
	// Debugf formats a message according to a format specifier
	// and emits it at the DEBUG level.
	Debugf(format string, args ...interface{})
	// Info emits a message at the INFO level.
	Info(msg string)
	// Infof formats a message according to a format specifier
	// and emits it at the INFO level.
	Infof(format string, args ...interface{})
	// Warn emits a message at the WARN level.
	Warn(msg string)
	// Warnf formats a message according to a format specifier
	// and emits it at the WARN level.
	Warnf(format string, args ...interface{})
	// Error emits a message at the ERROR level.
	Error(msg string)
	// Errorf formats a message according to a format specifier
	// and emits it at the ERROR level.
	Errorf(format string, args ...interface{})
	// Fatal emits a message at the FATAL level
	// and exits the application (os.Exit(1)).
	Fatal(msg string)
	// Fatalf formats a message according to a format specifier,
	// emits it at the FATAL level and exits the application
	// (os.Exit(1)).
	Fatalf(format string, args ...interface{})
	// Panic emits a message at the FATAL level
	// and panics.
	Panic(msg string)
	// Panicf formats a message according to a format specifier,
	// emits it at the FATAL level and panics.
	Panicf(format string, args ...interface{})

	// Named creates a logger that will prepend the given name on front
	// of all messages. If the logger has a previously set name, the new
	// value will be the appended to it.
	Named(name string) Logger

	// WithLevel creates a logger with the given level changed.
	WithLevel(level Level) Logger

	// GetLevel returns the threshold of the logger.
	GetLevel() Level
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Any log trace less
	// sever is supressed.
	Level Level

	// Output is the writer implementation where to write logs to.
	// If nil, defaults to os.Stderr.
	Output io.Writer

	// TimeFormat is the time format to use instead of the default one.
	TimeFormat string

	// IncludeLocation includes file and line information in each log line.
	IncludeLocation bool

	// Mutex is an optional mutex pointer in case Output is shared.
	Mutex *sync.Mutex
}

// New returns a new logger configured with
// the given options.
func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	output := opts.Output
	if output == nil {
		output = DefaultOutput
	}

	level := opts.Level
	if level == NotSet {
		level = DefaultLevel
	}

	mutex := opts.Mutex
	if mutex == nil {
		mutex = new(sync.Mutex)
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return &internalLogger{
		name:       opts.Name,
		caller:     opts.IncludeLocation,
		timeFormat: timeFormat,
		level:      level,
		mutex:      mutex,
		writer:     newWriter(output),
	}
}
