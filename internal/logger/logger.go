package logger

import (
	"io"
	"os"
	"syscall"
	"time"

	"codeberg.org/mutker/errcode/internal/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger based on the given configuration
func Init(debug, verbose, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(WarnLevel) // Default log level

	if debug {
		SetLogLevel(DebugLevel)
	} else if verbose {
		SetLogLevel(InfoLevel)
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// ParseLevel maps a configured level name onto a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warning", "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return WarnLevel, false
	}
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return syscall.Getpgrp() == syscall.Getpid()
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return errorWithCode(log, err)
}

// WithCode logs an error message carrying an error code object
func WithCode(code zerolog.LogObjectMarshaler) *LogEvent {
	return &LogEvent{log.Error().Object("code", code)}
}

func errorWithCode(l zerolog.Logger, err errors.Error) *LogEvent {
	return &LogEvent{l.Error().EmbedObject(err)}
}

// Default returns a Logger backed by the package logger set up by Init.
func Default() Logger {
	return global{}
}

// New returns a Logger writing JSON lines to w, for components that should not
// share the package logger.
func New(w io.Writer) Logger {
	return &instance{log: zerolog.New(w).With().Timestamp().Logger()}
}

type global struct{}

func (global) Debug() *LogEvent { return Debug() }
func (global) Info() *LogEvent { return Info() }
func (global) Warn() *LogEvent { return Warn() }
func (global) Error() *LogEvent { return Error() }
func (global) ErrorWithCode(err errors.Error) *LogEvent { return ErrorWithCode(err) }
func (global) WithCode(code zerolog.LogObjectMarshaler) *LogEvent {
	return WithCode(code)
}

type instance struct {
	log zerolog.Logger
}

func (l *instance) Debug() *LogEvent { return &LogEvent{l.log.Debug()} }
func (l *instance) Info() *LogEvent { return &LogEvent{l.log.Info()} }
func (l *instance) Warn() *LogEvent { return &LogEvent{l.log.Warn()} }
func (l *instance) Error() *LogEvent { return &LogEvent{l.log.Error()} }

func (l *instance) ErrorWithCode(err errors.Error) *LogEvent {
	return errorWithCode(l.log, err)
}

func (l *instance) WithCode(code zerolog.LogObjectMarshaler) *LogEvent {
	return &LogEvent{l.log.Error().Object("code", code)}
}
