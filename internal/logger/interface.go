package logger

import (
	"codeberg.org/mutker/errcode/internal/errors"
	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithCode(err errors.Error) *LogEvent
	// WithCode starts an error event carrying an error code object, such as
	// an errcode Code, under the "code" key.
	WithCode(code zerolog.LogObjectMarshaler) *LogEvent
}
