package errors

import "github.com/rs/zerolog"

// ErrorCode names an application failure of the errcode tool. It is unrelated
// to the numeric codes the errcode library models.
type ErrorCode string

// Error is an application error. Two Errors with the same code match under
// errors.Is whatever else they carry. Logged as an object it writes
// error_code, error_message and error.
type Error interface {
	error
	zerolog.LogObjectMarshaler
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
	Is(target error) bool
}

// Factory builds application errors.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
