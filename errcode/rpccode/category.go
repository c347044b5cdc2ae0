package rpccode

import (
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"
)

// Category classifies the values of an ErrorCode, renders their messages and
// maps them onto the gRPC canonical codes, which serve as conditions.
//
// Implementations must be comparable. Categories are told apart with ==, not
// by name; only the categories of this package cross a gRPC hop.
type Category interface {
	Name() string
	Message(value int) string
	DefaultCondition(value int) codes.Code
}

type statusCategory struct{}

type httpCategory struct{}

var (
	statusCat = &statusCategory{}
	httpCat   = &httpCategory{}
)

// StatusCategory holds the gRPC canonical codes. It is the default category of
// ErrorCode.
func StatusCategory() Category { return statusCat }

// HTTPCategory holds HTTP status codes. Its conditions follow the usual
// HTTP to gRPC mapping; any 2xx status matches codes.OK.
func HTTPCategory() Category { return httpCat }

// categoryByName resolves the categories this package owns, for identities
// that crossed a wire as a name.
func categoryByName(name string) (Category, bool) {
	switch name {
	case statusCat.Name():
		return statusCat, true
	case httpCat.Name():
		return httpCat, true
	default:
		return nil, false
	}
}

var statusMessages = map[codes.Code]string{
	codes.OK:                 "ok",
	codes.Canceled:           "operation was canceled",
	codes.Unknown:            "unknown error",
	codes.InvalidArgument:    "invalid argument",
	codes.DeadlineExceeded:   "deadline exceeded",
	codes.NotFound:           "not found",
	codes.AlreadyExists:      "already exists",
	codes.PermissionDenied:   "permission denied",
	codes.ResourceExhausted:  "resource exhausted",
	codes.FailedPrecondition: "failed precondition",
	codes.Aborted:            "operation was aborted",
	codes.OutOfRange:         "out of range",
	codes.Unimplemented:      "not implemented",
	codes.Internal:           "internal error",
	codes.Unavailable:        "service unavailable",
	codes.DataLoss:           "unrecoverable data loss",
	codes.Unauthenticated:    "unauthenticated",
}

func (*statusCategory) Name() string { return "grpc" }

func (*statusCategory) Message(value int) string {
	if msg, ok := statusMessages[codes.Code(value)]; ok {
		return msg
	}
	return "unknown status " + strconv.Itoa(value)
}

// DefaultCondition is the value itself; values outside the canonical range
// map to codes.Unknown.
func (*statusCategory) DefaultCondition(value int) codes.Code {
	if value < 0 || value > int(codes.Unauthenticated) {
		return codes.Unknown
	}
	return codes.Code(value)
}

func (*httpCategory) Name() string { return "http" }

func (*httpCategory) Message(value int) string {
	if value == 0 {
		return "ok"
	}
	if text := http.StatusText(value); text != "" {
		return text
	}
	return "HTTP status " + strconv.Itoa(value)
}

func (*httpCategory) DefaultCondition(value int) codes.Code {
	switch {
	case value == 0, value >= 200 && value < 300:
		return codes.OK
	}
	switch value {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusConflict:
		return codes.AlreadyExists
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusRequestedRangeNotSatisfiable:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499:
		return codes.Canceled
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return codes.Unavailable
	}
	if value >= 500 && value < 600 {
		return codes.Internal
	}
	return codes.Unknown
}
