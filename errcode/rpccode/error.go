package rpccode

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// ErrorInfoDomain is the ErrorInfo domain under which an identity travels in
// the details of a gRPC status.
const ErrorInfoDomain = "errcode.mutker.codeberg.org"

const (
	metaCategory = "category"
	metaValue    = "value"
	metaMessage  = "message"
)

// Error is the native error of this backend. It carries a gRPC status whose
// code is the identity's condition. Unless the value is 0, an ErrorInfo detail
// records the identity itself, so FromError can recover it on the other side
// of a call.
type Error struct {
	code ErrorCode
	what string
	st   *status.Status
}

func newError(id ErrorCode, what string) *Error {
	msg := id.Message()
	if what != "" {
		msg = what + ": " + msg
	}

	st := status.New(id.DefaultCondition(), msg)
	if id.Value() != 0 {
		st = withErrorInfo(st, &errdetails.ErrorInfo{
			Reason: id.Category().Name(),
			Domain: ErrorInfoDomain,
			Metadata: map[string]string{
				metaCategory: id.Category().Name(),
				metaValue:    strconv.Itoa(id.Value()),
				metaMessage:  what,
			},
		})
	}
	return &Error{code: id, what: what, st: st}
}

// withErrorInfo attaches info to st. Status.WithDetails refuses codes.OK,
// which an HTTP 2xx identity maps to, so the detail goes in through the proto.
func withErrorInfo(st *status.Status, info *errdetails.ErrorInfo) *status.Status {
	detail, err := anypb.New(info)
	if err != nil {
		return st
	}
	p := st.Proto()
	p.Details = append(p.Details, detail)
	return status.FromProto(p)
}

func (e *Error) Error() string { return e.st.String() }

// Code returns the identity e reports.
func (e *Error) Code() ErrorCode { return e.code }

// GRPCStatus lets status.FromError and status.Code see through e.
func (e *Error) GRPCStatus() *status.Status { return e.st }

// FromError returns the code err reports. SystemErrors and native Errors give
// back their own code; a gRPC status carrying an ErrorInfo of ErrorInfoDomain
// gives back the identity it records; any other status becomes a status
// category code with the status message attached. Context errors map to
// Canceled and DeadlineExceeded, anything else to Unknown.
func FromError(err error) Code {
	if err == nil {
		return Code{}
	}
	if c, ok := CodeOf(err); ok {
		return c
	}

	var native *Error
	if errors.As(err, &native) {
		return FromWithMessage(native.code, native.what)
	}

	if st, ok := status.FromError(err); ok {
		if c, ok := fromDetails(st); ok {
			return c
		}
		return FromStatus(st.Code(), st.Message())
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		st := status.FromContextError(err)
		return FromStatus(st.Code(), st.Message())
	}
	return FromStatus(codes.Unknown, err.Error())
}

func fromDetails(st *status.Status) (Code, bool) {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorInfoDomain {
			continue
		}
		meta := info.GetMetadata()
		cat, ok := categoryByName(meta[metaCategory])
		if !ok {
			continue
		}
		value, err := strconv.Atoi(meta[metaValue])
		if err != nil {
			continue
		}
		return NewWithMessage(value, cat, meta[metaMessage]), true
	}
	return Code{}, false
}
