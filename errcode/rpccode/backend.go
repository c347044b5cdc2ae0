// Package rpccode is the gRPC backend of errcode: codes are values in a
// Category, conditions are the gRPC canonical codes, and the native system
// error is a gRPC status error that keeps the identity across a call.
package rpccode

import (
	"codeberg.org/mutker/errcode/errcode"
	"google.golang.org/grpc/codes"
)

// Traits resolves this backend for errcode.
type Traits struct{}

var _ errcode.Backend[ErrorCode, Category, codes.Code] = Traits{}

type (
	Code          = errcode.Code[Traits, ErrorCode, Category, codes.Code]
	SystemError   = errcode.SystemError[Traits, ErrorCode, Category, codes.Code]
	Enum          = errcode.Enum[ErrorCode]
	ConditionEnum = errcode.ConditionEnum[codes.Code]
)

func (Traits) Make(value int, cat Category) ErrorCode { return MakeErrorCode(value, cat) }
func (Traits) Value(id ErrorCode) int { return id.Value() }
func (Traits) Category(id ErrorCode) Category { return id.Category() }
func (Traits) Name(cat Category) string { return orStatus(cat).Name() }
func (Traits) DefaultCondition(id ErrorCode) codes.Code { return id.DefaultCondition() }
func (Traits) Message(id ErrorCode) string { return id.Message() }
func (Traits) Compare(a, b ErrorCode) int { return a.Compare(b) }
func (Traits) Matches(id ErrorCode, cond codes.Code) bool { return id.DefaultCondition() == cond }

func (Traits) SystemError(id ErrorCode, what string) error {
	return newError(id, what)
}

func orStatus(cat Category) Category {
	if cat == nil {
		return statusCat
	}
	return cat
}

func New(value int, cat Category) Code {
	return errcode.New[Traits, ErrorCode, Category, codes.Code](value, cat)
}

func NewWithMessage(value int, cat Category, msg string) Code {
	return New(value, cat).WithMessage(msg)
}

func From(id ErrorCode) Code {
	return errcode.From[Traits, ErrorCode, Category, codes.Code](id)
}

func FromWithMessage(id ErrorCode, msg string) Code {
	return From(id).WithMessage(msg)
}

// FromStatus returns the status category code for c.
func FromStatus(c codes.Code, msg string) Code {
	return FromWithMessage(FromStatusCode(c), msg)
}

func FromEnum(e Enum) Code {
	return errcode.FromEnum[Traits, ErrorCode, Category, codes.Code](e)
}

func FromEnumWithMessage(e Enum, msg string) Code {
	return FromEnum(e).WithMessage(msg)
}

func NewSystemError(c Code) *SystemError {
	return errcode.NewSystemError(c)
}

func NewSystemErrorWithMessage(c Code, msg string) *SystemError {
	return errcode.NewSystemErrorWithMessage(c, msg)
}

// CodeOf returns the Code of the first SystemError of this backend in err's
// chain.
func CodeOf(err error) (Code, bool) {
	return errcode.CodeOf[Traits, ErrorCode, Category, codes.Code](err)
}
