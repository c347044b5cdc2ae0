// Package syscode is the errno-style backend of errcode: codes are values in a
// Category, with the generic and system categories built in and Errc as the
// portable condition enum.
package syscode

import "codeberg.org/mutker/errcode/errcode"

// Traits resolves this backend for errcode.
type Traits struct{}

var _ errcode.Backend[ErrorCode, Category, Condition] = Traits{}

type (
	Code          = errcode.Code[Traits, ErrorCode, Category, Condition]
	SystemError   = errcode.SystemError[Traits, ErrorCode, Category, Condition]
	Enum          = errcode.Enum[ErrorCode]
	ConditionEnum = errcode.ConditionEnum[Condition]
)

func (Traits) Make(value int, cat Category) ErrorCode { return MakeErrorCode(value, cat) }
func (Traits) Value(id ErrorCode) int { return id.Value() }
func (Traits) Category(id ErrorCode) Category { return id.Category() }
func (Traits) DefaultCondition(id ErrorCode) Condition { return id.DefaultCondition() }
func (Traits) Message(id ErrorCode) string { return id.Message() }
func (Traits) Compare(a, b ErrorCode) int { return a.Compare(b) }
func (Traits) Matches(id ErrorCode, cond Condition) bool { return id.Matches(cond) }

func (Traits) Name(cat Category) string {
	if cat == nil {
		cat = system
	}
	return cat.Name()
}

func (Traits) SystemError(id ErrorCode, what string) error {
	return &Error{code: id, what: what}
}

// New returns the code for value in cat.
func New(value int, cat Category) Code {
	return errcode.New[Traits, ErrorCode, Category, Condition](value, cat)
}

// NewWithMessage returns the code for value in cat carrying msg.
func NewWithMessage(value int, cat Category, msg string) Code {
	return New(value, cat).WithMessage(msg)
}

// From wraps id unchanged.
func From(id ErrorCode) Code {
	return errcode.From[Traits, ErrorCode, Category, Condition](id)
}

// FromWithMessage wraps id carrying msg.
func FromWithMessage(id ErrorCode, msg string) Code {
	return From(id).WithMessage(msg)
}

// FromEnum returns the code e converts to.
func FromEnum(e Enum) Code {
	return errcode.FromEnum[Traits, ErrorCode, Category, Condition](e)
}

// FromEnumWithMessage returns the code e converts to carrying msg.
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
	return errcode.CodeOf[Traits, ErrorCode, Category, Condition](err)
}
