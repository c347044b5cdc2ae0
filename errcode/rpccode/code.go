package rpccode

import (
	"cmp"
	"strconv"

	"codeberg.org/mutker/errcode/errcode/internal/catorder"
	"google.golang.org/grpc/codes"
)

// ErrorCode is the identity of this backend: a value in a Category. The zero
// value is codes.OK in the status category.
type ErrorCode struct {
	value int
	cat   Category
}

// MakeErrorCode returns the code for value in cat. A nil cat means the status
// category.
func MakeErrorCode(value int, cat Category) ErrorCode {
	if cat == nil {
		cat = statusCat
	}
	return ErrorCode{value: value, cat: cat}
}

// FromStatusCode returns the status category identity of c.
func FromStatusCode(c codes.Code) ErrorCode {
	return ErrorCode{value: int(c), cat: statusCat}
}

func (e ErrorCode) Value() int { return e.value }

func (e ErrorCode) Category() Category {
	if e.cat == nil {
		return statusCat
	}
	return e.cat
}

func (e ErrorCode) DefaultCondition() codes.Code {
	return e.Category().DefaultCondition(e.value)
}

func (e ErrorCode) Message() string {
	return e.Category().Message(e.value)
}

// Compare orders codes by category, then value. It returns 0 only for the
// same value in the same category; distinct categories sharing a name still
// differ.
func (e ErrorCode) Compare(other ErrorCode) int {
	a, b := e.Category(), other.Category()
	if c := catorder.Compare(a, b, a.Name(), b.Name()); c != 0 {
		return c
	}
	return cmp.Compare(e.value, other.value)
}

func (e ErrorCode) String() string {
	return e.Category().Name() + ":" + strconv.Itoa(e.value)
}

// Canonical registers the gRPC canonical codes as an enum, both as code and as
// condition: FromEnum(Canonical(codes.NotFound)).
type Canonical codes.Code

func (c Canonical) ErrorCode() ErrorCode { return FromStatusCode(codes.Code(c)) }

func (c Canonical) ErrorCondition() codes.Code { return codes.Code(c) }

func (c Canonical) String() string { return codes.Code(c).String() }

// ParseCanonical returns the canonical code named in the proto style, such as
// "NOT_FOUND".
func ParseCanonical(name string) (Canonical, bool) {
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(strconv.Quote(name))); err != nil {
		return 0, false
	}
	return Canonical(c), true
}
