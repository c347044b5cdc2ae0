package errcode

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Code is an error identity from backend B with an optional attached message.
//
// The zero value is the "no error" code of the backend's default category with
// no message. Codes are not comparable with ==; use Equal, which ignores the
// message, or Key for map keys.
type Code[B Backend[I, Cat, Cond], I, Cat, Cond comparable] struct {
	_    [0]func()
	id   I
	what string
}

// New returns the code for value in cat.
func New[B Backend[I, Cat, Cond], I, Cat, Cond comparable](value int, cat Cat) Code[B, I, Cat, Cond] {
	var b B
	return Code[B, I, Cat, Cond]{id: b.Make(value, cat)}
}

// From wraps an existing backend identity unchanged.
func From[B Backend[I, Cat, Cond], I, Cat, Cond comparable](id I) Code[B, I, Cat, Cond] {
	return Code[B, I, Cat, Cond]{id: id}
}

// FromEnum returns the code e converts to.
func FromEnum[B Backend[I, Cat, Cond], I, Cat, Cond comparable](e Enum[I]) Code[B, I, Cat, Cond] {
	return Code[B, I, Cat, Cond]{id: e.ErrorCode()}
}

// WithMessage returns a copy of c carrying msg. An empty msg removes the
// attached message.
func (c Code[B, I, Cat, Cond]) WithMessage(msg string) Code[B, I, Cat, Cond] {
	c.what = msg
	return c
}

// Assign replaces the identity of c. The attached message is left as it is, so
// an identity can be updated without losing the context already recorded; use
// AssignWithMessage or Clear to replace or drop the message too.
func (c *Code[B, I, Cat, Cond]) Assign(value int, cat Cat) {
	var b B
	c.id = b.Make(value, cat)
}

// AssignWithMessage replaces both the identity and the attached message.
func (c *Code[B, I, Cat, Cond]) AssignWithMessage(value int, cat Cat, msg string) {
	c.Assign(value, cat)
	c.what = msg
}

// AssignEnum replaces the identity of c with the one e converts to. The
// attached message is left as it is.
func (c *Code[B, I, Cat, Cond]) AssignEnum(e Enum[I]) {
	c.id = e.ErrorCode()
}

// Clear resets c to the zero value: no error and no message.
func (c *Code[B, I, Cat, Cond]) Clear() {
	var zero I
	c.id = zero
	c.what = ""
}

// ID returns the backend identity as stored.
func (c Code[B, I, Cat, Cond]) ID() I {
	return c.id
}

// Key returns the identity in canonical form, suitable as a map key: codes
// that are Equal have equal keys.
func (c Code[B, I, Cat, Cond]) Key() I {
	var b B
	return b.Make(b.Value(c.id), b.Category(c.id))
}

func (c Code[B, I, Cat, Cond]) Value() int {
	var b B
	return b.Value(c.id)
}

func (c Code[B, I, Cat, Cond]) Category() Cat {
	var b B
	return b.Category(c.id)
}

// CategoryName returns the name of the code's category.
func (c Code[B, I, Cat, Cond]) CategoryName() string {
	var b B
	return b.Name(b.Category(c.id))
}

func (c Code[B, I, Cat, Cond]) DefaultCondition() Cond {
	var b B
	return b.DefaultCondition(c.id)
}

// What returns the attached message, empty if none.
func (c Code[B, I, Cat, Cond]) What() string {
	return c.what
}

// Message returns the attached message if there is one, otherwise the
// category's default message for the value.
func (c Code[B, I, Cat, Cond]) Message() string {
	if c.what != "" {
		return c.what
	}
	var b B
	return b.Message(c.id)
}

// Failed reports whether c denotes an error, that is a non-zero value.
func (c Code[B, I, Cat, Cond]) Failed() bool {
	return c.Value() != 0
}

// OK reports whether c denotes success.
func (c Code[B, I, Cat, Cond]) OK() bool {
	return !c.Failed()
}

// Equal reports whether c and other have the same identity. Attached messages
// are ignored.
func (c Code[B, I, Cat, Cond]) Equal(other Code[B, I, Cat, Cond]) bool {
	return c.EqualID(other.id)
}

// EqualID reports whether c has identity id.
func (c Code[B, I, Cat, Cond]) EqualID(id I) bool {
	var b B
	return b.Compare(c.id, id) == 0
}

// MatchesCondition reports whether c is equivalent to cond.
func (c Code[B, I, Cat, Cond]) MatchesCondition(cond Cond) bool {
	var b B
	return b.Matches(c.id, cond)
}

// MatchesEnum reports whether c is equivalent to the condition e names.
func (c Code[B, I, Cat, Cond]) MatchesEnum(e ConditionEnum[Cond]) bool {
	return c.MatchesCondition(e.ErrorCondition())
}

// Compare returns -1, 0 or +1 as c sorts before, with or after other.
func (c Code[B, I, Cat, Cond]) Compare(other Code[B, I, Cat, Cond]) int {
	var b B
	return b.Compare(c.id, other.id)
}

func (c Code[B, I, Cat, Cond]) Less(other Code[B, I, Cat, Cond]) bool {
	return c.Compare(other) < 0
}

// Hash returns a hash of the identity. Equal codes hash equal regardless of
// their messages.
func (c Code[B, I, Cat, Cond]) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(c.Value())))

	d := xxhash.New()
	_, _ = d.WriteString(c.CategoryName())
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// String renders the identity as "category:value".
func (c Code[B, I, Cat, Cond]) String() string {
	return c.CategoryName() + ":" + strconv.Itoa(c.Value())
}

// Err returns nil when c denotes success and a *SystemError otherwise.
func (c Code[B, I, Cat, Cond]) Err() error {
	if c.OK() {
		return nil
	}
	return NewSystemError(c)
}

// Compare orders a and b; it fits slices.SortFunc.
func Compare[B Backend[I, Cat, Cond], I, Cat, Cond comparable](a, b Code[B, I, Cat, Cond]) int {
	return a.Compare(b)
}
