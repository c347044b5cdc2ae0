package syscode

import (
	"cmp"
	"strconv"

	"codeberg.org/mutker/errcode/errcode/internal/catorder"
)

// ErrorCode is the identity of this backend: a value in a Category. The zero
// value is success in the system category.
type ErrorCode struct {
	value int
	cat   Category
}

// MakeErrorCode returns the code for value in cat. A nil cat means the system
// category.
func MakeErrorCode(value int, cat Category) ErrorCode {
	if cat == nil {
		cat = system
	}
	return ErrorCode{value: value, cat: cat}
}

func (e ErrorCode) Value() int { return e.value }

func (e ErrorCode) Category() Category {
	if e.cat == nil {
		return system
	}
	return e.cat
}

func (e ErrorCode) DefaultCondition() Condition {
	return e.Category().DefaultCondition(e.value)
}

func (e ErrorCode) Message() string {
	return e.Category().Message(e.value)
}

// Failed reports whether e is not success.
func (e ErrorCode) Failed() bool { return e.value != 0 }

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

// Matches reports whether e is equivalent to cond, either through e's default
// condition or because cond's category says so.
func (e ErrorCode) Matches(cond Condition) bool {
	if e.DefaultCondition().Equal(cond) {
		return true
	}
	if eq, ok := cond.Category().(Equivalencer); ok {
		return eq.Equivalent(e, cond.value)
	}
	return false
}

func (e ErrorCode) String() string {
	return e.Category().Name() + ":" + strconv.Itoa(e.value)
}

// Condition is a category-independent classification several codes may map
// to. The zero value is success in the generic category.
type Condition struct {
	value int
	cat   Category
}

// MakeCondition returns the condition for value in cat. A nil cat means the
// generic category.
func MakeCondition(value int, cat Category) Condition {
	if cat == nil {
		cat = generic
	}
	return Condition{value: value, cat: cat}
}

func (c Condition) Value() int { return c.value }

func (c Condition) Category() Category {
	if c.cat == nil {
		return generic
	}
	return c.cat
}

func (c Condition) Message() string {
	return c.Category().Message(c.value)
}

func (c Condition) Equal(other Condition) bool {
	return c.value == other.value && c.Category() == other.Category()
}

func (c Condition) String() string {
	return c.Category().Name() + ":" + strconv.Itoa(c.value)
}
