package syscode

import "syscall"

// Category classifies the values of an ErrorCode and renders their messages.
//
// Implementations must be comparable, which in practice means pointer types.
// Codes are ordered and hashed by category name, but two categories are the
// same only when they are ==, so same-named categories stay distinct.
type Category interface {
	Name() string
	Message(value int) string
	DefaultCondition(value int) Condition
}

// Equivalencer is implemented by categories that recognise codes of other
// categories as equivalent to some of their own conditions.
type Equivalencer interface {
	Equivalent(code ErrorCode, condValue int) bool
}

// errnoCategory renders values as the platform's errno strings.
type errnoCategory struct {
	name string
}

var (
	generic = &errnoCategory{name: "generic"}
	system  = &errnoCategory{name: "system"}
)

// GenericCategory holds portable POSIX error conditions, the category of Errc.
func GenericCategory() Category { return generic }

// SystemCategory holds errors reported by the operating system. It is the
// default category of ErrorCode.
func SystemCategory() Category { return system }

func (c *errnoCategory) Name() string { return c.name }

func (c *errnoCategory) Message(value int) string {
	if value == 0 {
		return "success"
	}
	return syscall.Errno(value).Error()
}

// DefaultCondition maps both errno categories onto the generic category with
// the same value.
func (c *errnoCategory) DefaultCondition(value int) Condition {
	return Condition{value: value, cat: generic}
}

func isErrno(cat Category) bool {
	return cat == generic || cat == system
}
