//go:build !errcode_rpc

package ec

import "codeberg.org/mutker/errcode/errcode/syscode"

// Backend names the active backend.
const Backend = "sys"

type (
	Traits      = syscode.Traits
	ErrorCode   = syscode.ErrorCode
	Category    = syscode.Category
	Condition   = syscode.Condition
	Code        = syscode.Code
	SystemError = syscode.SystemError
)

// DefaultCategory is the category of the zero Code.
func DefaultCategory() Category { return syscode.SystemCategory() }

// Categories returns the categories of the active backend by name.
func Categories() map[string]Category {
	return map[string]Category{
		syscode.GenericCategory().Name(): syscode.GenericCategory(),
		syscode.SystemCategory().Name():  syscode.SystemCategory(),
	}
}

func New(value int, cat Category) Code { return syscode.New(value, cat) }

func NewWithMessage(value int, cat Category, msg string) Code {
	return syscode.NewWithMessage(value, cat, msg)
}

func FromError(err error) Code { return syscode.FromError(err) }

func CodeOf(err error) (Code, bool) { return syscode.CodeOf(err) }
