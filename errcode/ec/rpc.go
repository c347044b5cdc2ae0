//go:build errcode_rpc

package ec

import (
	"codeberg.org/mutker/errcode/errcode/rpccode"
	"google.golang.org/grpc/codes"
)

// Backend names the active backend.
const Backend = "rpc"

type (
	Traits      = rpccode.Traits
	ErrorCode   = rpccode.ErrorCode
	Category    = rpccode.Category
	Condition   = codes.Code
	Code        = rpccode.Code
	SystemError = rpccode.SystemError
)

// DefaultCategory is the category of the zero Code.
func DefaultCategory() Category { return rpccode.StatusCategory() }

// Categories returns the categories of the active backend by name.
func Categories() map[string]Category {
	return map[string]Category{
		rpccode.StatusCategory().Name(): rpccode.StatusCategory(),
		rpccode.HTTPCategory().Name():   rpccode.HTTPCategory(),
	}
}

func New(value int, cat Category) Code { return rpccode.New(value, cat) }

func NewWithMessage(value int, cat Category, msg string) Code {
	return rpccode.NewWithMessage(value, cat, msg)
}

func FromError(err error) Code { return rpccode.FromError(err) }

func CodeOf(err error) (Code, bool) { return rpccode.CodeOf(err) }
