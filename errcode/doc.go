// Package errcode provides an error code value that works on top of more than
// one underlying error-code representation and can carry a message of its own.
//
// A Code pairs a backend identity (a numeric value plus a category) with an
// optional attached message. When the attached message is non-empty it is what
// Message returns; otherwise the category's default message for the value is
// used. The message never takes part in identity: two codes with the same value
// and category are Equal, hash the same and sort together whatever they carry.
//
// # Backends
//
// The identity, category and condition types come from a Backend, a zero-size
// traits type resolved through type parameters. Two backends ship with this
// module:
//
//   - syscode: errno-style codes in the generic and system categories
//   - rpccode: gRPC status codes, with gRPC canonical codes as conditions
//
// Each backend package aliases Code and SystemError for its own types, so
// callers write syscode.Code rather than spelling out the type parameters.
// Package ec aliases whichever backend was selected at build time.
//
// # Registered enums
//
// Any type implementing Enum for a backend's identity type can construct or be
// assigned to a Code of that backend:
//
//	type DiskErr int
//
//	func (e DiskErr) ErrorCode() syscode.ErrorCode {
//	    return syscode.MakeErrorCode(int(e), diskCategory)
//	}
//
//	c := syscode.FromEnum(DiskErr(3))
//
// Passing a type that does not implement Enum is a compile error.
//
// # Propagation
//
// Code is a plain value and can be returned directly. When an error value is
// needed, Err converts a failed Code into a *SystemError that wraps the
// backend's native error and is recognised by errors.Is and errors.As.
package errcode
