package errcode

import "errors"

// SystemError carries a Code through error-returning call chains. It wraps the
// backend's native error, which Unwrap exposes.
type SystemError[B Backend[I, Cat, Cond], I, Cat, Cond comparable] struct {
	code   Code[B, I, Cat, Cond]
	native error
	desc   string
}

// NewSystemError returns a SystemError for code. The description is the
// backend's native rendering of the identity together with the code's attached
// message.
func NewSystemError[B Backend[I, Cat, Cond], I, Cat, Cond comparable](code Code[B, I, Cat, Cond]) *SystemError[B, I, Cat, Cond] {
	var b B
	native := b.SystemError(code.id, code.what)
	return &SystemError[B, I, Cat, Cond]{
		code:   code,
		native: native,
		desc:   native.Error(),
	}
}

// NewSystemErrorWithMessage returns a SystemError whose description is msg
// followed by the code's attached message. The category's default message is
// not part of the description: the caller's text replaces it.
func NewSystemErrorWithMessage[B Backend[I, Cat, Cond], I, Cat, Cond comparable](code Code[B, I, Cat, Cond], msg string) *SystemError[B, I, Cat, Cond] {
	var b B
	what := msg + code.what
	return &SystemError[B, I, Cat, Cond]{
		code:   code,
		native: b.SystemError(code.id, what),
		desc:   what,
	}
}

func (e *SystemError[B, I, Cat, Cond]) Error() string {
	return e.desc
}

// Code returns the code e was built from, attached message included.
func (e *SystemError[B, I, Cat, Cond]) Code() Code[B, I, Cat, Cond] {
	return e.code
}

// Unwrap returns the backend's native error.
func (e *SystemError[B, I, Cat, Cond]) Unwrap() error {
	return e.native
}

// Is reports whether target is a SystemError of the same backend with an equal
// identity.
func (e *SystemError[B, I, Cat, Cond]) Is(target error) bool {
	t, ok := target.(*SystemError[B, I, Cat, Cond])
	if !ok {
		return false
	}
	return e.code.Equal(t.code)
}

// CodeOf returns the Code of the first SystemError of backend B in err's chain.
func CodeOf[B Backend[I, Cat, Cond], I, Cat, Cond comparable](err error) (Code[B, I, Cat, Cond], bool) {
	var se *SystemError[B, I, Cat, Cond]
	if errors.As(err, &se) {
		return se.code, true
	}
	return Code[B, I, Cat, Cond]{}, false
}
