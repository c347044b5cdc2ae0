package errcode

// Backend resolves the types and primitive operations of one underlying
// error-code representation. I is the identity, Cat the category and Cond the
// category-independent condition type.
//
// Implementations are zero-size types; Code and SystemError call them through
// the zero value of the type parameter, so a Backend must not hold state.
// The zero value of I must denote "no error" in the backend's default
// category.
type Backend[I, Cat, Cond comparable] interface {
	// Make builds an identity from a raw value and a category. Any value is
	// accepted.
	Make(value int, cat Cat) I

	Value(id I) int
	Category(id I) Cat

	// Name returns the name of cat. The Code hash uses it, so same-named
	// categories collide but never compare equal.
	Name(cat Cat) string

	DefaultCondition(id I) Cond

	// Message returns the category's default message for id.
	Message(id I) string

	// Compare orders identities by category, then value, and returns 0
	// exactly when a and b are the same value in the same category.
	Compare(a, b I) int

	// Matches reports whether id is equivalent to cond.
	Matches(id I, cond Cond) bool

	// SystemError returns the backend's native error for id carrying what.
	SystemError(id I, what string) error
}

// Enum is implemented by enum types registered as convertible into an identity
// of type I. ErrorCode is the conversion supplied by the enum's own domain.
type Enum[I any] interface {
	ErrorCode() I
}

// ConditionEnum is implemented by enum types that name a condition of type
// Cond.
type ConditionEnum[Cond any] interface {
	ErrorCondition() Cond
}
