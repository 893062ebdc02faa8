// callback/kind.go
package callback

import "unsafe"

// Kind reports which variant a wrapper holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPlain
	KindBoundFree
	KindBoundMember
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBoundFree:
		return "bound_free"
	case KindBoundMember:
		return "bound_member"
	default:
		return "empty"
	}
}

// fnval holds a func value of any type, word for word. A func value is one
// word under gc and two (context, code) under TinyGo; every func type has the
// same size within one compiler. An array of pointers keeps wrappers
// comparable and keeps both words visible to the collector.
type fnval [unsafe.Sizeof((func())(nil)) / unsafe.Sizeof(unsafe.Pointer(nil))]unsafe.Pointer

// InlineSize is the size in bytes of every wrapper type in this package,
// whatever its type parameters: the func value, one state word and the kind
// tag padded to a word. That is 3 words under gc and 4 under TinyGo.
const InlineSize = unsafe.Sizeof(Handler{})

// erase copies the func value fn into an fnval. F must be a func type.
func erase[F any](fn F) fnval {
	return *(*fnval)(unsafe.Pointer(&fn))
}

// restore reinterprets a stored func value as type F.
// Bound functions taking *S are restored as F = func(unsafe.Pointer, ...);
// both shapes pass their first argument as one pointer word.
func restore[F any](v fnval) F {
	return *(*F)(unsafe.Pointer(&v))
}
