// callback/sink.go
package callback

import (
	"unsafe"

	"callback-go/errcode"
)

// Sink wraps a callable of shape func(A): a handler that receives one value,
// such as a received byte or a conversion result.
type Sink[A any] struct {
	fn    fnval
	state unsafe.Pointer
	kind  Kind
}

func EmptySink[A any]() Sink[A] { return Sink[A]{} }

// NewSink binds a plain function. A nil fn yields an empty Sink.
func NewSink[A any](fn func(A)) Sink[A] {
	if fn == nil {
		return Sink[A]{}
	}
	return Sink[A]{fn: erase(fn), kind: KindPlain}
}

// BindSink binds fn to state; fn receives state ahead of the value.
func BindSink[S, A any](fn func(*S, A), state *S) Sink[A] {
	if fn == nil {
		return Sink[A]{}
	}
	return Sink[A]{fn: erase(fn), state: unsafe.Pointer(state), kind: KindBoundFree}
}

// MemberSink binds a method expression such as (*Logger).Push to obj.
func MemberSink[T, A any](obj *T, method func(*T, A)) Sink[A] {
	if method == nil {
		return Sink[A]{}
	}
	return Sink[A]{fn: erase(method), state: unsafe.Pointer(obj), kind: KindBoundMember}
}

// Call delivers a to the bound target. It panics with errcode.Unbound if s is empty.
func (s Sink[A]) Call(a A) {
	switch s.kind {
	case KindPlain:
		restore[func(A)](s.fn)(a)
	case KindBoundFree, KindBoundMember:
		restore[func(unsafe.Pointer, A)](s.fn)(s.state, a)
	default:
		panic(errcode.Unbound)
	}
}

// TryCall delivers a if s is bound and reports whether it was.
func (s Sink[A]) TryCall(a A) bool {
	if s.kind == KindEmpty {
		return false
	}
	s.Call(a)
	return true
}

func (s Sink[A]) IsNil() bool { return s.kind == KindEmpty }
func (s Sink[A]) Valid() bool { return s.kind != KindEmpty }
func (s Sink[A]) Kind() Kind  { return s.kind }
