// callback/func2.go
package callback

import (
	"unsafe"

	"callback-go/errcode"
)

// Func2 wraps a callable of shape func(A, B) R.
type Func2[A, B, R any] struct {
	fn    fnval
	state unsafe.Pointer
	kind  Kind
}

func Empty2[A, B, R any]() Func2[A, B, R] { return Func2[A, B, R]{} }

func New2[A, B, R any](fn func(A, B) R) Func2[A, B, R] {
	if fn == nil {
		return Func2[A, B, R]{}
	}
	return Func2[A, B, R]{fn: erase(fn), kind: KindPlain}
}

func Bind2[S, A, B, R any](fn func(*S, A, B) R, state *S) Func2[A, B, R] {
	if fn == nil {
		return Func2[A, B, R]{}
	}
	return Func2[A, B, R]{fn: erase(fn), state: unsafe.Pointer(state), kind: KindBoundFree}
}

func Member2[T, A, B, R any](obj *T, method func(*T, A, B) R) Func2[A, B, R] {
	if method == nil {
		return Func2[A, B, R]{}
	}
	return Func2[A, B, R]{fn: erase(method), state: unsafe.Pointer(obj), kind: KindBoundMember}
}

// Call invokes the bound target. It panics with errcode.Unbound if f is empty.
func (f Func2[A, B, R]) Call(a A, b B) R {
	switch f.kind {
	case KindPlain:
		return restore[func(A, B) R](f.fn)(a, b)
	case KindBoundFree, KindBoundMember:
		return restore[func(unsafe.Pointer, A, B) R](f.fn)(f.state, a, b)
	}
	panic(errcode.Unbound)
}

func (f Func2[A, B, R]) TryCall(a A, b B) (R, bool) {
	if f.kind == KindEmpty {
		var zero R
		return zero, false
	}
	return f.Call(a, b), true
}

func (f Func2[A, B, R]) IsNil() bool { return f.kind == KindEmpty }
func (f Func2[A, B, R]) Valid() bool { return f.kind != KindEmpty }
func (f Func2[A, B, R]) Kind() Kind  { return f.kind }
