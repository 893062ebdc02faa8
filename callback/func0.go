// callback/func0.go
package callback

import (
	"unsafe"

	"callback-go/errcode"
)

// Func0 wraps a callable of shape func() R.
type Func0[R any] struct {
	fn    fnval
	state unsafe.Pointer
	kind  Kind
}

func Empty0[R any]() Func0[R] { return Func0[R]{} }

func New0[R any](fn func() R) Func0[R] {
	if fn == nil {
		return Func0[R]{}
	}
	return Func0[R]{fn: erase(fn), kind: KindPlain}
}

func Bind0[S, R any](fn func(*S) R, state *S) Func0[R] {
	if fn == nil {
		return Func0[R]{}
	}
	return Func0[R]{fn: erase(fn), state: unsafe.Pointer(state), kind: KindBoundFree}
}

func Member0[T, R any](obj *T, method func(*T) R) Func0[R] {
	if method == nil {
		return Func0[R]{}
	}
	return Func0[R]{fn: erase(method), state: unsafe.Pointer(obj), kind: KindBoundMember}
}

// Call invokes the bound target. It panics with errcode.Unbound if f is empty.
func (f Func0[R]) Call() R {
	switch f.kind {
	case KindPlain:
		return restore[func() R](f.fn)()
	case KindBoundFree, KindBoundMember:
		return restore[func(unsafe.Pointer) R](f.fn)(f.state)
	}
	panic(errcode.Unbound)
}

// TryCall returns the zero R and false if f is empty.
func (f Func0[R]) TryCall() (R, bool) {
	if f.kind == KindEmpty {
		var zero R
		return zero, false
	}
	return f.Call(), true
}

func (f Func0[R]) IsNil() bool { return f.kind == KindEmpty }
func (f Func0[R]) Valid() bool { return f.kind != KindEmpty }
func (f Func0[R]) Kind() Kind  { return f.kind }
