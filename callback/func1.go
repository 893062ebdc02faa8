// callback/func1.go
package callback

import (
	"unsafe"

	"callback-go/errcode"
)

// Func1 wraps a callable of shape func(A) R.
type Func1[A, R any] struct {
	fn    fnval
	state unsafe.Pointer
	kind  Kind
}

// Empty1 returns an unbound Func1, equal to the zero value.
func Empty1[A, R any]() Func1[A, R] { return Func1[A, R]{} }

// New1 binds a plain function. A nil fn yields an empty Func1.
func New1[A, R any](fn func(A) R) Func1[A, R] {
	if fn == nil {
		return Func1[A, R]{}
	}
	return Func1[A, R]{fn: erase(fn), kind: KindPlain}
}

// Bind1 binds fn to state. The state pointer is stored as given, nil included,
// and handed back to fn as its first argument on every call.
func Bind1[S, A, R any](fn func(*S, A) R, state *S) Func1[A, R] {
	if fn == nil {
		return Func1[A, R]{}
	}
	return Func1[A, R]{fn: erase(fn), state: unsafe.Pointer(state), kind: KindBoundFree}
}

// Member1 binds a method expression to obj:
//
//	inc := callback.Member1(&counter, (*Counter).Increment)
func Member1[T, A, R any](obj *T, method func(*T, A) R) Func1[A, R] {
	if method == nil {
		return Func1[A, R]{}
	}
	return Func1[A, R]{fn: erase(method), state: unsafe.Pointer(obj), kind: KindBoundMember}
}

// Call invokes the bound target with a. It panics with errcode.Unbound if f is empty.
func (f Func1[A, R]) Call(a A) R {
	switch f.kind {
	case KindPlain:
		return restore[func(A) R](f.fn)(a)
	case KindBoundFree, KindBoundMember:
		return restore[func(unsafe.Pointer, A) R](f.fn)(f.state, a)
	}
	panic(errcode.Unbound)
}

// TryCall returns the zero R and false if f is empty.
func (f Func1[A, R]) TryCall(a A) (R, bool) {
	if f.kind == KindEmpty {
		var zero R
		return zero, false
	}
	return f.Call(a), true
}

func (f Func1[A, R]) IsNil() bool { return f.kind == KindEmpty }
func (f Func1[A, R]) Valid() bool { return f.kind != KindEmpty }
func (f Func1[A, R]) Kind() Kind  { return f.kind }
