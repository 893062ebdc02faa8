// callback/handler.go
package callback

import (
	"unsafe"

	"callback-go/errcode"
)

// Handler wraps a callable of shape func(). It is the usual shape for
// interrupt handlers.
type Handler struct {
	fn    fnval
	state unsafe.Pointer
	kind  Kind
}

// EmptyHandler returns an unbound Handler, equal to the zero value.
func EmptyHandler() Handler { return Handler{} }

// NewHandler binds a plain function. A nil fn yields an empty Handler.
func NewHandler(fn func()) Handler {
	if fn == nil {
		return Handler{}
	}
	return Handler{fn: erase(fn), kind: KindPlain}
}

// BindHandler binds fn to state; fn receives state on every call.
func BindHandler[S any](fn func(*S), state *S) Handler {
	if fn == nil {
		return Handler{}
	}
	return Handler{fn: erase(fn), state: unsafe.Pointer(state), kind: KindBoundFree}
}

// MemberHandler binds a method expression such as (*LED).Toggle to obj.
func MemberHandler[T any](obj *T, method func(*T)) Handler {
	if method == nil {
		return Handler{}
	}
	return Handler{fn: erase(method), state: unsafe.Pointer(obj), kind: KindBoundMember}
}

// Call invokes the bound target. It panics with errcode.Unbound if h is empty.
func (h Handler) Call() {
	switch h.kind {
	case KindPlain:
		restore[func()](h.fn)()
	case KindBoundFree, KindBoundMember:
		restore[func(unsafe.Pointer)](h.fn)(h.state)
	default:
		panic(errcode.Unbound)
	}
}

// TryCall invokes the bound target and reports whether there was one.
func (h Handler) TryCall() bool {
	if h.kind == KindEmpty {
		return false
	}
	h.Call()
	return true
}

func (h Handler) IsNil() bool { return h.kind == KindEmpty }
func (h Handler) Valid() bool { return h.kind != KindEmpty }
func (h Handler) Kind() Kind  { return h.kind }
