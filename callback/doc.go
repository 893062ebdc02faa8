// Package callback provides fixed-size, allocation-free callable wrappers for
// handlers that are attached to event sources such as pin interrupts, UART
// receive interrupts or ADC conversion-complete events.
//
// A wrapper holds exactly one of:
//
//   - nothing (the zero value, reported by IsNil),
//   - a plain function, bound with NewX,
//   - a free function plus one state pointer, bound with BindX,
//   - an object plus a method expression on its pointer type, bound with MemberX.
//
// All variants share one call shape. One wrapper type exists per shape:
//
//	Handler         func()
//	Sink[A]         func(A)
//	Func0[R]        func() R
//	Func1[A, R]     func(A) R
//	Func2[A, B, R]  func(A, B) R
//
// Constructors infer their type parameters, so the wrapper type never has to
// be spelled at the call site:
//
//	rx := callback.BindSink(onByte, &ctx)            // func(*rxCtx, byte)
//	done := callback.MemberHandler(&led, (*LED).Toggle)
//
// Only one state pointer can be bound. Handlers that need several values
// bind the address of a struct holding them.
//
// A wrapper is a func value, a state word and a tag (see InlineSize). It never
// allocates, never owns the bound state or object, and never dereferences it;
// only the bound function does, with its original pointer type. Copies are
// shallow. Keeping the state alive for as long as the wrapper may be invoked
// is the binder's job.
//
// Calling an empty wrapper panics with errcode.Unbound. Callers that want to
// treat an empty wrapper as a no-op use TryCall, or check IsNil first.
//
// Wrappers are plain values with no internal synchronisation. Code that
// rebinds a wrapper while another context may invoke it must serialise the
// two; package event provides attach points that do.
//
// Wrappers are comparable. Two wrappers are equal when they hold the same
// variant, function and state pointer; a wrapper equals its zero value iff
// it is empty.
package callback
