// Package event provides attach points for callback wrappers.
//
// A Line or Source is what a peripheral exposes to accept a handler. Attach
// and Detach may be called from task context while Fire is called from
// interrupt context: the binding is published with one atomic pointer swap,
// so Fire always sees either the old or the new handler in full, and Fire
// itself takes no lock and does not allocate. Firing an unbound or disabled
// attach point is counted and otherwise ignored; it never reaches the
// callback package's fail-fast path.
//
// Deferred moves delivery out of interrupt context onto a goroutine.
package event
