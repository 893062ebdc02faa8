// hal/hal.go
package hal

import (
	"context"
	"io"

	"callback-go/callback"
)

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Edge selects which pin transitions raise an interrupt.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseEdge is the inverse of Edge.String; unknown names map to EdgeNone.
func ParseEdge(s string) Edge {
	switch s {
	case "rising":
		return EdgeRising
	case "falling":
		return EdgeFalling
	case "both":
		return EdgeBoth
	default:
		return EdgeNone
	}
}

// Selects reports whether a transition from prev to next is selected by e.
func (e Edge) Selects(prev, next bool) bool {
	switch {
	case !prev && next:
		return e == EdgeRising || e == EdgeBoth
	case prev && !next:
		return e == EdgeFalling || e == EdgeBoth
	default:
		return false
	}
}

// Pin is a GPIO input that can raise an interrupt.
type Pin interface {
	ConfigureInput(pull Pull) error
	Get() bool
	Number() int
	// SetIRQ attaches h to the selected edges, replacing any previous handler.
	// EdgeNone or an empty h clears the interrupt.
	SetIRQ(edge Edge, h callback.Handler) error
	ClearIRQ() error
}

// Serial is a UART whose receive interrupt runs an attached handler. The
// handler drains received bytes with Read.
type Serial interface {
	io.Writer
	io.Reader
	Buffered() int
	AttachRx(h callback.Handler) callback.Handler
}

// Sample is one ADC conversion result.
type Sample struct {
	Raw        uint16
	MilliVolts uint16
}

// ADC runs single conversions and hands each result to the attached sink.
type ADC interface {
	Start(ctx context.Context) error
	AttachComplete(s callback.Sink[Sample]) callback.Sink[Sample]
}
