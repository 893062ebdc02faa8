// hal/rp2/pin.go
//go:build rp2040

package rp2

import (
	"machine"

	"callback-go/callback"
	"callback-go/event"
	"callback-go/hal"
)

var _ hal.Pin = (*Pin)(nil)

// Pin adapts machine.Pin. The GPIO interrupt runs Fire on the pin's event
// line, so the attached handler executes in interrupt context.
type Pin struct {
	p   machine.Pin
	irq event.Line
}

func NewPin(n int) *Pin { return &Pin{p: machine.Pin(n)} }

func (r *Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *Pin) Get() bool   { return r.p.Get() }
func (r *Pin) Number() int { return int(r.p) }

func (r *Pin) isr(machine.Pin) { r.irq.Fire() }

// SetIRQ masks the line across the swap; the hardware interrupt stays armed
// and any edge in between is counted as masked.
func (r *Pin) SetIRQ(edge hal.Edge, h callback.Handler) error {
	if edge == hal.EdgeNone || h.IsNil() {
		return r.ClearIRQ()
	}
	r.irq.Disable()
	r.irq.Attach(h)
	err := r.p.SetInterrupt(toChange(edge), r.isr)
	r.irq.Enable()
	return err
}

func (r *Pin) ClearIRQ() error {
	var zero machine.PinChange
	err := r.p.SetInterrupt(zero, nil)
	r.irq.Detach()
	return err
}

func (r *Pin) IRQStats() event.Stats { return r.irq.Stats() }

func toChange(e hal.Edge) machine.PinChange {
	switch e {
	case hal.EdgeRising:
		return machine.PinRising
	case hal.EdgeFalling:
		return machine.PinFalling
	default:
		return machine.PinToggle
	}
}
