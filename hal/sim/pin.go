// hal/sim/pin.go
package sim

import (
	"sync"

	"callback-go/callback"
	"callback-go/event"
	"callback-go/hal"
)

var _ hal.Pin = (*Pin)(nil)

// Pin is a host GPIO input. Drive models the external signal; a selected
// transition fires the attached interrupt handler synchronously, the way an
// ISR would run on the MCU.
type Pin struct {
	mu     sync.Mutex
	number int
	level  bool
	edge   hal.Edge
	irq    event.Line
}

func NewPin(number int) *Pin { return &Pin{number: number} }

func (p *Pin) Number() int { return p.number }

// ConfigureInput sets the idle level implied by the pull.
func (p *Pin) ConfigureInput(pull hal.Pull) error {
	p.mu.Lock()
	switch pull {
	case hal.PullUp:
		p.level = true
	case hal.PullDown:
		p.level = false
	}
	p.mu.Unlock()
	return nil
}

func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Drive sets the input level and reports whether an interrupt handler ran.
func (p *Pin) Drive(level bool) bool {
	p.mu.Lock()
	prev := p.level
	p.level = level
	edge := p.edge
	p.mu.Unlock()
	if !edge.Selects(prev, level) {
		return false
	}
	return p.irq.Fire()
}

// SetIRQ masks the line while the handler is swapped so no edge is delivered
// to a half-configured pin.
func (p *Pin) SetIRQ(edge hal.Edge, h callback.Handler) error {
	if edge == hal.EdgeNone || h.IsNil() {
		return p.ClearIRQ()
	}
	p.irq.Disable()
	p.mu.Lock()
	p.edge = edge
	p.mu.Unlock()
	p.irq.Attach(h)
	p.irq.Enable()
	return nil
}

func (p *Pin) ClearIRQ() error {
	p.irq.Disable()
	p.mu.Lock()
	p.edge = hal.EdgeNone
	p.mu.Unlock()
	p.irq.Detach()
	p.irq.Enable()
	return nil
}

// Edge returns the configured interrupt edge.
func (p *Pin) Edge() hal.Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.edge
}

func (p *Pin) IRQStats() event.Stats { return p.irq.Stats() }
