// hal/sim/adc.go
package sim

import (
	"context"
	"encoding/binary"

	"tinygo.org/x/drivers"

	"callback-go/callback"
	"callback-go/errcode"
	"callback-go/event"
	"callback-go/hal"
	"callback-go/x/mathx"
)

var _ hal.ADC = (*ADC)(nil)

// ADCConfig describes an I²C converter with a right-aligned 16-bit result register.
type ADCConfig struct {
	Addr           uint16 `json:"addr"`
	Register       byte   `json:"register"`
	Bits           int    `json:"bits"`
	VRefMilliVolts uint16 `json:"vref_mv"`
}

func (c *ADCConfig) applyDefaults() {
	if c.Addr == 0 {
		c.Addr = 0x48
	}
	if c.Bits == 0 {
		c.Bits = 12
	}
	c.Bits = mathx.Clamp(c.Bits, 1, 16)
	if c.VRefMilliVolts == 0 {
		c.VRefMilliVolts = 3300
	}
}

// ADC reads one conversion per Start and fires the completion sink with it.
type ADC struct {
	bus  drivers.I2C
	cfg  ADCConfig
	full uint16
	done event.Source[hal.Sample]
}

func NewADC(bus drivers.I2C, cfg ADCConfig) *ADC {
	cfg.applyDefaults()
	return &ADC{bus: bus, cfg: cfg, full: mathx.FullScale(cfg.Bits)}
}

func (a *ADC) Config() ADCConfig { return a.cfg }

// Start performs one conversion. The completion sink runs before Start
// returns; with nothing attached the result is dropped.
func (a *ADC) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errcode.Wrap(errcode.Timeout, "adc.start", err)
	}
	var r [2]byte
	if err := a.bus.Tx(a.cfg.Addr, []byte{a.cfg.Register}, r[:]); err != nil {
		return errcode.Wrap(errcode.Error, "adc.start", err)
	}
	raw := mathx.Min(binary.BigEndian.Uint16(r[:]), a.full)
	a.done.Fire(hal.Sample{
		Raw:        raw,
		MilliVolts: mathx.MapU16(raw, 0, a.full, 0, a.cfg.VRefMilliVolts),
	})
	return nil
}

func (a *ADC) AttachComplete(s callback.Sink[hal.Sample]) callback.Sink[hal.Sample] {
	return a.done.Attach(s)
}

func (a *ADC) CompleteStats() event.Stats { return a.done.Stats() }
