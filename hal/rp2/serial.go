// hal/rp2/serial.go
//go:build rp2040

package rp2

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"callback-go/callback"
	"callback-go/errcode"
	"callback-go/event"
	"callback-go/hal"
)

var _ hal.Serial = (*Serial)(nil)

// Serial adapts a uartx UART. uartx buffers received bytes from its own
// interrupt; Run turns each readiness edge into a call of the attached
// receive handler.
type Serial struct {
	u     *uartx.UART
	rxIRQ event.Line
}

// NewSerial configures "uart0" or "uart1".
func NewSerial(id string, baud uint32, tx, rx int) (*Serial, error) {
	var hw *uartx.UART
	switch id {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, errcode.New(errcode.UnknownDevice, "rp2.serial", id)
	}
	// Defaults inside uartx apply if zero.
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.Pin(tx),
		RX:       machine.Pin(rx),
	}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "rp2.serial", err)
	}
	return &Serial{u: hw}, nil
}

func (s *Serial) Write(p []byte) (int, error) { return s.u.Write(p) }
func (s *Serial) Read(p []byte) (int, error)  { return s.u.Read(p) }
func (s *Serial) Buffered() int               { return s.u.Buffered() }

func (s *Serial) AttachRx(h callback.Handler) callback.Handler { return s.rxIRQ.Attach(h) }

func (s *Serial) RxStats() event.Stats { return s.rxIRQ.Stats() }

// Run delivers receive events until ctx is done. The handler is called again
// while it keeps draining the buffer.
func (s *Serial) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.u.Readable():
			for n := s.u.Buffered(); n > 0; {
				if !s.rxIRQ.Fire() {
					break
				}
				next := s.u.Buffered()
				if next >= n {
					break
				}
				n = next
			}
		}
	}
}
