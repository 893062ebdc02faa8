//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"callback-go/callback"
	"callback-go/event"
	"callback-go/hal"
	"callback-go/hal/rp2"
)

// blinker toggles the on-board LED on every button press.
type blinker struct {
	led     machine.Pin
	on      bool
	presses uint32
}

func (b *blinker) press() {
	b.on = !b.on
	b.led.Set(b.on)
	b.presses++
}

// echoState is the single state pointer bound to the receive handler.
type echoState struct {
	port *rp2.Serial
	buf  [32]byte
}

func echoRx(e *echoState) {
	n, _ := e.port.Read(e.buf[:])
	if n > 0 {
		_, _ = e.port.Write(e.buf[:n])
	}
}

func main() {
	time.Sleep(1500 * time.Millisecond)
	println("[main] boot …")

	ctx := context.Background()

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl := &blinker{led: machine.LED}

	// Button presses are counted in ISR context, then reported from a task.
	btn := rp2.NewPin(15)
	_ = btn.ConfigureInput(hal.PullUp)
	if err := btn.SetIRQ(hal.EdgeFalling, callback.MemberHandler(bl, (*blinker).press)); err != nil {
		println("[main] button irq failed:", err.Error())
	}

	u0, err := rp2.NewSerial("uart0", 115200, 0, 1)
	if err != nil {
		println("[main] uart0 failed:", err.Error())
		return
	}
	u0.AttachRx(callback.BindHandler(echoRx, &echoState{port: u0}))
	go u0.Run(ctx)

	ticks := event.NewDeferred[uint32](4)
	ticks.Target().Attach(callback.NewSink(func(n uint32) {
		println("[main] presses:", n, "irq:", btn.IRQStats().Fired)
	}))
	ticks.Start(ctx)

	for {
		time.Sleep(5 * time.Second)
		ticks.Post(bl.presses)
	}
}
