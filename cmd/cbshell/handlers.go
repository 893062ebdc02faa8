package main

import (
	"bytes"
	"fmt"
	"io"

	"callback-go/hal"
	"callback-go/hal/sim"
)

// Demo targets, one per binding variant and device kind. Each bound state or
// object lives in the app for as long as the handler may run.

// edgeCount is bound as state to countEdge.
type edgeCount struct{ n int }

func countEdge(c *edgeCount) { c.n++ }

// edgeLog reports edges through a member handler.
type edgeLog struct {
	id  string
	pin *sim.Pin
	out io.Writer
}

func (l *edgeLog) onEdge() {
	fmt.Fprintf(l.out, "%s: edge, level=%v\n", l.id, l.pin.Get())
}

// serialEcho is bound as state to echoRx.
type serialEcho struct {
	port *sim.Serial
	buf  [16]byte
}

func echoRx(e *serialEcho) {
	n, _ := e.port.Read(e.buf[:])
	_, _ = e.port.Write(e.buf[:n])
}

// lineReader assembles received bytes into lines through a member handler.
type lineReader struct {
	id   string
	port *sim.Serial
	line bytes.Buffer
	out  io.Writer
}

func (r *lineReader) onRx() {
	var b [1]byte
	for {
		n, _ := r.port.Read(b[:])
		if n == 0 {
			return
		}
		switch b[0] {
		case '\n':
			fmt.Fprintf(r.out, "%s: line %q\n", r.id, r.line.String())
			r.line.Reset()
		case '\r':
		default:
			r.line.WriteByte(b[0])
		}
	}
}

// sampleAvg is bound as state to accumulate.
type sampleAvg struct {
	n   int
	sum uint32
}

func accumulate(a *sampleAvg, s hal.Sample) {
	a.n++
	a.sum += uint32(s.MilliVolts)
}

func (a *sampleAvg) mean() uint32 {
	if a.n == 0 {
		return 0
	}
	return a.sum / uint32(a.n)
}

// sampleLog reports conversions through a member sink.
type sampleLog struct {
	id  string
	out io.Writer
}

func (l *sampleLog) record(s hal.Sample) {
	fmt.Fprintf(l.out, "%s: raw=%d %dmV\n", l.id, s.Raw, s.MilliVolts)
}
