package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"callback-go/callback"
	"callback-go/errcode"
	"callback-go/event"
	"callback-go/hal"
	"callback-go/hal/sim"
)

// app owns the simulated board and every state object handed to a binding.
type app struct {
	board *sim.Board
	bus   *sim.Bus
	out   io.Writer

	edges   map[string]*edgeCount
	echoes  map[string]*serialEcho
	samples map[string]*sampleAvg
}

func newApp(cfg sim.BoardConfig, out io.Writer) (*app, error) {
	bus := sim.NewBus()
	board, err := sim.Build(cfg, bus)
	if err != nil {
		return nil, err
	}
	// Make every configured converter answer on the bus.
	for _, adc := range board.ADCs {
		bus.AddTarget(adc.Config().Addr)
	}
	return &app{
		board:   board,
		bus:     bus,
		out:     out,
		edges:   map[string]*edgeCount{},
		echoes:  map[string]*serialEcho{},
		samples: map[string]*sampleAvg{},
	}, nil
}

// attach binds a demo target of the given variant to device id.
func (a *app) attach(id, variant string) (callback.Kind, error) {
	if p, ok := a.board.Pins[id]; ok {
		var h callback.Handler
		switch variant {
		case "plain":
			h = callback.NewHandler(func() { fmt.Fprintf(a.out, "%s: edge\n", id) })
		case "state":
			c := &edgeCount{}
			a.edges[id] = c
			h = callback.BindHandler(countEdge, c)
		case "member":
			h = callback.MemberHandler(&edgeLog{id: id, pin: p, out: a.out}, (*edgeLog).onEdge)
		default:
			return callback.KindEmpty, badVariant(variant)
		}
		return h.Kind(), p.SetIRQ(hal.EdgeBoth, h)
	}
	if s, ok := a.board.Serials[id]; ok {
		var h callback.Handler
		switch variant {
		case "plain":
			h = callback.NewHandler(func() {
				var buf [16]byte
				n, _ := s.Read(buf[:])
				fmt.Fprintf(a.out, "%s: rx %q\n", id, buf[:n])
			})
		case "state":
			e := &serialEcho{port: s}
			a.echoes[id] = e
			h = callback.BindHandler(echoRx, e)
		case "member":
			h = callback.MemberHandler(&lineReader{id: id, port: s, out: a.out}, (*lineReader).onRx)
		default:
			return callback.KindEmpty, badVariant(variant)
		}
		s.AttachRx(h)
		return h.Kind(), nil
	}
	if adc, ok := a.board.ADCs[id]; ok {
		var sk callback.Sink[hal.Sample]
		switch variant {
		case "plain":
			sk = callback.NewSink(func(s hal.Sample) { fmt.Fprintf(a.out, "%s: %dmV\n", id, s.MilliVolts) })
		case "state":
			avg := &sampleAvg{}
			a.samples[id] = avg
			sk = callback.BindSink(accumulate, avg)
		case "member":
			sk = callback.MemberSink(&sampleLog{id: id, out: a.out}, (*sampleLog).record)
		default:
			return callback.KindEmpty, badVariant(variant)
		}
		adc.AttachComplete(sk)
		return sk.Kind(), nil
	}
	return callback.KindEmpty, errcode.New(errcode.UnknownDevice, "attach", id)
}

func badVariant(v string) error {
	return errcode.New(errcode.InvalidParams, "attach", "variant must be plain, state or member, got "+v)
}

func (a *app) detach(id string) error {
	if p, ok := a.board.Pins[id]; ok {
		return p.ClearIRQ()
	}
	if s, ok := a.board.Serials[id]; ok {
		s.AttachRx(callback.EmptyHandler())
		return nil
	}
	if adc, ok := a.board.ADCs[id]; ok {
		adc.AttachComplete(callback.EmptySink[hal.Sample]())
		return nil
	}
	return errcode.New(errcode.UnknownDevice, "detach", id)
}

func (a *app) drive(id, level string) (bool, error) {
	p, err := a.board.Pin(id)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(level)
	if err != nil {
		return false, errcode.Wrap(errcode.InvalidParams, "drive", err)
	}
	return p.Drive(v), nil
}

func (a *app) rx(id, text string) (int, error) {
	s, err := a.board.Serial(id)
	if err != nil {
		return 0, err
	}
	return s.Inject([]byte(text)), nil
}

func (a *app) tx(id string) (string, error) {
	s, err := a.board.Serial(id)
	if err != nil {
		return "", err
	}
	return string(s.TX()), nil
}

// sample optionally loads raw into the converter's result register, then
// runs one conversion.
func (a *app) sample(ctx context.Context, id string, raw *uint16) error {
	adc, err := a.board.ADC(id)
	if err != nil {
		return err
	}
	if raw != nil {
		cfg := adc.Config()
		if err := a.bus.SetU16(cfg.Addr, cfg.Register, *raw); err != nil {
			return err
		}
	}
	return adc.Start(ctx)
}

// stats renders per-device event counters plus any bound state.
func (a *app) stats() string {
	var b strings.Builder
	for _, id := range a.board.IDs() {
		var st event.Stats
		var extra string
		switch {
		case a.board.Pins[id] != nil:
			st = a.board.Pins[id].IRQStats()
			if c := a.edges[id]; c != nil {
				extra = fmt.Sprintf(" edges=%d", c.n)
			}
		case a.board.Serials[id] != nil:
			s := a.board.Serials[id]
			st = s.RxStats()
			extra = fmt.Sprintf(" overruns=%d buffered=%d", s.Overruns(), s.Buffered())
		case a.board.ADCs[id] != nil:
			st = a.board.ADCs[id].CompleteStats()
			if avg := a.samples[id]; avg != nil {
				extra = fmt.Sprintf(" mean=%dmV", avg.mean())
			}
		}
		fmt.Fprintf(&b, "%-8s fired=%d spurious=%d masked=%d%s\n", id, st.Fired, st.Spurious, st.Masked, extra)
	}
	return b.String()
}

// callEmpty shows the fail-fast path of an unbound wrapper.
func (a *app) callEmpty() (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			glog.Warningf("recovered from unbound call: %v", e)
			err = e
		}
	}()
	var h callback.Handler
	h.Call()
	return nil
}

func (a *app) devices() []string {
	ids := a.board.IDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		switch {
		case a.board.Pins[id] != nil:
			out = append(out, id+" (pin GP"+strconv.Itoa(a.board.Pins[id].Number())+")")
		case a.board.Serials[id] != nil:
			out = append(out, id+" (serial)")
		default:
			out = append(out, id+" (adc)")
		}
	}
	sort.Strings(out)
	return out
}
