// hal/sim/bus.go
package sim

import (
	"encoding/binary"
	"sync"

	"tinygo.org/x/drivers"

	"callback-go/errcode"
)

var _ drivers.I2C = (*Bus)(nil)

// Bus is a host I²C bus of register-file targets. A write sets the target's
// register pointer from w[0] and stores any remaining bytes; a read returns
// bytes from the pointer onwards.
type Bus struct {
	mu      sync.Mutex
	targets map[uint16]*[256]byte
	ptr     map[uint16]byte
	txs     int
}

func NewBus() *Bus {
	return &Bus{targets: map[uint16]*[256]byte{}, ptr: map[uint16]byte{}}
}

// AddTarget registers a device at addr.
func (b *Bus) AddTarget(addr uint16) {
	b.mu.Lock()
	if b.targets[addr] == nil {
		b.targets[addr] = new([256]byte)
	}
	b.mu.Unlock()
}

// SetU16 stores v big-endian at reg and reg+1 of the target at addr.
// reg 0xFF has no following register and is rejected.
func (b *Bus) SetU16(addr uint16, reg byte, v uint16) error {
	if reg == 0xFF {
		return errcode.New(errcode.InvalidParams, "i2c.set", "register 0xff has no successor")
	}
	b.AddTarget(addr)
	b.mu.Lock()
	regs := b.targets[addr]
	var be [2]byte
	binary.BigEndian.PutUint16(be[:], v)
	regs[reg], regs[reg+1] = be[0], be[1]
	b.mu.Unlock()
	return nil
}

func (b *Bus) Transactions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.txs
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	regs := b.targets[addr]
	if regs == nil {
		return errcode.New(errcode.UnknownDevice, "i2c.tx", "no ack")
	}
	b.txs++
	p := b.ptr[addr]
	if len(w) > 0 {
		p = w[0]
		b.ptr[addr] = p
		for i, v := range w[1:] {
			regs[p+byte(i)] = v
		}
	}
	for i := range r {
		r[i] = regs[p+byte(i)]
	}
	return nil
}
