// hal/sim/board.go
package sim

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/golang/glog"
	"tinygo.org/x/drivers"

	"callback-go/errcode"
	"callback-go/hal"
)

const (
	defaultFIFO = 64
	maxFIFO     = 4096
)

// BoardConfig lists the simulated peripherals of a board.
type BoardConfig struct {
	Devices []DeviceConfig `json:"devices"`
}

// DeviceConfig describes one peripheral. Params depend on Type.
type DeviceConfig struct {
	ID     string `json:"id"`
	Type   string `json:"type"` // "pin" | "serial" | "adc"
	Params any    `json:"params,omitempty"`
}

type PinParams struct {
	Number int    `json:"number"`
	Pull   string `json:"pull,omitempty"` // "up" | "down" | ""
}

type SerialParams struct {
	FIFO int `json:"fifo,omitempty"`
}

// DefaultConfig is a button on GP15, one UART and one ADC at 0x48.
func DefaultConfig() BoardConfig {
	return BoardConfig{Devices: []DeviceConfig{
		{ID: "button", Type: "pin", Params: PinParams{Number: 15, Pull: "up"}},
		{ID: "uart0", Type: "serial", Params: SerialParams{FIFO: defaultFIFO}},
		{ID: "adc0", Type: "adc", Params: ADCConfig{Addr: 0x48, Bits: 12, VRefMilliVolts: 3300}},
	}}
}

// LoadConfig decodes a JSON board description.
func LoadConfig(r io.Reader) (BoardConfig, error) {
	var cfg BoardConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return BoardConfig{}, errcode.Wrap(errcode.InvalidParams, "board.config", err)
	}
	return cfg, nil
}

// Board holds the peripherals built from a BoardConfig.
type Board struct {
	Bus     drivers.I2C
	Pins    map[string]*Pin
	Serials map[string]*Serial
	ADCs    map[string]*ADC
}

// Build creates every configured device. ADCs share bus.
func Build(cfg BoardConfig, bus drivers.I2C) (*Board, error) {
	b := &Board{
		Bus:     bus,
		Pins:    map[string]*Pin{},
		Serials: map[string]*Serial{},
		ADCs:    map[string]*ADC{},
	}
	seen := map[string]bool{}
	pins := map[int]string{}
	for _, dc := range cfg.Devices {
		if dc.ID == "" {
			return nil, errcode.New(errcode.InvalidParams, "board.build", "device without id")
		}
		if seen[dc.ID] {
			return nil, errcode.New(errcode.InvalidParams, "board.build", "duplicate id "+dc.ID)
		}
		seen[dc.ID] = true

		switch dc.Type {
		case "pin":
			var p PinParams
			if err := decodeParams(dc.Params, &p); err != nil {
				return nil, errcode.Wrap(errcode.InvalidParams, "board.build "+dc.ID, err)
			}
			if owner, ok := pins[p.Number]; ok {
				return nil, errcode.New(errcode.PinInUse, "board.build "+dc.ID, "pin already used by "+owner)
			}
			pins[p.Number] = dc.ID
			pin := NewPin(p.Number)
			_ = pin.ConfigureInput(parsePull(p.Pull))
			b.Pins[dc.ID] = pin
			glog.V(1).Infof("board: pin %s on GP%d pull=%q", dc.ID, p.Number, p.Pull)
		case "serial":
			var p SerialParams
			if err := decodeParams(dc.Params, &p); err != nil {
				return nil, errcode.Wrap(errcode.InvalidParams, "board.build "+dc.ID, err)
			}
			if p.FIFO <= 0 {
				p.FIFO = defaultFIFO
			}
			s := NewSerial(dc.ID, p.FIFO)
			b.Serials[dc.ID] = s
			glog.V(1).Infof("board: serial %s fifo=%d", dc.ID, s.rx.Cap())
		case "adc":
			if bus == nil {
				return nil, errcode.New(errcode.InvalidParams, "board.build "+dc.ID, "adc needs an i2c bus")
			}
			var p ADCConfig
			if err := decodeParams(dc.Params, &p); err != nil {
				return nil, errcode.Wrap(errcode.InvalidParams, "board.build "+dc.ID, err)
			}
			a := NewADC(bus, p)
			b.ADCs[dc.ID] = a
			glog.V(1).Infof("board: adc %s addr=0x%02x bits=%d", dc.ID, a.cfg.Addr, a.cfg.Bits)
		default:
			glog.Warningf("board: rejecting %s: unknown type %q", dc.ID, dc.Type)
			return nil, errcode.New(errcode.Unsupported, "board.build "+dc.ID, "unknown type "+dc.Type)
		}
	}
	return b, nil
}

func (b *Board) Pin(id string) (*Pin, error) {
	if p, ok := b.Pins[id]; ok {
		return p, nil
	}
	return nil, errcode.New(errcode.UnknownDevice, "board.pin", id)
}

func (b *Board) Serial(id string) (*Serial, error) {
	if s, ok := b.Serials[id]; ok {
		return s, nil
	}
	return nil, errcode.New(errcode.UnknownDevice, "board.serial", id)
}

func (b *Board) ADC(id string) (*ADC, error) {
	if a, ok := b.ADCs[id]; ok {
		return a, nil
	}
	return nil, errcode.New(errcode.UnknownDevice, "board.adc", id)
}

// IDs returns every device id, sorted.
func (b *Board) IDs() []string {
	ids := make([]string, 0, len(b.Pins)+len(b.Serials)+len(b.ADCs))
	for id := range b.Pins {
		ids = append(ids, id)
	}
	for id := range b.Serials {
		ids = append(ids, id)
	}
	for id := range b.ADCs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func parsePull(s string) hal.Pull {
	switch s {
	case "up":
		return hal.PullUp
	case "down":
		return hal.PullDown
	default:
		return hal.PullNone
	}
}

// decodeParams re-decodes loosely typed params (a JSON map, raw bytes or an
// already typed struct) into dst.
func decodeParams[T any](src any, dst *T) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
