package crc

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// ErrInvalidParams is returned by Params.Validate when a value does not fit the CRC width.
var ErrInvalidParams = errors.New("crc: invalid parameters")

// Params describes a CRC in the Rocksoft model.
type Params struct {
	// Width of the CRC in bits, 1 to 64.
	Width uint
	// Poly is the generator polynomial without its implicit leading bit, MSB-first.
	Poly uint64
	// Init is the initial register value, not reflected.
	Init uint64
	// RefIn makes each input byte processed LSB-first.
	RefIn bool
	// RefOut reflects the register before the final XOR.
	RefOut bool
	// XorOut is applied to the result.
	XorOut uint64
	// Check is the CRC of the ASCII string "123456789".
	Check uint64
	Name  string
}

func (p Params) mask() uint64 {
	return ^uint64(0) >> (64 - p.Width)
}

// Validate checks the width and that all values fit into it.
func (p Params) Validate() error {
	if p.Width == 0 || p.Width > MaxWidth {
		return fmt.Errorf("%w: width %d", ErrInvalidGenerator, p.Width)
	}
	m := p.mask()
	switch {
	case p.Poly&^m != 0:
		return fmt.Errorf("%w: poly %#x does not fit %d bits", ErrInvalidParams, p.Poly, p.Width)
	case p.Init&^m != 0:
		return fmt.Errorf("%w: init %#x does not fit %d bits", ErrInvalidParams, p.Init, p.Width)
	case p.XorOut&^m != 0:
		return fmt.Errorf("%w: xorout %#x does not fit %d bits", ErrInvalidParams, p.XorOut, p.Width)
	case p.Check&^m != 0:
		return fmt.Errorf("%w: check %#x does not fit %d bits", ErrInvalidParams, p.Check, p.Width)
	}
	return nil
}

// Generator returns the full generator polynomial, including its leading bit, and its width
// as accepted by Remainder. It reports false for 64-bit CRCs, whose generator needs 65 bits.
func (p Params) Generator() (uint64, uint, bool) {
	if p.Width >= MaxWidth {
		return 0, 0, false
	}
	return 1<<p.Width | p.Poly, p.Width + 1, true
}

// Size returns the number of bytes needed to store a CRC of this width.
func (p Params) Size() int {
	return int(p.Width+7) / 8
}

func (p Params) String() string {
	return fmt.Sprintf("{Name:%s Width:%d Poly:%#x Init:%#x RefIn:%t RefOut:%t XorOut:%#x Check:%#x}",
		p.Name, p.Width, p.Poly, p.Init, p.RefIn, p.RefOut, p.XorOut, p.Check)
}

func reflect(v uint64, width uint) uint64 {
	return bits.Reverse64(v) >> (64 - width)
}

// Well-known CRC models, with check values from the reveng catalogue.
var (
	CRC3GSM      = Params{Width: 3, Poly: 0x3, XorOut: 0x7, Check: 0x4, Name: "CRC-3/GSM"}
	CRC4G704     = Params{Width: 4, Poly: 0x3, RefIn: true, RefOut: true, Check: 0x7, Name: "CRC-4/G-704"}
	CRC5USB      = Params{Width: 5, Poly: 0x05, Init: 0x1f, RefIn: true, RefOut: true, XorOut: 0x1f, Check: 0x19, Name: "CRC-5/USB"}
	CRC8SMBus    = Params{Width: 8, Poly: 0x07, Check: 0xf4, Name: "CRC-8/SMBUS"}
	CRC8MaximDow = Params{Width: 8, Poly: 0x31, RefIn: true, RefOut: true, Check: 0xa1, Name: "CRC-8/MAXIM-DOW"}
	CRC12UMTS    = Params{Width: 12, Poly: 0x80f, RefOut: true, Check: 0xdaf, Name: "CRC-12/UMTS"}
	CRC16ARC     = Params{Width: 16, Poly: 0x8005, RefIn: true, RefOut: true, Check: 0xbb3d, Name: "CRC-16/ARC"}
	CRC16XModem  = Params{Width: 16, Poly: 0x1021, Check: 0x31c3, Name: "CRC-16/XMODEM"}
	CRC16IBM3740 = Params{Width: 16, Poly: 0x1021, Init: 0xffff, Check: 0x29b1, Name: "CRC-16/IBM-3740"}
	CRC16Modbus  = Params{Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, Check: 0x4b37, Name: "CRC-16/MODBUS"}
	CRC16Kermit  = Params{Width: 16, Poly: 0x1021, RefIn: true, RefOut: true, Check: 0x2189, Name: "CRC-16/KERMIT"}
	CRC24OpenPGP = Params{Width: 24, Poly: 0x864cfb, Init: 0xb704ce, Check: 0x21cf02, Name: "CRC-24/OPENPGP"}
	CRC32ISOHDLC = Params{Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff, Check: 0xcbf43926, Name: "CRC-32/ISO-HDLC"}
	CRC32ISCSI   = Params{Width: 32, Poly: 0x1edc6f41, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff, Check: 0xe3069283, Name: "CRC-32/ISCSI"}
	CRC32BZIP2   = Params{Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, XorOut: 0xffffffff, Check: 0xfc891918, Name: "CRC-32/BZIP2"}
	CRC32MPEG2   = Params{Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, Check: 0x0376e6e7, Name: "CRC-32/MPEG-2"}
	CRC64ECMA182 = Params{Width: 64, Poly: 0x42f0e1eba9ea3693, Check: 0x6c40df5f0b497347, Name: "CRC-64/ECMA-182"}
	CRC64XZ      = Params{Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff, Check: 0x995dc9bbdf1939fa, Name: "CRC-64/XZ"}
)

var catalog = []Params{
	CRC3GSM, CRC4G704, CRC5USB,
	CRC8SMBus, CRC8MaximDow, CRC12UMTS,
	CRC16ARC, CRC16XModem, CRC16IBM3740, CRC16Modbus, CRC16Kermit,
	CRC24OpenPGP,
	CRC32ISOHDLC, CRC32ISCSI, CRC32BZIP2, CRC32MPEG2,
	CRC64ECMA182, CRC64XZ,
}

// Aliases for the most commonly used names.
var aliases = map[string]string{
	"CRC-8":              "CRC-8/SMBUS",
	"CRC-16":             "CRC-16/ARC",
	"CRC-16/CCITT":       "CRC-16/KERMIT",
	"CRC-16/CCITT-FALSE": "CRC-16/IBM-3740",
	"CRC-32":             "CRC-32/ISO-HDLC",
	"CRC-32C":            "CRC-32/ISCSI",
	"CRC-64":             "CRC-64/ECMA-182",
}

// Lookup finds a catalog entry by its name or a common alias, ignoring case.
func Lookup(name string) (Params, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Params{}, false
}

// Presets returns a copy of the catalog sorted by width and name.
func Presets() []Params {
	out := make([]Params, len(catalog))
	copy(out, catalog)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width < out[j].Width
		}
		return out[i].Name < out[j].Name
	})
	return out
}
