package crc

import (
	"github.com/howeyc/crc16"
	"github.com/klauspost/crc32"
	"github.com/sigurn/crc8"
)

// accel is a library implementation of a CRC model. Its register values are
// opaque and only meaningful to its own update and complete functions.
type accel struct {
	init     uint64
	update   func(crc uint64, p []byte) uint64
	complete func(crc uint64) uint64
}

func (a *accel) checksum(p []byte) uint64 {
	return a.complete(a.update(a.init, p))
}

func identity(crc uint64) uint64 { return crc }

// accelerate returns a library implementation for p, or nil if none matches exactly.
func accelerate(p Params) *accel {
	switch {
	case p.Width == 32 && p.RefIn && p.RefOut && p.Init == 0xffffffff && p.XorOut == 0xffffffff:
		var tab *crc32.Table
		switch p.Poly {
		case 0x04c11db7:
			tab = crc32.MakeTable(crc32.IEEE)
		case 0x1edc6f41:
			tab = crc32.MakeTable(crc32.Castagnoli)
		default:
			return nil
		}
		// crc32.Update takes and returns finished checksums.
		return &accel{
			update: func(crc uint64, b []byte) uint64 {
				return uint64(crc32.Update(uint32(crc), tab, b))
			},
			complete: identity,
		}
	case p.Width == 16 && p.RefIn == p.RefOut:
		var (
			tab  *crc16.Table
			init = uint16(p.Init)
		)
		if p.RefIn {
			tab = crc16.MakeTableNoXOR(uint16(reflect(p.Poly, 16)))
			init = uint16(reflect(p.Init, 16))
		} else {
			tab = crc16.MakeBitsReversedTable(uint16(p.Poly))
		}
		xorOut := p.XorOut
		return &accel{
			init: uint64(init),
			update: func(crc uint64, b []byte) uint64 {
				return uint64(crc16.Update(uint16(crc), tab, b))
			},
			complete: func(crc uint64) uint64 {
				return crc ^ xorOut
			},
		}
	case p.Width == 8 && p.RefIn == p.RefOut:
		tab := crc8.MakeTable(crc8.Params{
			Poly:   uint8(p.Poly),
			Init:   uint8(p.Init),
			RefIn:  p.RefIn,
			RefOut: p.RefOut,
			XorOut: uint8(p.XorOut),
			Check:  uint8(p.Check),
			Name:   p.Name,
		})
		return &accel{
			init: uint64(crc8.Init(tab)),
			update: func(crc uint64, b []byte) uint64 {
				return uint64(crc8.Update(uint8(crc), b, tab))
			},
			complete: func(crc uint64) uint64 {
				return uint64(crc8.Complete(uint8(crc), tab))
			},
		}
	}
	return nil
}
