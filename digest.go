package crc

import "hash"

// digest is a hash.Hash64 over a Table. It uses the library implementation
// of the table when there is one.
type digest struct {
	crc  uint64
	tab  *Table
	fast *accel
}

// New creates a hash.Hash64 computing the CRC of t. Sum appends the CRC in big-endian
// order, using the smallest number of bytes that fits the CRC width.
func New(t *Table) hash.Hash64 {
	d := &digest{tab: t, fast: t.fast}
	d.Reset()
	return d
}

func (d *digest) Size() int { return d.tab.params.Size() }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() {
	if d.fast != nil {
		d.crc = d.fast.init
		return
	}
	d.crc = d.tab.Init()
}

func (d *digest) Write(p []byte) (int, error) {
	if d.fast != nil {
		d.crc = d.fast.update(d.crc, p)
	} else {
		d.crc = d.tab.Update(d.crc, p)
	}
	return len(p), nil
}

func (d *digest) Sum64() uint64 {
	if d.fast != nil {
		return d.fast.complete(d.crc)
	}
	return d.tab.Complete(d.crc)
}

func (d *digest) Sum(in []byte) []byte {
	var b [8]byte
	n := d.Size()
	putBE(b[:n], d.Sum64())
	return append(in, b[:n]...)
}

// putBE stores the low len(b) bytes of v into b, most significant first.
func putBE(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func getBE(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
