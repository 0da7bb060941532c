// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package crc

import (
	"errors"
	"fmt"
)

// ErrChecksum is returned when a computed CRC does not match the expected one.
var ErrChecksum = errors.New("crc: checksum mismatch")

var checkInput = []byte("123456789")

// Table is a 256-entry lookup table for a CRC model, suitable for byte-wise updates.
// It is immutable and safe for concurrent use.
type Table struct {
	params Params
	data   [256]uint64
	// fast is a library implementation matching params, if there is one.
	fast *accel
}

// MakeTable validates p and constructs a Table for it.
func MakeTable(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t := &Table{params: p}
	if p.RefIn {
		populateReflected(reflect(p.Poly, p.Width), &t.data)
	} else {
		populateNormal(p.Poly<<(64-p.Width), &t.data)
	}
	t.fast = accelerate(p)
	return t, nil
}

// MustMakeTable is like MakeTable, but panics on invalid parameters.
func MustMakeTable(p Params) *Table {
	t, err := MakeTable(p)
	if err != nil {
		panic(err)
	}
	return t
}

// populateReflected fills t for a reflected (LSB-first) register holding poly in reversed bit order.
func populateReflected(poly uint64, t *[256]uint64) {
	for i := 0; i < 256; i++ {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
}

// populateNormal fills t for an MSB-first register aligned to the top of 64 bits.
// poly must be aligned the same way.
func populateNormal(poly uint64, t *[256]uint64) {
	for i := 0; i < 256; i++ {
		crc := uint64(i) << 56
		for j := 0; j < 8; j++ {
			if crc>>63 == 1 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
}

// Params returns the CRC model of the table.
func (t *Table) Params() Params {
	return t.params
}

// Init returns the register value an Update sequence starts with.
func (t *Table) Init() uint64 {
	if t.params.RefIn {
		return reflect(t.params.Init, t.params.Width)
	}
	return t.params.Init << (64 - t.params.Width)
}

// Update feeds p into the register crc and returns the new register value.
// The register must come from Init or a previous Update with the same table.
func (t *Table) Update(crc uint64, p []byte) uint64 {
	if t.params.RefIn {
		for _, v := range p {
			crc = t.data[byte(crc)^v] ^ (crc >> 8)
		}
		return crc
	}
	for _, v := range p {
		crc = t.data[byte(crc>>56)^v] ^ (crc << 8)
	}
	return crc
}

// Complete converts a register value into the final CRC.
func (t *Table) Complete(crc uint64) uint64 {
	p := t.params
	if !p.RefIn {
		crc >>= 64 - p.Width
	}
	if p.RefIn != p.RefOut {
		crc = reflect(crc, p.Width)
	}
	return crc ^ p.XorOut
}

// Checksum returns the CRC of p.
func (t *Table) Checksum(p []byte) uint64 {
	if t.fast != nil {
		return t.fast.checksum(p)
	}
	return t.checksum(p)
}

func (t *Table) checksum(p []byte) uint64 {
	return t.Complete(t.Update(t.Init(), p))
}

// Verify checks the table against the check value of its parameters.
func (t *Table) Verify() error {
	if got := t.Checksum(checkInput); got != t.params.Check {
		return fmt.Errorf("%w: %s: got %#x, want %#x", ErrChecksum, t.params.Name, got, t.params.Check)
	}
	return nil
}
