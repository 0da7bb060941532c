package crc

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blowfish"
)

// NewReader creates a record reader with a given CRC table, key and byte stream.
// The table and key must match the ones used by the Writer.
func NewReader(r io.Reader, t *Table, key []byte) (*Reader, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	rd := &Reader{c: c, tab: t, crc: New(t)}
	rd.Reset(r)
	return rd, nil
}

// Reader reads records written by Writer and verifies their checksums.
type Reader struct {
	r    io.Reader
	c    *blowfish.Cipher
	tab  *Table
	buf  []byte
	rest []byte
	crc  hash.Hash64
}

func (r *Reader) Reset(s io.Reader) {
	r.r = s
	r.rest = nil
	r.crc.Reset()
}

// CRC returns the CRC of all verified frames read since the last reset.
// It matches Writer.CRC for the same records.
func (r *Reader) CRC() uint64 {
	return r.crc.Sum64()
}

// Read implements io.Reader over the concatenated record payloads.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.rest) == 0 {
		rec, err := r.ReadRecord()
		if err != nil {
			return 0, err
		}
		r.rest = rec
	}
	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

func (r *Reader) readBlocks(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return err
	}
	if r.c != nil {
		for i := 0; i < len(p); i += Block {
			r.c.Decrypt(p[i:i+Block], p[i:i+Block])
		}
	}
	return nil
}

// ReadRecord reads the next record and returns its payload.
//
// It returns io.EOF if the stream ends at a record boundary and io.ErrUnexpectedEOF
// if it ends inside a record. A corrupted record fails with ErrChecksum.
func (r *Reader) ReadRecord() ([]byte, error) {
	var head [Block]byte
	if err := r.readBlocks(head[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(head[:])
	if n > MaxRecord {
		return nil, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, n)
	}
	size := r.tab.params.Size()
	total := frameSize(int(n), size)
	if cap(r.buf) < total {
		r.buf = make([]byte, total)
	}
	buf := r.buf[:total]
	copy(buf, head[:])
	if err := r.readBlocks(buf[Block:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	end := 4 + int(n)
	want := getBE(buf[end : end+size])
	if got := r.tab.Checksum(buf[:end]); got != want {
		return nil, fmt.Errorf("%w: got %#x, want %#x", ErrChecksum, got, want)
	}
	r.crc.Write(buf)
	out := make([]byte, n)
	copy(out, buf[4:end])
	return out, nil
}
