package crc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blowfish"
)

// Block is the alignment of records in a stream. It equals the blowfish block size.
const Block = blowfish.BlockSize

// MaxRecord is the largest record payload accepted by Writer and Reader.
const MaxRecord = 64 << 20

// ErrRecordTooLarge is returned for a record payload above MaxRecord.
var ErrRecordTooLarge = errors.New("crc: record too large")

// NewCipher creates a blowfish cipher for the key.
// An empty key disables encryption, in which case it returns nil.
func NewCipher(key []byte) (*blowfish.Cipher, error) {
	if len(key) == 0 {
		return nil, nil
	}
	return blowfish.NewCipher(key)
}

// frameSize returns the size of a record with n payload bytes and a CRC of sum bytes.
func frameSize(n, sum int) int {
	total := 4 + n + sum
	return (total + Block - 1) / Block * Block
}

// NewWriter creates a record writer with a given CRC table, key and destination writer.
// Records are encrypted only if the key is not empty.
func NewWriter(w io.Writer, t *Table, key []byte) (*Writer, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	wr := &Writer{c: c, tab: t, crc: New(t)}
	wr.Reset(w)
	return wr, nil
}

// Writer writes checksummed records, each one aligned to Block.
//
// A record consists of a little-endian uint32 payload length, the payload, and
// the big-endian CRC of both, followed by zero padding.
type Writer struct {
	w   io.Writer
	c   *blowfish.Cipher
	tab *Table
	buf []byte
	off int64
	crc hash.Hash64
}

// Reset internal state and assign a new underlying writer to it.
func (w *Writer) Reset(d io.Writer) {
	w.w = d
	w.off = 0
	w.ResetCRC()
}

// ResetCRC resets the stream CRC.
func (w *Writer) ResetCRC() {
	w.crc.Reset()
}

// CRC returns the CRC of all frames written since the last reset, computed
// over the frames before encryption.
func (w *Writer) CRC() uint64 {
	return w.crc.Sum64()
}

// Written returns a number of bytes written to the underlying writer, including framing.
func (w *Writer) Written() int64 {
	return w.off
}

// WriteRecord writes p as a single record.
func (w *Writer) WriteRecord(p []byte) error {
	if len(p) > MaxRecord {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, len(p))
	}
	size := w.tab.params.Size()
	n := frameSize(len(p), size)
	if cap(w.buf) < n {
		w.buf = make([]byte, n)
	}
	buf := w.buf[:n]
	binary.LittleEndian.PutUint32(buf, uint32(len(p)))
	end := 4 + copy(buf[4:], p)
	putBE(buf[end:end+size], w.tab.Checksum(buf[:end]))
	for i := end + size; i < n; i++ {
		buf[i] = 0
	}
	w.crc.Write(buf)
	if w.c != nil {
		for i := 0; i < n; i += Block {
			w.c.Encrypt(buf[i:i+Block], buf[i:i+Block])
		}
	}
	m, err := w.w.Write(buf)
	w.off += int64(m)
	return err
}

// Write implements io.Writer. Every call produces one record.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.WriteRecord(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
