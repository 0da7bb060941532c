// Package crc computes cyclic redundancy checks as polynomial remainders over GF(2),
// both bit by bit for arbitrary generators and byte-wise for parameterised CRC models.
package crc

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest message or generator accepted by Remainder.
const MaxWidth = 64

var (
	// ErrInvalidGenerator is returned for a generator with zero width or a clear leading bit.
	ErrInvalidGenerator = errors.New("crc: invalid generator")
	// ErrMessageOverflow is returned when a message does not fit its declared width.
	ErrMessageOverflow = errors.New("crc: message overflows its width")
)

func checkGenerator(gen uint64, width uint) error {
	if width == 0 || width > MaxWidth || gen>>(width-1) != 1 {
		return fmt.Errorf("%w: %#b (width %d)", ErrInvalidGenerator, gen, width)
	}
	return nil
}

func checkMessage(msg uint64, width uint) error {
	if width > MaxWidth {
		return fmt.Errorf("%w: width %d is above %d", ErrMessageOverflow, width, MaxWidth)
	}
	if width < MaxWidth && msg>>width != 0 {
		return fmt.Errorf("%w: %#b (width %d)", ErrMessageOverflow, msg, width)
	}
	return nil
}

// Remainder divides msg, padded with genWidth-1 zero bits, by gen over GF(2) and
// returns the genWidth-1 bit remainder.
//
// The leading bit of gen (bit genWidth-1) must be set and msg must fit into msgWidth bits.
func Remainder(msg uint64, msgWidth uint, gen uint64, genWidth uint) (uint64, error) {
	if err := checkGenerator(gen, genWidth); err != nil {
		return 0, err
	}
	if err := checkMessage(msg, msgWidth); err != nil {
		return 0, err
	}
	return remainder(msg, msgWidth, gen, genWidth), nil
}

func remainder(msg uint64, msgWidth uint, gen uint64, genWidth uint) uint64 {
	n := genWidth - 1
	if n == 0 {
		return 0
	}
	mask := uint64(1)<<n - 1
	poly := gen & mask
	// reg is the active window of the working register: the n bits below the
	// one being inspected. Message bits shift in MSB first, then n zero bits.
	var reg uint64
	for i := uint(0); i < msgWidth+n; i++ {
		var in uint64
		if i < msgWidth {
			in = msg >> (msgWidth - 1 - i) & 1
		}
		top := reg >> (n - 1)
		reg = (reg<<1 | in) & mask
		if top == 1 {
			reg ^= poly
		}
	}
	return reg
}

// Append returns the codeword formed by msg followed by its remainder.
// The codeword is msgWidth+genWidth-1 bits wide and must fit into MaxWidth.
func Append(msg uint64, msgWidth uint, gen uint64, genWidth uint) (uint64, error) {
	rem, err := Remainder(msg, msgWidth, gen, genWidth)
	if err != nil {
		return 0, err
	}
	n := genWidth - 1
	if msgWidth+n > MaxWidth {
		return 0, fmt.Errorf("%w: codeword width %d is above %d", ErrMessageOverflow, msgWidth+n, MaxWidth)
	}
	return msg<<n | rem, nil
}

// Check reports whether codeword divides evenly by gen, that is, whether it
// ends with a valid remainder as produced by Append.
func Check(codeword uint64, width uint, gen uint64, genWidth uint) (bool, error) {
	if err := checkGenerator(gen, genWidth); err != nil {
		return false, err
	}
	if err := checkMessage(codeword, width); err != nil {
		return false, err
	}
	n := genWidth - 1
	if width < n {
		return false, fmt.Errorf("%w: codeword width %d is below remainder width %d", ErrMessageOverflow, width, n)
	}
	// Dividing the codeword itself (without padding) is the same as checking that
	// the remainder of its message part equals its low n bits.
	msg := codeword >> n
	rem := codeword & (uint64(1)<<n - 1)
	return remainder(msg, width-n, gen, genWidth) == rem, nil
}
