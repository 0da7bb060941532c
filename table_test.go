package crc

import (
	"math/rand"
	"testing"

	"github.com/howeyc/crc16"
	"github.com/klauspost/crc32"
	"github.com/sigurn/crc8"
	"github.com/stretchr/testify/require"
)

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestPresetsCheck(t *testing.T) {
	for _, p := range Presets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			tab, err := MakeTable(p)
			require.NoError(t, err)
			require.NoError(t, tab.Verify())
			require.Equal(t, p.Check, tab.checksum(checkInput), "generic path")
			require.Equal(t, p, tab.Params())
		})
	}
}

func TestFastPathMatchesGeneric(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, p := range Presets() {
		tab := MustMakeTable(p)
		if tab.fast == nil {
			continue
		}
		for n := 0; n < 300; n += 7 {
			data := randBytes(r, n)
			require.Equal(t, tab.checksum(data), tab.Checksum(data), "%s len=%d", p.Name, n)

			crc := tab.fast.init
			for rest := data; len(rest) > 0; {
				k := 1 + r.Intn(16)
				if k > len(rest) {
					k = len(rest)
				}
				crc = tab.fast.update(crc, rest[:k])
				rest = rest[k:]
			}
			require.Equal(t, tab.checksum(data), tab.fast.complete(crc), "%s incremental len=%d", p.Name, n)
		}
	}
}

func TestAccelerated(t *testing.T) {
	for _, p := range []Params{
		CRC32ISOHDLC, CRC32ISCSI, CRC8SMBus, CRC8MaximDow,
		CRC16ARC, CRC16XModem, CRC16IBM3740, CRC16Modbus, CRC16Kermit,
	} {
		require.NotNil(t, MustMakeTable(p).fast, p.Name)
	}
	for _, p := range []Params{CRC32BZIP2, CRC12UMTS, CRC24OpenPGP, CRC64XZ} {
		require.Nil(t, MustMakeTable(p).fast, p.Name)
	}
}

func TestCRC32Reference(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	ieee := MustMakeTable(CRC32ISOHDLC)
	castagnoli := MustMakeTable(CRC32ISCSI)
	ctab := crc32.MakeTable(crc32.Castagnoli)
	for n := 0; n < 1000; n += 13 {
		data := randBytes(r, n)
		require.Equal(t, uint64(crc32.ChecksumIEEE(data)), ieee.checksum(data))
		require.Equal(t, uint64(crc32.Checksum(data, ctab)), castagnoli.checksum(data))
	}
}

func TestCRC8Reference(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cases := []struct {
		ours Params
		ref  crc8.Params
	}{
		{CRC8SMBus, crc8.CRC8},
		{CRC8MaximDow, crc8.Params{Poly: 0x31, RefIn: true, RefOut: true, Check: 0xa1, Name: "CRC-8/MAXIM"}},
	}
	for _, c := range cases {
		tab := MustMakeTable(c.ours)
		ref := crc8.MakeTable(c.ref)
		for n := 0; n < 200; n += 3 {
			data := randBytes(r, n)
			require.Equal(t, uint64(crc8.Checksum(data, ref)), tab.checksum(data), "%s len=%d", c.ours.Name, n)
		}
	}
}

func TestCRC16Reference(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	ibm := crc16.MakeTableNoXOR(crc16.IBM)
	ccitt := crc16.MakeTableNoXOR(crc16.CCITT)
	xmodem := crc16.MakeBitsReversedTable(crc16.CCITTFalse)
	cases := []struct {
		ours Params
		ref  func([]byte) uint16
	}{
		{CRC16ARC, func(b []byte) uint16 { return crc16.Checksum(b, ibm) }},
		{CRC16Modbus, func(b []byte) uint16 { return crc16.Update(0xffff, ibm, b) }},
		{CRC16Kermit, func(b []byte) uint16 { return crc16.Checksum(b, ccitt) }},
		{CRC16XModem, func(b []byte) uint16 { return crc16.Checksum(b, xmodem) }},
		{CRC16IBM3740, crc16.ChecksumCCITTFalse},
	}
	for _, c := range cases {
		tab := MustMakeTable(c.ours)
		require.Equal(t, uint64(c.ref(checkInput)), c.ours.Check, c.ours.Name)
		for n := 0; n < 200; n += 3 {
			data := randBytes(r, n)
			require.Equal(t, uint64(c.ref(data)), tab.checksum(data), "%s len=%d", c.ours.Name, n)
		}
	}
}

// For an MSB-first CRC with no init and no final XOR, the table must agree with
// the plain polynomial remainder of the message.
func TestTableMatchesRemainder(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 2000; i++ {
		width := uint(1 + r.Intn(63))
		p := Params{Width: width, Poly: r.Uint64() & (^uint64(0) >> (64 - width))}
		gen, gw, ok := p.Generator()
		require.True(t, ok)

		data := randBytes(r, r.Intn(8))
		rem, err := Remainder(getBE(data), uint(8*len(data)), gen, gw)
		require.NoError(t, err)
		require.Equal(t, rem, MustMakeTable(p).Checksum(data), "%v data=%x", p, data)
	}
}

func TestUpdateIncremental(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	data := randBytes(r, 513)
	for _, p := range Presets() {
		tab := MustMakeTable(p)
		crc := tab.Init()
		for rest := data; len(rest) > 0; {
			n := 1 + r.Intn(40)
			if n > len(rest) {
				n = len(rest)
			}
			crc = tab.Update(crc, rest[:n])
			rest = rest[n:]
		}
		require.Equal(t, tab.Checksum(data), tab.Complete(crc), p.Name)
	}
}

func TestMakeTableInvalid(t *testing.T) {
	_, err := MakeTable(Params{Width: 0})
	require.ErrorIs(t, err, ErrInvalidGenerator)

	_, err = MakeTable(Params{Width: 65})
	require.ErrorIs(t, err, ErrInvalidGenerator)

	_, err = MakeTable(Params{Width: 8, Poly: 0x107})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = MakeTable(Params{Width: 4, Poly: 0x3, Init: 0x10})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = MakeTable(Params{Width: 4, Poly: 0x3, XorOut: 0x1f})
	require.ErrorIs(t, err, ErrInvalidParams)

	require.Panics(t, func() {
		MustMakeTable(Params{Width: 3, Poly: 0xff})
	})
}

func TestVerifyMismatch(t *testing.T) {
	p := CRC16XModem
	p.Check = 0x1234
	err := MustMakeTable(p).Verify()
	require.ErrorIs(t, err, ErrChecksum)
}

func TestGenerator(t *testing.T) {
	gen, w, ok := CRC16XModem.Generator()
	require.True(t, ok)
	require.Equal(t, uint64(0x11021), gen)
	require.Equal(t, uint(17), w)

	_, _, ok = CRC64ECMA182.Generator()
	require.False(t, ok)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("crc-32")
	require.True(t, ok)
	require.Equal(t, CRC32ISOHDLC, p)

	p, ok = Lookup(" CRC-16/ccitt-false ")
	require.True(t, ok)
	require.Equal(t, CRC16IBM3740, p)

	p, ok = Lookup("CRC-64/XZ")
	require.True(t, ok)
	require.Equal(t, CRC64XZ, p)

	_, ok = Lookup("CRC-7/NOPE")
	require.False(t, ok)
}

func TestPresetsSorted(t *testing.T) {
	list := Presets()
	require.Len(t, list, len(catalog))
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		require.True(t, a.Width < b.Width || (a.Width == b.Width && a.Name < b.Name), "%s before %s", a.Name, b.Name)
	}
	list[0].Name = "changed"
	require.NotEqual(t, "changed", Presets()[0].Name)
}
