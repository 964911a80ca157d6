package fec

import "github.com/UserCommon/secure-radio/bit"

// Golay20_8 is the DMR Golay(20, 8) code: 8 data bits followed by 12
// parity bits, packed big-endian into the low 20 bits of 3 bytes. Its
// minimum distance of 8 lets Decode correct up to 3 bit errors; 4 errors
// are always detected.
type Golay20_8 struct{}

func (Golay20_8) Name() string      { return "golay20" }
func (Golay20_8) SymbolBits() int   { return 8 }
func (Golay20_8) CodewordSize() int { return 3 }

const golay20Mask = 1<<20 - 1

// syndrome -> error pattern for every error of weight 1..3
var golay20Errors = map[uint32]uint32{}

func Golay_20_8_Parity(bits bit.Bits) bit.Bits {
	var p = make(bit.Bits, 12)
	p[0] = bits[1] ^ bits[4] ^ bits[5] ^ bits[6] ^ bits[7]
	p[1] = bits[1] ^ bits[2] ^ bits[4]
	p[2] = bits[0] ^ bits[2] ^ bits[3] ^ bits[5]
	p[3] = bits[0] ^ bits[1] ^ bits[3] ^ bits[4] ^ bits[6]
	p[4] = bits[0] ^ bits[1] ^ bits[2] ^ bits[4] ^ bits[5] ^ bits[7]
	p[5] = bits[0] ^ bits[2] ^ bits[3] ^ bits[4] ^ bits[7]
	p[6] = bits[3] ^ bits[6] ^ bits[7]
	p[7] = bits[0] ^ bits[1] ^ bits[5] ^ bits[6]
	p[8] = bits[0] ^ bits[1] ^ bits[2] ^ bits[6] ^ bits[7]
	p[9] = bits[2] ^ bits[3] ^ bits[4] ^ bits[5] ^ bits[6]
	p[10] = bits[0] ^ bits[3] ^ bits[4] ^ bits[5] ^ bits[6] ^ bits[7]
	p[11] = bits[1] ^ bits[2] ^ bits[3] ^ bits[5] ^ bits[7]
	return p
}

func golay20Parity(data byte) uint32 {
	return Golay_20_8_Parity(bit.NewBits([]byte{data})).Word()
}

func golay20Syndrome(codeword uint32) uint32 {
	return golay20Parity(byte(codeword>>12)) ^ codeword&0xfff
}

func (Golay20_8) Encode(data byte) uint32 {
	return uint32(data)<<12 | golay20Parity(data)
}

// Decode ignores bits 20..31.
func (Golay20_8) Decode(codeword uint32) (byte, error) {
	codeword &= golay20Mask
	syndrome := golay20Syndrome(codeword)
	if syndrome != 0 {
		e, ok := golay20Errors[syndrome]
		if !ok {
			return 0, &UncorrectableError{Code: "golay_20_8", Codeword: codeword, Syndrome: syndrome}
		}
		codeword ^= e
	}
	return byte(codeword >> 12), nil
}

func (g Golay20_8) EncodeSymbol(dst []byte, symbol uint16) {
	cw := g.Encode(byte(symbol))
	dst[0], dst[1], dst[2] = byte(cw>>16), byte(cw>>8), byte(cw)
}

func (g Golay20_8) DecodeSymbol(src []byte) (uint16, error) {
	v, err := g.Decode(uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2]))
	return uint16(v), err
}

func init() {
	for i := uint(0); i < 20; i++ {
		for j := i; j < 20; j++ {
			for k := j; k < 20; k++ {
				e := uint32(1)<<i | uint32(1)<<j | uint32(1)<<k
				golay20Errors[golay20Syndrome(e)] = e
			}
		}
	}
}
