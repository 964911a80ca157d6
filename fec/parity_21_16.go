package fec

import "encoding/binary"

// Parity21_16 appends five parity bits to a 16-bit symbol. Parity bit i,
// stored at bit 16+i, covers data bits [0, 2^i).
//
// The checks are nested prefixes, so a single error in data bits 8..15
// produces the same syndrome as one in parity bit 4, and so on: the
// syndrome cannot locate an error. Decode therefore only detects, and any
// nonzero syndrome is uncorrectable.
type Parity21_16 struct{}

func (Parity21_16) Name() string      { return "parity21" }
func (Parity21_16) SymbolBits() int   { return 16 }
func (Parity21_16) CodewordSize() int { return 4 }

const parity21Mask = 1<<21 - 1

func parity21Checks(data uint32) uint32 {
	var p uint32
	for i := uint(0); i < 5; i++ {
		mask := uint32(1)<<(uint32(1)<<i) - 1
		p |= parity32(data&mask) << i
	}
	return p
}

func (Parity21_16) Encode(data uint16) uint32 {
	return uint32(data) | parity21Checks(uint32(data))<<16
}

// Decode ignores bits 21..31.
func (Parity21_16) Decode(codeword uint32) (uint16, error) {
	codeword &= parity21Mask
	syndrome := parity21Checks(codeword&0xffff) ^ codeword>>16
	if syndrome != 0 {
		return 0, &UncorrectableError{Code: "parity_21_16", Codeword: codeword, Syndrome: syndrome}
	}
	return uint16(codeword), nil
}

func (p Parity21_16) EncodeSymbol(dst []byte, symbol uint16) {
	binary.BigEndian.PutUint32(dst, p.Encode(symbol))
}

func (p Parity21_16) DecodeSymbol(src []byte) (uint16, error) {
	return p.Decode(binary.BigEndian.Uint32(src))
}
