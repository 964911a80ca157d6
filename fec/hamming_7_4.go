package fec

// Hamming7_4 maps a nibble to a 7-bit codeword laid out, most significant
// bit first, as p1 p2 d1 p3 d2 d3 d4. Codewords travel one per byte; the
// spare top bit is ignored on decode.
type Hamming7_4 struct{}

func (Hamming7_4) Name() string      { return "hamming74" }
func (Hamming7_4) SymbolBits() int   { return 4 }
func (Hamming7_4) CodewordSize() int { return 1 }

func (Hamming7_4) Encode(data uint8) uint8 {
	var (
		d1 = (data >> 3) & 1
		d2 = (data >> 2) & 1
		d3 = (data >> 1) & 1
		d4 = data & 1

		p1 = d1 ^ d2 ^ d4
		p2 = d1 ^ d3 ^ d4
		p3 = d2 ^ d3 ^ d4
	)
	return p1<<6 | p2<<5 | d1<<4 | p3<<3 | d2<<2 | d3<<1 | d4
}

// Decode corrects any single bit error. A double error is miscorrected to
// a different nibble; the code has distance 3 and cannot tell.
func (Hamming7_4) Decode(codeword uint8) (uint8, error) {
	codeword &= 0x7f
	var (
		p1 = (codeword >> 6) & 1
		p2 = (codeword >> 5) & 1
		d1 = (codeword >> 4) & 1
		p3 = (codeword >> 3) & 1
		d2 = (codeword >> 2) & 1
		d3 = (codeword >> 1) & 1
		d4 = codeword & 1

		c1 = p1 ^ d1 ^ d2 ^ d4
		c2 = p2 ^ d1 ^ d3 ^ d4
		c3 = p3 ^ d2 ^ d3 ^ d4
	)

	// The syndrome is the 1-based position of the bad bit, counted from
	// the most significant of the seven.
	if syndrome := c3<<2 | c2<<1 | c1; syndrome != 0 {
		codeword ^= 1 << (7 - syndrome)
	}

	return (codeword>>4)&1<<3 | (codeword>>2)&1<<2 | (codeword>>1)&1<<1 | codeword&1, nil
}

func (h Hamming7_4) EncodeSymbol(dst []byte, symbol uint16) {
	dst[0] = h.Encode(uint8(symbol) & 0x0f)
}

func (h Hamming7_4) DecodeSymbol(src []byte) (uint16, error) {
	v, err := h.Decode(src[0])
	return uint16(v), err
}
