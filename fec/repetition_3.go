package fec

// Repetition3 sends every byte three times and majority votes on receive.
type Repetition3 struct{}

func (Repetition3) Name() string      { return "repetition3" }
func (Repetition3) SymbolBits() int   { return 8 }
func (Repetition3) CodewordSize() int { return 3 }

func (Repetition3) Encode(data byte) [3]byte {
	return [3]byte{data, data, data}
}

// Decode returns the value at least two copies agree on.
func (Repetition3) Decode(codeword [3]byte) (byte, error) {
	a, b, c := codeword[0], codeword[1], codeword[2]
	switch {
	case a == b || a == c:
		return a, nil
	case b == c:
		return b, nil
	default:
		return 0, &UncorrectableError{
			Code:     "repetition_3",
			Codeword: uint32(a)<<16 | uint32(b)<<8 | uint32(c),
		}
	}
}

func (r Repetition3) EncodeSymbol(dst []byte, symbol uint16) {
	cw := r.Encode(byte(symbol))
	copy(dst, cw[:])
}

func (r Repetition3) DecodeSymbol(src []byte) (uint16, error) {
	v, err := r.Decode([3]byte{src[0], src[1], src[2]})
	return uint16(v), err
}
