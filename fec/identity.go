package fec

// Identity passes bytes through unprotected.
type Identity struct{}

func (Identity) Name() string      { return "none" }
func (Identity) SymbolBits() int   { return 8 }
func (Identity) CodewordSize() int { return 1 }

func (Identity) EncodeSymbol(dst []byte, symbol uint16) {
	dst[0] = byte(symbol)
}

func (Identity) DecodeSymbol(src []byte) (uint16, error) {
	return uint16(src[0]), nil
}
