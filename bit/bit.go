package bit

type Bit byte

func (b *Bit) Flip() {
	(*b) ^= 0x01
}

type Bits []Bit

func toBits(b byte) Bits {
	var o = make(Bits, 8)
	for bit, mask := 0, byte(128); bit < 8; bit, mask = bit+1, mask>>1 {
		if b&mask != 0 {
			o[bit] = 1
		}
	}
	return o
}

// NewBits expands bytes into bits, most significant bit first.
func NewBits(bytes []byte) Bits {
	var l = len(bytes)
	var o = make(Bits, 0, l*8)
	for i := 0; i < l; i++ {
		o = append(o, toBits(bytes[i])...)
	}
	return o
}

// NewWord expands the lowest n bits of v, most significant bit first.
func NewWord(v uint32, n int) Bits {
	var o = make(Bits, n)
	for i := 0; i < n; i++ {
		o[i] = Bit((v >> uint(n-1-i)) & 1)
	}
	return o
}

// Word packs up to 32 bits back into an integer, first bit most significant.
func (bits Bits) Word() uint32 {
	var v uint32
	for _, b := range bits {
		v = (v << 1) | uint32(b&1)
	}
	return v
}

func (bits Bits) Bytes() []byte {
	var l = len(bits)
	var o = make([]byte, (l+7)/8)
	for i, b := range bits {
		if b == 0x01 {
			o[i/8] |= (1 << byte(7-(i%8)))
		}
	}
	return o
}

func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i, b := range bits {
		if b != other[i] {
			return false
		}
	}
	return true
}

func (bits Bits) String() string {
	var s = make([]byte, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}
