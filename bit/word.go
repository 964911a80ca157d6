package bit

import "fmt"

// SplitHalves splits v into its upper and lower 32-bit words.
func SplitHalves(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

// JoinHalves is the inverse of SplitHalves.
func JoinHalves(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// SplitQuarters splits v into four 16-bit words, most significant first.
func SplitQuarters(v uint64) [4]uint16 {
	return [4]uint16{
		uint16(v >> 48),
		uint16(v >> 32),
		uint16(v >> 16),
		uint16(v),
	}
}

func JoinQuarters(q [4]uint16) uint64 {
	return uint64(q[0])<<48 | uint64(q[1])<<32 | uint64(q[2])<<16 | uint64(q[3])
}

// SplitNibbles splits v into sixteen nibbles, most significant first.
func SplitNibbles(v uint64) [16]uint8 {
	var n [16]uint8
	for i := range n {
		n[i] = uint8(v>>uint(60-4*i)) & 0x0f
	}
	return n
}

func JoinNibbles(n [16]uint8) uint64 {
	var v uint64
	for _, x := range n {
		v = v<<4 | uint64(x&0x0f)
	}
	return v
}

func checkWidth(width int) {
	switch width {
	case 4, 8, 16:
	default:
		panic(fmt.Sprintf("bit: unsupported symbol width %d", width))
	}
}

// SplitSymbols splits v into 64/width symbols of width bits, most
// significant first. Width must be 4, 8 or 16.
func SplitSymbols(v uint64, width int) []uint16 {
	checkWidth(width)
	var (
		n    = 64 / width
		mask = uint64(1)<<uint(width) - 1
		o    = make([]uint16, n)
	)
	for i := 0; i < n; i++ {
		o[i] = uint16((v >> uint(64-width*(i+1))) & mask)
	}
	return o
}

// JoinSymbols is the inverse of SplitSymbols. Each symbol is masked to
// width bits; a short slice leaves the trailing symbols zero.
func JoinSymbols(symbols []uint16, width int) uint64 {
	checkWidth(width)
	var (
		n    = 64 / width
		mask = uint64(1)<<uint(width) - 1
		v    uint64
	)
	for i := 0; i < n && i < len(symbols); i++ {
		v |= (uint64(symbols[i]) & mask) << uint(64-width*(i+1))
	}
	return v
}
