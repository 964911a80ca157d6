package magma

import "fmt"

// SBox holds eight 16-entry nibble substitution rows, row i at
// [i*16, i*16+16).
type SBox [128]byte

// DefaultSBox is the substitution table from RFC 8891 (id-tc26-gost-28147-param-Z).
var DefaultSBox = SBox{
	0xc, 0x4, 0x6, 0x2, 0xa, 0x5, 0xb, 0x9, 0xe, 0x8, 0xd, 0x7, 0x0, 0x3, 0xf, 0x1,
	0x6, 0x8, 0x2, 0x3, 0x9, 0xa, 0x5, 0xc, 0x1, 0xe, 0x4, 0x7, 0xb, 0xd, 0x0, 0xf,
	0xb, 0x3, 0x5, 0x8, 0x2, 0xf, 0xa, 0xd, 0xe, 0x1, 0x7, 0x4, 0xc, 0x9, 0x6, 0x0,
	0xc, 0x8, 0x2, 0x1, 0xd, 0x4, 0xf, 0x6, 0x7, 0x0, 0xa, 0x5, 0x3, 0xe, 0x9, 0xb,
	0x7, 0xf, 0x5, 0xa, 0x8, 0x1, 0x6, 0xd, 0x0, 0x9, 0x3, 0xe, 0xb, 0x4, 0x2, 0xc,
	0x5, 0xd, 0xf, 0x6, 0x9, 0x2, 0xc, 0xa, 0xb, 0x7, 0x8, 0x1, 0x4, 0x3, 0xe, 0x0,
	0x8, 0xe, 0x2, 0x5, 0x6, 0x9, 0x1, 0xc, 0xf, 0x4, 0xb, 0x0, 0xd, 0xa, 0x3, 0x7,
	0x1, 0x7, 0xe, 0xd, 0x0, 0x5, 0x8, 0x3, 0x4, 0xf, 0xa, 0x6, 0x9, 0xc, 0xb, 0x2,
}

// Row returns substitution row i.
func (s *SBox) Row(i int) [16]byte {
	var row [16]byte
	copy(row[:], s[i*16:i*16+16])
	return row
}

// Validate reports entries outside the nibble range. Rows are not required
// to be permutations.
func (s *SBox) Validate() error {
	for i, v := range s {
		if v > 0x0f {
			return fmt.Errorf("magma: sbox row %d entry %d out of range: %#x", i/16, i%16, v)
		}
	}
	return nil
}

// IsPermutation reports whether every row is a bijection on 0..15, as
// standard parameter sets are.
func (s *SBox) IsPermutation() bool {
	for i := 0; i < 8; i++ {
		var seen uint16
		for _, v := range s.Row(i) {
			if v > 0x0f {
				return false
			}
			seen |= 1 << v
		}
		if seen != 0xffff {
			return false
		}
	}
	return true
}
