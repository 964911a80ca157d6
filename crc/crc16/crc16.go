// Package crc16 implements the non-reflected 16-bit cyclic redundancy
// check used to checksum radio frames. See
// http://en.wikipedia.org/wiki/Cyclic_redundancy_check for information.
package crc16

// Predefined polynomials
const (
	// x^16 + x^12 + x^5 + 1, used by X.25, XMODEM, Bluetooth, ...
	CCITT = 0x1021
)

// Table is a 256-word table representing the polynomial for efficient processing.
type Table [256]uint16

var (
	CCITTTable = makeTable(CCITT)
)

// MakeTable returns the Table constructed from the specified polynomial.
func MakeTable(poly uint16) *Table {
	return makeTable(poly)
}

// makeTable returns the Table constructed from the specified polynomial,
// shifting most significant bit first.
func makeTable(poly uint16) *Table {
	t := new(Table)
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the result of adding the bytes in p to the crc.
func Update(crc uint16, tab *Table, p []byte) uint16 {
	for _, v := range p {
		crc = (crc << 8) ^ tab[byte(crc>>8)^v]
	}
	return crc
}

// Checksum returns the CRC-16 of data using the polynomial represented by
// the Table, starting from 0xffff.
func Checksum(data []byte, tab *Table) uint16 {
	return Update(0xffff, tab, data)
}

// ChecksumCCITT returns the CRC-16/CCITT-FALSE checksum of data.
func ChecksumCCITT(data []byte) uint16 {
	return Update(0xffff, CCITTTable, data)
}
