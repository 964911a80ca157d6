// Package fec implements the symbol-level forward error correction codes
// used to protect cipher blocks in transit.
package fec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUncorrectable is matched by every decode failure.
var ErrUncorrectable = errors.New("fec: uncorrectable codeword")

// UncorrectableError describes a codeword whose syndrome could not be
// resolved to a unique symbol.
type UncorrectableError struct {
	Code     string
	Codeword uint32
	Syndrome uint32
}

func (e *UncorrectableError) Error() string {
	return fmt.Sprintf("fec/%s: uncorrectable codeword %#x (syndrome %#x)", e.Code, e.Codeword, e.Syndrome)
}

func (e *UncorrectableError) Is(target error) bool {
	return target == ErrUncorrectable
}

// SymbolCodec protects fixed-width symbols with fixed-size byte codewords.
// Symbols are carried in the low SymbolBits bits of a uint16.
type SymbolCodec interface {
	Name() string
	SymbolBits() int
	CodewordSize() int
	EncodeSymbol(dst []byte, symbol uint16)
	DecodeSymbol(src []byte) (uint16, error)
}

// Codecs lists every codec by name.
var Codecs = map[string]SymbolCodec{
	Hamming7_4{}.Name():  Hamming7_4{},
	Repetition3{}.Name(): Repetition3{},
	Parity21_16{}.Name(): Parity21_16{},
	Golay20_8{}.Name():   Golay20_8{},
	Identity{}.Name():    Identity{},
}

// ByName resolves a codec, case insensitive.
func ByName(name string) (SymbolCodec, error) {
	codec, ok := Codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("fec: unknown codec %q", name)
	}
	return codec, nil
}

func parity32(v uint32) uint32 {
	v ^= v >> 16
	v ^= v >> 8
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v & 1
}
