// Package radio composes the Magma block cipher with a forward error
// correction code: blocks are encrypted, split into symbols and every
// symbol is protected independently for transport.
package radio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/UserCommon/secure-radio/bit"
	"github.com/UserCommon/secure-radio/fec"
)

var log = logging.MustGetLogger("radio")

var (
	ErrSymbolWidth = errors.New("radio: codec symbol width does not divide the block")
	ErrFrameSize   = errors.New("radio: unexpected frame size")
)

// BlockCipher is a 64-bit block transform.
type BlockCipher interface {
	Encrypt(block uint64) uint64
	Decrypt(block uint64) uint64
}

// DecodeError is returned by GeneralDecrypt when one or more symbols could
// not be decoded. Err is the failure of the first symbol in Symbols.
type DecodeError struct {
	Codec   string
	Symbols []int
	Err     error
}

func (e *DecodeError) Error() string {
	idx := make([]string, len(e.Symbols))
	for i, s := range e.Symbols {
		idx[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("radio: %s decode failed on symbol(s) %s: %v", e.Codec, strings.Join(idx, ","), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GeneralCipher binds one block cipher to one symbol codec. It satisfies
// both BlockCipher and fec.SymbolCodec through its embedded fields.
type GeneralCipher struct {
	BlockCipher
	fec.SymbolCodec
}

func NewGeneralCipher(cipher BlockCipher, codec fec.SymbolCodec) (*GeneralCipher, error) {
	switch codec.SymbolBits() {
	case 4, 8, 16:
	default:
		return nil, fmt.Errorf("%w: %s uses %d bit symbols", ErrSymbolWidth, codec.Name(), codec.SymbolBits())
	}
	return &GeneralCipher{BlockCipher: cipher, SymbolCodec: codec}, nil
}

// Symbols is the number of codewords per block.
func (g *GeneralCipher) Symbols() int {
	return 64 / g.SymbolBits()
}

// Size is the length of a protected block in bytes.
func (g *GeneralCipher) Size() int {
	return g.Symbols() * g.CodewordSize()
}

// GeneralEncrypt encrypts plaintext and encodes the ciphertext symbols,
// most significant first, into consecutive codewords.
func (g *GeneralCipher) GeneralEncrypt(plaintext uint64) []byte {
	var (
		ciphertext = g.Encrypt(plaintext)
		size       = g.CodewordSize()
		buf        = make([]byte, g.Size())
	)
	for i, symbol := range bit.SplitSymbols(ciphertext, g.SymbolBits()) {
		g.EncodeSymbol(buf[i*size:(i+1)*size], symbol)
	}
	return buf
}

// GeneralDecrypt decodes every codeword in buf and decrypts the recovered
// ciphertext. If any symbol fails, no plaintext is returned.
func (g *GeneralCipher) GeneralDecrypt(buf []byte) (uint64, error) {
	if len(buf) != g.Size() {
		return 0, fmt.Errorf("%w: got %d bytes, %s expects %d", ErrFrameSize, len(buf), g.Name(), g.Size())
	}

	var (
		size    = g.CodewordSize()
		symbols = make([]uint16, g.Symbols())
		failed  *DecodeError
	)
	for i := range symbols {
		symbol, err := g.DecodeSymbol(buf[i*size : (i+1)*size])
		if err != nil {
			log.Debugf("%s: symbol %d: %v", g.Name(), i, err)
			if failed == nil {
				failed = &DecodeError{Codec: g.Name(), Err: err}
			}
			failed.Symbols = append(failed.Symbols, i)
			continue
		}
		symbols[i] = symbol
	}
	if failed != nil {
		return 0, failed
	}

	return g.Decrypt(bit.JoinSymbols(symbols, g.SymbolBits())), nil
}
