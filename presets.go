package radio

import (
	"github.com/UserCommon/secure-radio/fec"
	"github.com/UserCommon/secure-radio/magma"
)

func mustGeneral(c *magma.Cipher, codec fec.SymbolCodec) *GeneralCipher {
	g, err := NewGeneralCipher(c, codec)
	if err != nil {
		panic(err)
	}
	return g
}

// NewMagmaHamming protects each ciphertext nibble with Hamming(7,4), one
// codeword per byte: 16 bytes per block.
func NewMagmaHamming(c *magma.Cipher) *GeneralCipher {
	return mustGeneral(c, fec.Hamming7_4{})
}

// NewMagmaRepetition sends each ciphertext byte three times: 24 bytes per block.
func NewMagmaRepetition(c *magma.Cipher) *GeneralCipher {
	return mustGeneral(c, fec.Repetition3{})
}

// NewMagmaParity protects each 16-bit quarter with the detect-only
// 21-bit parity code: 16 bytes per block.
func NewMagmaParity(c *magma.Cipher) *GeneralCipher {
	return mustGeneral(c, fec.Parity21_16{})
}

// NewMagmaGolay protects each ciphertext byte with Golay(20,8): 24 bytes
// per block.
func NewMagmaGolay(c *magma.Cipher) *GeneralCipher {
	return mustGeneral(c, fec.Golay20_8{})
}

// NewMagmaPlain applies no error correction: 8 bytes per block.
func NewMagmaPlain(c *magma.Cipher) *GeneralCipher {
	return mustGeneral(c, fec.Identity{})
}
