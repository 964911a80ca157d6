// Package magma implements the 64-bit GOST R 34.12-2015 block cipher
// "Magma" as described in RFC 8891.
package magma

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
	"sync"

	"github.com/UserCommon/secure-radio/bit"
)

const (
	BlockSize = 8  // bytes
	KeySize   = 32 // bytes
	Rounds    = 32
)

// Cipher is a keyed Magma instance. Encrypt and Decrypt may be called
// concurrently; Rekey excludes them while key and schedule are replaced.
type Cipher struct {
	mu       sync.RWMutex
	key      Key
	schedule Schedule
	sbox     SBox
}

func newCipher(key Key, schedule Schedule, sbox SBox) *Cipher {
	return &Cipher{key: key, schedule: schedule, sbox: sbox}
}

// Encrypt transforms one 64-bit block.
func (c *Cipher) Encrypt(block uint64) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a1, a0 := bit.SplitHalves(block)
	for r := 0; r < Rounds; r++ {
		a1, a0 = c.round(c.schedule[r], a1, a0)
	}
	return bit.JoinHalves(a0, a1)
}

// Decrypt inverts Encrypt by running the schedule backwards.
func (c *Cipher) Decrypt(block uint64) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b1, b0 := bit.SplitHalves(block)
	for r := Rounds - 1; r >= 0; r-- {
		b1, b0 = c.round(c.schedule[r], b1, b0)
	}
	return bit.JoinHalves(b0, b1)
}

// Rekey replaces the key and recomputes the schedule from it.
func (c *Cipher) Rekey(key Key) {
	c.mu.Lock()
	c.key = key
	c.schedule = key.Schedule()
	c.mu.Unlock()
}

// RekeyBytes is Rekey for a raw 32-byte key.
func (c *Cipher) RekeyBytes(p []byte) error {
	key, err := KeyFromBytes(p)
	if err != nil {
		return err
	}
	c.Rekey(key)
	return nil
}

func (c *Cipher) Key() Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

func (c *Cipher) Schedule() Schedule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schedule
}

func (c *Cipher) SBox() SBox {
	return c.sbox
}

// Block returns c as a crypto/cipher.Block over big-endian 8-byte blocks.
func (c *Cipher) Block() cipher.Block {
	return blockCipher{c}
}

// t substitutes each nibble of a through its S-box row, lowest nibble
// through row 0.
func (c *Cipher) t(a uint32) uint32 {
	var res uint32
	for i := uint(0); i < 8; i++ {
		v := (a >> (4 * i)) & 0x0f
		res |= uint32(c.sbox[i*16+uint(v)]&0x0f) << (4 * i)
	}
	return res
}

// g[k](a) = t(k + a mod 2^32) <<< 11
func (c *Cipher) g(k, a uint32) uint32 {
	return bits.RotateLeft32(c.t(k+a), 11)
}

// round is G[k](a1, a0) = (a0, g[k](a0) ^ a1).
func (c *Cipher) round(k, a1, a0 uint32) (uint32, uint32) {
	return a0, c.g(k, a0) ^ a1
}

type blockCipher struct {
	c *Cipher
}

func (b blockCipher) BlockSize() int { return BlockSize }

func (b blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("magma: input not full block")
	}
	binary.BigEndian.PutUint64(dst, b.c.Encrypt(binary.BigEndian.Uint64(src)))
}

func (b blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("magma: input not full block")
	}
	binary.BigEndian.PutUint64(dst, b.c.Decrypt(binary.BigEndian.Uint64(src)))
}

// NewCipher returns a cipher.Block keyed with a 32-byte key and the
// default S-box.
func NewCipher(key []byte) (cipher.Block, error) {
	c, err := NewBuilder().KeyBytes(key).SBox(DefaultSBox).Build()
	if err != nil {
		return nil, err
	}
	return c.Block(), nil
}
