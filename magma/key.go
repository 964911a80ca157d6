package magma

import (
	"encoding/binary"
	"fmt"
)

// Key is the 256-bit master key as eight big-endian packed words.
type Key [8]uint32

// Schedule is the 32-entry round-key schedule.
type Schedule [Rounds]uint32

// Round key positions: K1..K8 three times, then K8..K1.
var scheduleIndex = [Rounds]uint8{
	0, 1, 2, 3, 4, 5, 6, 7,
	0, 1, 2, 3, 4, 5, 6, 7,
	0, 1, 2, 3, 4, 5, 6, 7,
	7, 6, 5, 4, 3, 2, 1, 0,
}

// KeyFromBytes packs 32 bytes into a Key, big-endian per word.
func KeyFromBytes(p []byte) (Key, error) {
	var k Key
	if len(p) != KeySize {
		return k, fmt.Errorf("%w: got %d bytes, want %d", ErrKeySize, len(p), KeySize)
	}
	for i := range k {
		k[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	return k, nil
}

func (k Key) Bytes() []byte {
	var p = make([]byte, KeySize)
	for i, w := range k {
		binary.BigEndian.PutUint32(p[i*4:], w)
	}
	return p
}

// Schedule derives the round keys.
func (k Key) Schedule() Schedule {
	var s Schedule
	for i, j := range scheduleIndex {
		s[i] = k[j]
	}
	return s
}
