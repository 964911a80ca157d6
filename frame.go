package radio

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/UserCommon/secure-radio/crc/crc16"
)

var ErrChecksum = errors.New("radio: frame checksum mismatch")

// AppendChecksum appends the big-endian CRC-16/CCITT of buf.
func AppendChecksum(buf []byte) []byte {
	var sum [2]byte
	binary.BigEndian.PutUint16(sum[:], crc16.ChecksumCCITT(buf))
	return append(buf, sum[:]...)
}

// SplitChecksum strips the trailing checksum from frame. On a mismatch the
// payload is still returned along with ErrChecksum, the codec may yet
// recover it.
func SplitChecksum(frame []byte) ([]byte, error) {
	if len(frame) < 2 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a checksum", ErrFrameSize, len(frame))
	}
	var (
		payload = frame[:len(frame)-2]
		want    = binary.BigEndian.Uint16(frame[len(frame)-2:])
	)
	if got := crc16.ChecksumCCITT(payload); got != want {
		return payload, fmt.Errorf("%w: %#04x != %#04x", ErrChecksum, got, want)
	}
	return payload, nil
}
