package fec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepetition3(t *testing.T) {
	var r Repetition3
	require.Equal(t, [3]byte{0x5a, 0x5a, 0x5a}, r.Encode(0x5a))

	tests := []struct {
		codeword [3]byte
		want     byte
	}{
		{[3]byte{0x5a, 0x5a, 0x5a}, 0x5a},
		{[3]byte{0x00, 0x5a, 0x5a}, 0x5a},
		{[3]byte{0x5a, 0x00, 0x5a}, 0x5a},
		{[3]byte{0x5a, 0x5a, 0x00}, 0x5a},
	}
	for _, test := range tests {
		got, err := r.Decode(test.codeword)
		require.NoError(t, err)
		require.Equal(t, test.want, got, "%x", test.codeword)
	}

	_, err := r.Decode([3]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUncorrectable))

	var ue *UncorrectableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, uint32(0x000102), ue.Codeword)
}

func TestRepetition3Symbol(t *testing.T) {
	var (
		r   Repetition3
		buf = make([]byte, r.CodewordSize())
	)
	for v := 0; v < 256; v++ {
		r.EncodeSymbol(buf, uint16(v))
		buf[v%3] ^= 0xff
		got, err := r.DecodeSymbol(buf)
		require.NoError(t, err)
		require.Equal(t, uint16(v), got)
	}
}
