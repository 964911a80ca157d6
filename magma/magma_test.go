package magma

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 8891, appendix A.
var (
	testKey = Key{
		0xffeeddcc, 0xbbaa9988, 0x77665544, 0x33221100,
		0xf0f1f2f3, 0xf4f5f6f7, 0xf8f9fafb, 0xfcfdfeff,
	}
	testKeyBytes = []byte{
		0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00,
		0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
	}
	testPlaintext  uint64 = 0xfedcba9876543210
	testCiphertext uint64 = 0x4ee901e5c2d8ca3d
)

func testCipher(t *testing.T) *Cipher {
	c, err := DefaultBuilder().Key(testKey).Build()
	require.NoError(t, err)
	return c
}

func TestTransformationT(t *testing.T) {
	c := testCipher(t)
	tests := [][2]uint32{
		{0xfdb97531, 0x2a196f34},
		{0x2a196f34, 0xebd9f03a},
		{0xebd9f03a, 0xb039bb3d},
		{0xb039bb3d, 0x68695433},
	}
	for _, test := range tests {
		if got := c.t(test[0]); got != test[1] {
			t.Fatalf("t(%08x) = %08x, want %08x", test[0], got, test[1])
		}
	}
}

func TestTransformationG(t *testing.T) {
	c := testCipher(t)
	tests := []struct {
		k, a, want uint32
	}{
		{0x87654321, 0xfedcba98, 0xfdcbc20c},
		{0xfdcbc20c, 0x87654321, 0x7e791a4b},
		{0x7e791a4b, 0xfdcbc20c, 0xc76549ec},
		{0xc76549ec, 0x7e791a4b, 0x9791c849},
	}
	for _, test := range tests {
		if got := c.g(test.k, test.a); got != test.want {
			t.Fatalf("g[%08x](%08x) = %08x, want %08x", test.k, test.a, got, test.want)
		}
	}
}

func TestKeySchedule(t *testing.T) {
	key, err := KeyFromBytes(testKeyBytes)
	require.NoError(t, err)
	require.Equal(t, testKey, key)
	require.Equal(t, testKeyBytes, key.Bytes())

	s := key.Schedule()
	for i := 0; i < 24; i++ {
		require.Equal(t, testKey[i%8], s[i], "round %d", i)
	}
	for i := 24; i < Rounds; i++ {
		require.Equal(t, testKey[31-i], s[i], "round %d", i)
	}
}

func TestEncryptRFC8891(t *testing.T) {
	c := testCipher(t)
	require.Equal(t, testCiphertext, c.Encrypt(testPlaintext))
	require.Equal(t, testPlaintext, c.Decrypt(testCiphertext))
}

func TestBijective(t *testing.T) {
	for _, c := range []*Cipher{testCipher(t), mustBuild(t, DefaultBuilder())} {
		for i := 0; i < 1000; i++ {
			x := rand.Uint64()
			require.Equal(t, x, c.Decrypt(c.Encrypt(x)))
			require.Equal(t, x, c.Encrypt(c.Decrypt(x)))
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := mustBuild(t, NewBuilder().KeyBytes(testKeyBytes).SBox(DefaultSBox))
	b := mustBuild(t, NewBuilder().Key(testKey).SBox(DefaultSBox))
	require.Equal(t, a.Schedule(), b.Schedule())
	for i := 0; i < 100; i++ {
		x := rand.Uint64()
		require.Equal(t, a.Encrypt(x), b.Encrypt(x))
	}
}

func TestBuildMissing(t *testing.T) {
	_, err := NewBuilder().SBox(DefaultSBox).Build()
	require.ErrorIs(t, err, ErrMissingKey)

	_, err = NewBuilder().Key(testKey).Build()
	require.ErrorIs(t, err, ErrMissingSBox)

	var be *BuildError
	_, err = NewBuilder().KeyBytes(testKeyBytes[:31]).SBox(DefaultSBox).Build()
	require.ErrorIs(t, err, ErrKeySize)
	require.ErrorAs(t, err, &be)
	require.Equal(t, "key", be.Field)

	bad := DefaultSBox
	bad[17] = 0x10
	_, err = NewBuilder().Key(testKey).SBox(bad).Build()
	require.ErrorAs(t, err, &be)
	require.Equal(t, "sbox", be.Field)
}

func TestBuildKeyReplacesBadKeyBytes(t *testing.T) {
	c, err := NewBuilder().KeyBytes(testKeyBytes[:31]).Key(testKey).SBox(DefaultSBox).Build()
	require.NoError(t, err)
	require.Equal(t, testCiphertext, c.Encrypt(testPlaintext))

	c, err = NewBuilder().KeyBytes(nil).KeyBytes(testKeyBytes).SBox(DefaultSBox).Build()
	require.NoError(t, err)
	require.Equal(t, testKey, c.Key())

	_, err = NewBuilder().Key(testKey).KeyBytes(nil).SBox(DefaultSBox).Build()
	require.ErrorIs(t, err, ErrKeySize)
}

func TestBuildScheduleOverride(t *testing.T) {
	var override Schedule
	for i := range override {
		override[i] = uint32(i) * 0x01010101
	}
	c := mustBuild(t, DefaultBuilder().Key(testKey).Schedule(override))
	require.Equal(t, override, c.Schedule())
	require.Equal(t, testKey, c.Key())

	x := uint64(0x0123456789abcdef)
	require.Equal(t, x, c.Decrypt(c.Encrypt(x)))

	c.Rekey(testKey)
	require.Equal(t, testKey.Schedule(), c.Schedule())
	require.Equal(t, testCiphertext, c.Encrypt(testPlaintext))
}

func TestDefaultBuilder(t *testing.T) {
	c := mustBuild(t, DefaultBuilder())
	require.Equal(t, Key{}, c.Key())
	require.Equal(t, Schedule{}, c.Schedule())
	require.Equal(t, DefaultSBox, c.SBox())
	require.True(t, DefaultSBox.IsPermutation())
}

func TestRekey(t *testing.T) {
	c := mustBuild(t, DefaultBuilder())
	require.NotEqual(t, testCiphertext, c.Encrypt(testPlaintext))

	require.NoError(t, c.RekeyBytes(testKeyBytes))
	require.Equal(t, testKey, c.Key())
	require.Equal(t, testKey.Schedule(), c.Schedule())
	require.Equal(t, testCiphertext, c.Encrypt(testPlaintext))

	require.ErrorIs(t, c.RekeyBytes([]byte{1, 2, 3}), ErrKeySize)
	require.Equal(t, testKey, c.Key())
}

func TestRekeyConcurrent(t *testing.T) {
	var (
		zero = mustBuild(t, DefaultBuilder())
		want = map[uint64]bool{
			zero.Encrypt(testPlaintext): true,
			testCiphertext:              true,
		}
		c  = mustBuild(t, DefaultBuilder())
		wg sync.WaitGroup
	)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if got := c.Encrypt(testPlaintext); !want[got] {
					t.Errorf("encrypt observed a mixed schedule: %016x", got)
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		if j%2 == 0 {
			c.Rekey(testKey)
		} else {
			c.Rekey(Key{})
		}
	}
	wg.Wait()
}

func TestBlock(t *testing.T) {
	b, err := NewCipher(testKeyBytes)
	require.NoError(t, err)
	require.Equal(t, BlockSize, b.BlockSize())

	src := []byte{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	want := []byte{0x4e, 0xe9, 0x01, 0xe5, 0xc2, 0xd8, 0xca, 0x3d}
	dst := make([]byte, BlockSize)
	b.Encrypt(dst, src)
	if !bytes.Equal(dst, want) {
		t.Fatalf("encrypt: %x != %x", dst, want)
	}
	b.Decrypt(dst, dst)
	if !bytes.Equal(dst, src) {
		t.Fatalf("decrypt: %x != %x", dst, src)
	}

	_, err = NewCipher(testKeyBytes[:16])
	require.ErrorIs(t, err, ErrKeySize)
	require.Panics(t, func() { b.Encrypt(dst, src[:4]) })
}

func mustBuild(t *testing.T, b *Builder) *Cipher {
	c, err := b.Build()
	require.NoError(t, err)
	return c
}
