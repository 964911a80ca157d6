package magma

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey  = errors.New("magma: missing key")
	ErrMissingSBox = errors.New("magma: missing sbox")
	ErrKeySize     = errors.New("magma: invalid key size")
)

// BuildError reports which builder field prevented construction.
type BuildError struct {
	Field string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("magma: build failed on %s: %v", e.Field, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Builder collects cipher parameters. Key and S-box are required; a
// schedule override, when set, replaces the schedule derived from the key.
type Builder struct {
	key      *Key
	schedule *Schedule
	sbox     *SBox
	err      error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// DefaultBuilder returns a builder preset with an all-zero key and the
// default S-box. Intended for tests.
func DefaultBuilder() *Builder {
	var (
		key  Key
		sbox = DefaultSBox
	)
	return &Builder{key: &key, sbox: &sbox}
}

// Key sets the key, replacing any earlier one including a malformed key
// given to KeyBytes.
func (b *Builder) Key(key Key) *Builder {
	b.key = &key
	b.err = nil
	return b
}

// KeyBytes sets the key from 32 raw bytes. A malformed key is reported by
// Build unless a later Key or KeyBytes call replaces it.
func (b *Builder) KeyBytes(p []byte) *Builder {
	key, err := KeyFromBytes(p)
	if err != nil {
		b.err = &BuildError{Field: "key", Err: err}
		return b
	}
	return b.Key(key)
}

func (b *Builder) Schedule(schedule Schedule) *Builder {
	b.schedule = &schedule
	return b
}

func (b *Builder) SBox(sbox SBox) *Builder {
	b.sbox = &sbox
	return b
}

func (b *Builder) Build() (*Cipher, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.key == nil {
		return nil, &BuildError{Field: "key", Err: ErrMissingKey}
	}
	if b.sbox == nil {
		return nil, &BuildError{Field: "sbox", Err: ErrMissingSBox}
	}
	if err := b.sbox.Validate(); err != nil {
		return nil, &BuildError{Field: "sbox", Err: err}
	}

	schedule := b.key.Schedule()
	if b.schedule != nil {
		schedule = *b.schedule
	}
	return newCipher(*b.key, schedule, *b.sbox), nil
}
