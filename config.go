package radio

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"github.com/UserCommon/secure-radio/fec"
	"github.com/UserCommon/secure-radio/magma"
)

const DefaultCodec = "repetition3"

// Config describes a GeneralCipher. Key is 64 hex characters; SBox, when
// set, is 128 hex characters, one per nibble entry, row by row.
type Config struct {
	Key   string `yaml:"key" toml:"key"`
	SBox  string `yaml:"sbox" toml:"sbox"`
	Codec string `yaml:"codec" toml:"codec"`
}

// LoadConfig reads a configuration file. Files ending in .toml are read as
// TOML, anything else as YAML. A leading ~ is expanded.
func LoadConfig(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("radio: config %s: %w", path, err)
		}
		return config, nil
	}

	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, config); err != nil {
		return nil, fmt.Errorf("radio: config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) key() ([]byte, error) {
	if c.Key == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(strings.TrimSpace(c.Key))
	if err != nil {
		return nil, fmt.Errorf("radio: config key: %w", err)
	}
	return key, nil
}

func (c *Config) sbox() (magma.SBox, error) {
	var sbox magma.SBox
	if c.SBox == "" {
		return magma.DefaultSBox, nil
	}
	s := strings.Join(strings.Fields(c.SBox), "")
	if len(s) != len(sbox) {
		return sbox, fmt.Errorf("radio: config sbox: got %d entries, want %d", len(s), len(sbox))
	}
	for i := range sbox {
		v, err := strconv.ParseUint(s[i:i+1], 16, 8)
		if err != nil {
			return sbox, fmt.Errorf("radio: config sbox entry %d: %w", i, err)
		}
		sbox[i] = byte(v)
	}
	return sbox, nil
}

// Build validates the configuration and returns the configured cipher.
func (c *Config) Build() (*GeneralCipher, error) {
	b := magma.NewBuilder()

	key, err := c.key()
	if err != nil {
		return nil, err
	}
	if key != nil {
		b.KeyBytes(key)
	}

	sbox, err := c.sbox()
	if err != nil {
		return nil, err
	}
	b.SBox(sbox)

	cipher, err := b.Build()
	if err != nil {
		return nil, err
	}

	name := c.Codec
	if name == "" {
		name = DefaultCodec
	}
	codec, err := fec.ByName(name)
	if err != nil {
		return nil, err
	}
	return NewGeneralCipher(cipher, codec)
}
