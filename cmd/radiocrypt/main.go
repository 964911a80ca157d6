package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/urfave/cli.v1"

	radio "github.com/UserCommon/secure-radio"
	"github.com/UserCommon/secure-radio/bit"
)

var log = logging.MustGetLogger("radiocrypt")

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

func setupLogging(debug bool) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func loadCipher(c *cli.Context) (*radio.GeneralCipher, error) {
	config, err := radio.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if codec := c.GlobalString("codec"); codec != "" {
		config.Codec = codec
	}
	g, err := config.Build()
	if err != nil {
		return nil, err
	}
	log.Debugf("using magma with %s, %d byte frames", g.Name(), g.Size())
	return g, nil
}

func parseFrame(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}

func encrypt(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("encrypt: expected one 64-bit hex block", 2)
	}
	plain, err := strconv.ParseUint(strings.TrimPrefix(c.Args().First(), "0x"), 16, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("encrypt: %v", err), 2)
	}

	g, err := loadCipher(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Println(hex.EncodeToString(radio.AppendChecksum(g.GeneralEncrypt(plain))))
	return nil
}

func decrypt(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("decrypt: expected one hex frame", 2)
	}
	frame, err := parseFrame(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decrypt: %v", err), 2)
	}

	g, err := loadCipher(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	payload, err := radio.SplitChecksum(frame)
	switch {
	case errors.Is(err, radio.ErrChecksum):
		log.Warningf("%v, attempting %s recovery", err, g.Name())
	case err != nil:
		return cli.NewExitError(err.Error(), 1)
	}

	plain, err := g.GeneralDecrypt(payload)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decrypt: %v", err), 1)
	}
	fmt.Printf("%016x\n", plain)
	return nil
}

// bits prints each codeword of a frame next to the symbol it decodes to.
func bits(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("bits: expected one hex frame", 2)
	}
	frame, err := parseFrame(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("bits: %v", err), 2)
	}

	g, err := loadCipher(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	size := g.CodewordSize()
	if len(frame) == g.Size()+2 {
		frame = frame[:g.Size()]
	}
	for i := 0; i+size <= len(frame); i += size {
		cw := bit.NewBits(frame[i : i+size])
		symbol, err := g.DecodeSymbol(frame[i : i+size])
		if err != nil {
			fmt.Printf("%3d %s error: %v\n", i/size, cw.String(), err)
			continue
		}
		fmt.Printf("%3d %s -> %s\n", i/size, cw.String(), bit.NewWord(uint32(symbol), g.SymbolBits()).String())
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "radiocrypt"
	app.Usage = "Magma encryption with forward error correction"
	app.Version = radio.PackageID
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "~/.secure-radio.yaml",
			Usage: "configuration file (.yaml or .toml)",
		},
		cli.StringFlag{
			Name:  "codec",
			Usage: "override the configured codec (hamming74, repetition3, parity21, golay20, none)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		setupLogging(c.GlobalBool("debug"))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "encrypt",
			Aliases:   []string{"e"},
			Usage:     "encrypt and protect a 64-bit block",
			ArgsUsage: "<hex block>",
			Action:    encrypt,
		},
		{
			Name:      "decrypt",
			Aliases:   []string{"d"},
			Usage:     "check, correct and decrypt a protected frame",
			ArgsUsage: "<hex frame>",
			Action:    decrypt,
		},
		{
			Name:      "bits",
			Aliases:   []string{"b"},
			Usage:     "dump the codewords of a frame bit by bit",
			ArgsUsage: "<hex frame>",
			Action:    bits,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
