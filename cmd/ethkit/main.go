// Command ethkit derives BIP-39 seeds, secp256k1 public keys, Keccak-256
// digests and EIP-55 addresses.
//
// Public key derivation is not constant time. Run it locally on secrets you
// control; do not wrap it in a service that answers per-key requests.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aujl/eth-from-bash/bip39"
	"github.com/aujl/eth-from-bash/eip55"
	"github.com/aujl/eth-from-bash/keccak"
	"github.com/aujl/eth-from-bash/secp256k1"
	"github.com/aujl/eth-from-bash/selftest"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errUsage marks errors caused by bad command-line arguments.
var errUsage = errors.New("usage")

type command struct {
	name string
	help string
	run  func(env *environment, args []string) error
}

type environment struct {
	cfg    *Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"seed", "derive a BIP-39 seed", runSeed},
	{"pub", "derive secp256k1 public keys from a private key", runPub},
	{"address", "derive the EIP-55 address of a private key", runAddress},
	{"keccak256-hex", "print the Keccak-256 digest of stdin", runKeccak},
	{"eip55", "print the EIP-55 checksum form of an address", runEIP55},
	{"self-test", "run the known-answer tests", runSelfTest},
	{"vectors", "print the Keccak-256 known answers as JSON", runVectors},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "ethkit: ", 0)

	fs := flag.NewFlagSet("ethkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "path to config file")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Print(err)
		return exitFail
	}

	name := fs.Arg(0)
	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		logger.Printf("unknown command %q", name)
		fs.Usage()
		return exitUsage
	}

	if cfg.SelfTestOnStart && cmd.name != "self-test" {
		if err := selftest.Run(); err != nil {
			logger.Print(err)
			return exitFail
		}
	}

	env := &environment{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
	if err := cmd.run(env, fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}
		logger.Print(err)
		return exitFail
	}
	return exitOK
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "usage: ethkit [-config file] <command> [flags]")
	fmt.Fprintln(out, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-14s %s\n", c.name, c.help)
	}
	fmt.Fprintln(out, "\nflags:")
	fs.PrintDefaults()
}

// newFlagSet returns a flag set for a subcommand that reports parse errors
// on the environment's stderr.
func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func runSeed(env *environment, args []string) error {
	fs := newFlagSet(env, "seed")
	mnemonic := fs.String("mnemonic", "", "mnemonic phrase (required)")
	passphrase := fs.String("passphrase", "", "optional passphrase")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if !flagGiven(fs, "mnemonic") {
		fmt.Fprintln(env.stderr, "seed: -mnemonic is required")
		return errUsage
	}

	if env.cfg.StrictMnemonic {
		if err := bip39.ValidateMnemonic(*mnemonic); err != nil {
			return err
		}
	}

	seed := bip39.DeriveSeed(*mnemonic, *passphrase)
	fmt.Fprintln(env.stdout, hex.EncodeToString(seed[:]))
	return nil
}

// flagGiven reports whether name was set on the command line, even to an
// empty value.
func flagGiven(fs *flag.FlagSet, name string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

// privateKeyFlag parses the -priv-hex flag shared by pub and address.
func privateKeyFlag(env *environment, name string, args []string) ([]byte, error) {
	fs := newFlagSet(env, name)
	privHex := fs.String("priv-hex", "", "private key hex, 64 characters (required)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if *privHex == "" {
		fmt.Fprintf(env.stderr, "%s: -priv-hex is required\n", name)
		return nil, errUsage
	}

	seckey, err := hex.DecodeString(*privHex)
	if err != nil {
		return nil, errors.New("private key must be valid hex")
	}
	if len(seckey) != secp256k1.SeckeyBytesLen {
		return nil, errors.New("private key must be 32 bytes (64 hex characters)")
	}
	return seckey, nil
}

func runPub(env *environment, args []string) error {
	seckey, err := privateKeyFlag(env, "pub", args)
	if err != nil {
		return err
	}

	c, u, err := secp256k1.DerivePublicKey(seckey)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.stdout, "%x %x\n", c, u)
	return nil
}

func runAddress(env *environment, args []string) error {
	seckey, err := privateKeyFlag(env, "address", args)
	if err != nil {
		return err
	}

	_, u, err := secp256k1.DerivePublicKey(seckey)
	if err != nil {
		return err
	}
	addr, err := eip55.AddressFromPublicKey(u)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, addr)
	return nil
}

func runKeccak(env *environment, args []string) error {
	if len(args) != 0 {
		fmt.Fprintln(env.stderr, "keccak256-hex: reads stdin and takes no arguments")
		return errUsage
	}

	h := keccak.New256()
	if _, err := io.Copy(h, env.stdin); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	fmt.Fprint(env.stdout, hex.EncodeToString(h.Sum(nil)))
	return nil
}

func runEIP55(env *environment, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(env.stderr, "usage: ethkit eip55 0x<hexaddr>")
		return errUsage
	}

	sum, err := eip55.Checksum(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, sum)
	return nil
}

func runSelfTest(env *environment, args []string) error {
	if err := selftest.Run(); err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, selftest.SuccessToken)
	return nil
}

func runVectors(env *environment, args []string) error {
	out, err := selftest.KeccakVectorsJSON()
	if err != nil {
		return err
	}
	_, err = env.stdout.Write(out)
	return err
}
