// structpack encodes and decodes fixed-layout binary records from the
// command line.
//
// Usage:
//
//	structpack [flags] encode FORMAT VALUE...
//	structpack [flags] decode FORMAT HEX
//	structpack [flags] size FORMAT
//	structpack [flags] describe FORMAT
//	structpack [flags] list
//	structpack -i
//
// FORMAT is either a format string or the name of a registry entry. The
// registry file comes from --config or STRUCTPACK_CONFIG.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/wippyai/structpack/memory"
	"github.com/wippyai/structpack/pack"
	"github.com/wippyai/structpack/registry"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, isTerminal(os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type options struct {
	config      string
	output      string
	fill        uint8
	verbose     bool
	interactive bool
	help        bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("structpack", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.StringVar(&opts.config, "config", "", "registry file (default: $"+registry.EnvConfig+")")
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, json, cbor, cbor-diag, raw")
	fs.Uint8Var(&opts.fill, "fill", 0, "byte written into padding fields")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log registry and memory diagnostics to stderr")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "interactive mode with TUI")
	fs.BoolVarP(&opts.help, "help", "h", false, "show help")
	return fs
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: structpack [flags] encode FORMAT VALUE...")
	fmt.Fprintln(w, "       structpack [flags] decode FORMAT HEX")
	fmt.Fprintln(w, "       structpack [flags] size FORMAT")
	fmt.Fprintln(w, "       structpack [flags] describe FORMAT")
	fmt.Fprintln(w, "       structpack [flags] list")
	fmt.Fprintln(w, "       structpack -i  (interactive mode)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

func run(args []string, stdout io.Writer, tty bool) error {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.help {
		printUsage(stdout, fs)
		return nil
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	registry.SetLogger(log.Named("registry"))
	memory.SetLogger(log.Named("memory"))

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	reg, err := loadRegistry(opts.config)
	if err != nil {
		return err
	}

	if opts.interactive {
		if !tty {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(reg, pack.NewEncoder(pack.WithFill(opts.fill)))
	}

	c := &cli{
		stdout: stdout,
		format: format,
		tty:    tty,
		reg:    reg,
		enc:    pack.NewEncoder(pack.WithFill(opts.fill)),
		dec:    pack.NewDecoder(pack.WithZeroCopy()),
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stdout, fs)
		return fmt.Errorf("missing command")
	}
	return c.dispatch(rest[0], rest[1:])
}

// newLogger logs warnings and errors in production JSON form, or everything
// in development form when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadRegistry loads --config, then $STRUCTPACK_CONFIG. With neither set
// it returns nil and formats are compiled directly.
func loadRegistry(path string) (*registry.Registry, error) {
	if path != "" {
		return registry.LoadFile(path)
	}
	if os.Getenv(registry.EnvConfig) != "" {
		return registry.Load()
	}
	return nil, nil
}

type cli struct {
	stdout io.Writer
	reg    *registry.Registry
	enc    *pack.Encoder
	dec    *pack.Decoder
	format outputFormat
	tty    bool
}

func (c *cli) dispatch(cmd string, args []string) error {
	switch cmd {
	case "encode":
		if len(args) < 1 {
			return fmt.Errorf("usage: encode FORMAT VALUE...")
		}
		return c.encode(args[0], args[1:])
	case "decode":
		if len(args) != 2 {
			return fmt.Errorf("usage: decode FORMAT HEX")
		}
		return c.decode(args[0], args[1])
	case "size":
		if len(args) != 1 {
			return fmt.Errorf("usage: size FORMAT")
		}
		l, err := c.layout(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.stdout, l.Size())
		return err
	case "describe":
		if len(args) != 1 {
			return fmt.Errorf("usage: describe FORMAT")
		}
		l, err := c.layout(args[0])
		if err != nil {
			return err
		}
		return describe(c.stdout, l)
	case "list":
		return c.list()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// layout resolves a registry entry name, falling back to compiling the
// argument as a format string.
func (c *cli) layout(arg string) (*pack.Layout, error) {
	if c.reg != nil {
		if e, err := c.reg.Lookup(arg); err == nil {
			return e.Layout, nil
		}
	}
	l, err := pack.Compile(arg)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", arg, err)
	}
	return l, nil
}

func (c *cli) encode(formatArg string, args []string) error {
	l, err := c.layout(formatArg)
	if err != nil {
		return err
	}
	values, err := parseValues(l, args)
	if err != nil {
		return err
	}
	data, err := c.enc.Encode(l, values)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return writeEncoded(c.stdout, c.format, data, c.tty)
}

func (c *cli) decode(formatArg, hexArg string) error {
	l, err := c.layout(formatArg)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(hexArg), ""))
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	values, err := c.dec.Decode(l, data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return writeDecoded(c.stdout, c.format, l, values, c.tty)
}

func (c *cli) list() error {
	if c.reg == nil {
		return fmt.Errorf("no registry: pass --config or set %s", registry.EnvConfig)
	}
	for _, name := range c.reg.Names() {
		e, err := c.reg.Lookup(name)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s\t%s\t%d\t%s", e.Name, e.Format, e.Layout.Size(), e.Digest.Short())
		if e.Description != "" {
			line += "\t" + e.Description
		}
		if _, err := fmt.Fprintln(c.stdout, line); err != nil {
			return err
		}
	}
	return nil
}
