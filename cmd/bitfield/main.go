package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"lukechampine.com/uint128"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bitfield: %v\n", err)
		os.Exit(1)
	}
}

// assignments collects repeated -set name=value flags.
type assignments []assignment

type assignment struct {
	name  string
	value uint128.Uint128
}

func (a *assignments) String() string {
	parts := make([]string, len(*a))
	for i, s := range *a {
		parts[i] = s.name + "=" + s.value.String()
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return fmt.Errorf("field %s: invalid number %q", name, value)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return fmt.Errorf("field %s: %s does not fit in 128 bits", name, value)
	}
	*a = append(*a, assignment{name: name, value: uint128.FromBig(v)})
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bitfield", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML file with layout definitions (default: built-in layouts)")
	layoutName := fs.String("layout", "ipv4", "layout used to decode the input")
	list := fs.Bool("list", false, "list the available layouts and exit")
	verbose := fs.Bool("v", false, "enable debug logging")
	var sets assignments
	fs.Var(&sets, "set", "rewrite a field, as name=value; may be repeated")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *list {
		for _, name := range cfg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	layout, err := cfg.Layout(*layoutName)
	if err != nil {
		return err
	}
	log.Debug().Str("layout", layout.Name).Int("size", layout.Size).Int("fields", len(layout.Fields)).Msg("layout loaded")

	input := strings.NewReplacer(" ", "", ":", "", "\n", "").Replace(strings.Join(fs.Args(), ""))
	buf, err := hex.DecodeString(input)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	if len(buf) < layout.Size {
		return fmt.Errorf("input has %d bytes, layout %q needs %d", len(buf), layout.Name, layout.Size)
	}
	if len(buf) > layout.Size {
		log.Debug().Int("trailing", len(buf)-layout.Size).Msg("ignoring bytes past the layout")
	}

	for _, s := range sets {
		if err := layout.Set(buf, s.name, s.value); err != nil {
			return err
		}
		log.Info().Str("field", s.name).Stringer("value", s.value).Msg("field rewritten")
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"Field", "Bits", "Value", "Hex"})
	table.SetAutoFormatHeaders(false)
	for _, f := range layout.Fields {
		v, err := layout.Get(buf, f.Name)
		if err != nil {
			return err
		}
		table.Append([]string{
			f.Name,
			fmt.Sprintf("%d-%d", f.Start, f.End-1),
			v.String(),
			fmt.Sprintf("%#x", v.Big()),
		})
	}
	table.Render()

	if len(sets) > 0 {
		fmt.Fprintln(stdout, hex.EncodeToString(buf))
	}
	return nil
}
