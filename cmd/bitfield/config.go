package main

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ipld/go-bitfield"
)

//go:embed layouts.toml
var builtinLayouts string

type Config struct {
	Layouts []LayoutConfig `toml:"layout"`
}

type LayoutConfig struct {
	Name   string        `toml:"name"`
	Size   int           `toml:"size"`
	Fields []FieldConfig `toml:"field"`
}

// FieldConfig gives a field's bits as a closed range [first, last].
type FieldConfig struct {
	Name string `toml:"name"`
	Bits []int  `toml:"bits"`
}

// LoadConfig reads layouts from path, or the built-in layouts when path is
// empty.
func LoadConfig(path string) (Config, error) {
	data, source := builtinLayouts, "built-in layouts"
	if path != "" {
		source = path
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		data = string(raw)
	}
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", source, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", source, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Names returns the configured layout names in sorted order.
func (c Config) Names() []string {
	names := make([]string, len(c.Layouts))
	for i, l := range c.Layouts {
		names[i] = l.Name
	}
	sort.Strings(names)
	return names
}

// Layout returns the named layout, validated.
func (c Config) Layout(name string) (*bitfield.Layout, error) {
	for _, lc := range c.Layouts {
		if lc.Name != name {
			continue
		}
		l := &bitfield.Layout{Name: lc.Name, Size: lc.Size}
		for _, fc := range lc.Fields {
			if len(fc.Bits) != 2 {
				return nil, fmt.Errorf("layout %q field %q: bits must be [first, last]", name, fc.Name)
			}
			r := bitfield.Closed(fc.Bits[0], fc.Bits[1])
			l.Fields = append(l.Fields, bitfield.Field{Name: fc.Name, Start: r.Start, End: r.End})
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("unknown layout %q (have %s)", name, strings.Join(c.Names(), ", "))
}
