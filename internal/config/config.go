// Package config reads cyclejson settings from a TOML file.
//
// Every field has a flag of the same meaning; a flag that was set on the
// command line wins over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/roach88/cyclejson/internal/decycle"
	"github.com/roach88/cyclejson/internal/jsonenc"
)

// Config holds encoding and storage settings.
type Config struct {
	// Indent is a number of spaces or a literal indent string.
	// nil means compact output.
	Indent   any      `toml:"indent"`
	Allow    []string `toml:"allow"`
	SortKeys bool     `toml:"sort_keys"`
	NFC      bool     `toml:"nfc"`
	OnCycle  string   `toml:"on_cycle"`
	DB       string   `toml:"db"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{OnCycle: "marker"}
}

// Load reads the TOML file at path on top of Default. An empty path
// returns Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the indent and cycle resolver settings.
func (c Config) Validate() error {
	if _, err := jsonenc.NormalizeIndent(c.Indent); err != nil {
		return fmt.Errorf("indent: %w", err)
	}
	if _, err := decycle.ResolverByName(c.OnCycle); err != nil {
		return fmt.Errorf("on_cycle: %w", err)
	}
	return nil
}

// Replacer returns the allowlist replacer, or none when Allow is empty.
func (c Config) Replacer() decycle.Replacer {
	if len(c.Allow) == 0 {
		return decycle.Replacer{}
	}
	return decycle.AllowKeys(c.Allow...)
}

// Resolver returns the cycle resolver selected by OnCycle.
func (c Config) Resolver() (decycle.EntryFunc, error) {
	return decycle.ResolverByName(c.OnCycle)
}

// EncoderOptions returns the encoder options for SortKeys and NFC.
func (c Config) EncoderOptions() []jsonenc.Option {
	var opts []jsonenc.Option
	if c.SortKeys {
		opts = append(opts, jsonenc.WithSortKeys())
	}
	if c.NFC {
		opts = append(opts, jsonenc.WithNormalizeNFC())
	}
	return opts
}

// ParseIndent interprets an --indent flag value: digits are a number of
// spaces, anything else is used as the indent string. "\t" is accepted as
// an escape for a tab.
func ParseIndent(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if s == `\t` {
		return "\t"
	}
	return s
}
