package webfont

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config is the TOML configuration of one batch run.
type Config struct {
	// Format names the metrics output encoding: js, json, css or scss.
	Format string `toml:"format"`

	// Out is the directory receiving woff2 files and aggregate metrics
	// files. Empty means next to the inputs.
	Out string `toml:"out"`

	// UnicodeRange and Chars select the glyphs to keep when subsetting,
	// both empty keeps all glyphs. The unicode-range grammar is passed
	// through to the subsetter verbatim.
	UnicodeRange string `toml:"unicode_range"`
	Chars        string `toml:"chars"`

	// Features are OpenType feature tags handed through to the subsetting
	// engine.
	Features []string `toml:"features"`
}

// LoadConfig reads a TOML batch configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if cfg.Format != "" {
		if _, err := ParseFormat(cfg.Format); err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
	}
	return cfg, nil
}
