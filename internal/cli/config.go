package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jayempx/vcard2qr/internal/render"
)

// styleConfig is the [style] section of a vcard2qr config file.
type styleConfig struct {
	ModuleSize  int     `toml:"module_size"`
	Radius      float64 `toml:"radius"`
	Foreground  string  `toml:"foreground"`
	Background  string  `toml:"background"`
	Transparent bool    `toml:"transparent"`
}

// batchConfig is the [batch] section.
type batchConfig struct {
	OutDir  string            `toml:"output_dir"`
	Format  string            `toml:"format"`
	Size    int               `toml:"size"`
	Columns map[string]string `toml:"columns"` // header -> field key overrides
}

type fileConfig struct {
	Style styleConfig `toml:"style"`
	Batch batchConfig `toml:"batch"`
}

// loadConfig reads a TOML config file. A missing path returns zero values.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// style converts the config section into render options, leaving defaults in
// place for unset values.
func (c styleConfig) style() (render.Style, error) {
	st := render.DefaultStyle()
	if c.ModuleSize > 0 {
		st.ModuleSize = c.ModuleSize
	}
	st.CornerRadius = c.Radius
	if c.Foreground != "" {
		fg, err := render.ParseHexColor(c.Foreground)
		if err != nil {
			return st, err
		}
		st.Foreground = fg
	}
	if c.Background != "" {
		bg, err := render.ParseHexColor(c.Background)
		if err != nil {
			return st, err
		}
		st.Background = bg
	}
	st.Transparent = c.Transparent
	return st, nil
}
