package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

// Config describes one maze run. It can be loaded from a TOML file:
//
//	rows = 12
//	columns = 20
//	algorithm = "wilson"
//	seed = 42
//	connectivity = "conn4"
//	longest = true
type Config struct {
	Rows         int    `toml:"rows"`
	Columns      int    `toml:"columns"`
	Algorithm    string `toml:"algorithm"`
	Seed         int64  `toml:"seed"`
	Connectivity string `toml:"connectivity"`
	Longest      bool   `toml:"longest"`
	Distances    bool   `toml:"distances"`
	Color        bool   `toml:"color"`
}

// DefaultConfig returns a 10×10 Wilson maze with a random seed.
func DefaultConfig() Config {
	return Config{
		Rows:         10,
		Columns:      10,
		Algorithm:    string(generate.AlgoWilson),
		Connectivity: grid.Conn4.String(),
		Color:        true,
	}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the parts of the config the libraries would reject later,
// so errors name the offending setting.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Columns <= 0 {
		errs = append(errs, fmt.Errorf("rows and columns must be positive, got %d×%d", c.Rows, c.Columns))
	}
	if _, err := generate.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if _, err := grid.ParseConnectivity(c.Connectivity); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
