// Package simconfig holds the YAML run configuration consumed by the
// cubesim driver. A config file sets defaults; command-line flags override
// individual fields afterwards.
package simconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/latticelabs/cubesim/routing"
)

// Sentinel errors for configuration validation.
var (
	// ErrUnknownAlgorithm indicates an algorithm name with no registry entry.
	ErrUnknownAlgorithm = errors.New("simconfig: unknown routing algorithm")

	// ErrBadQueueCapacity indicates a negative queue capacity.
	ErrBadQueueCapacity = errors.New("simconfig: queue capacity must not be negative")
)

// Config is one simulation run: the algorithm pair, input files, and
// driver knobs. Load starts from Default, so fields a file omits keep
// their default values; Validate only checks fields and fills in none.
type Config struct {
	// Algorithm names a registered routing algorithm pair ("template",
	// "rw", "bmf", ...).
	Algorithm string `yaml:"algorithm"`

	// NetworkFile optionally seeds the grid from a topology file.
	NetworkFile string `yaml:"network_file"`

	// RecipeFile optionally drives the run from a recipe.
	RecipeFile string `yaml:"recipe_file"`

	// UniverseSize clamps the displayed universe dimensions upward to a
	// minimum cube side. Zero leaves the computed dimensions alone.
	UniverseSize int `yaml:"universe_size"`

	// QueueCapacity bounds the packet queue of every cube the grid creates.
	// Zero keeps the default capacity. Cubes loaded from the network file
	// are adopted as the loader built them and keep the default capacity.
	QueueCapacity int `yaml:"queue_capacity"`

	// Cycles caps a recipe-less or unattended run. Negative runs until the
	// recipe finishes or pauses.
	Cycles int `yaml:"cycles"`

	// ColorMode passes through to the external voxel viewer untouched.
	ColorMode string `yaml:"color_mode"`

	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file and no flags are
// given: the template algorithm on an empty grid.
func Default() Config {
	return Config{
		Algorithm: routing.TemplateName,
		Cycles:    -1,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("simconfig: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("simconfig: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields against the algorithm registry and value
// ranges.
func (c *Config) Validate() error {
	if _, ok := routing.Lookup(c.Algorithm); !ok {
		return fmt.Errorf("%w: %q (have: %s)", ErrUnknownAlgorithm, c.Algorithm,
			strings.Join(routing.Names(), ", "))
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrBadQueueCapacity, c.QueueCapacity)
	}

	return nil
}
