package workload

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a soak run.
type Config struct {
	// Workers is the number of goroutines, each driving its own Deque.
	Workers int `yaml:"workers"`
	// Ops is the number of random operations per worker.
	Ops int `yaml:"ops"`
	// Seed makes runs reproducible. Worker w uses the stream (Seed, w).
	Seed uint64 `yaml:"seed"`
	// MaxLen bounds how long a Deque may grow before pops are forced.
	MaxLen int `yaml:"max_len"`
	// FailEvery makes every n-th element copy fail. 0 disables faults.
	FailEvery int `yaml:"fail_every"`
}

const (
	defaultWorkers = 4
	defaultOps     = 10000
	defaultMaxLen  = 512
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Workers: defaultWorkers,
		Ops:     defaultOps,
		MaxLen:  defaultMaxLen,
	}
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
// Fields left out of the file get their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("workload: decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
	if c.Ops == 0 {
		c.Ops = defaultOps
	}
	if c.MaxLen == 0 {
		c.MaxLen = defaultMaxLen
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workload: workers must be positive, got %d", c.Workers)
	case c.Ops < 0:
		return fmt.Errorf("workload: ops cannot be negative, got %d", c.Ops)
	case c.MaxLen < 1:
		return fmt.Errorf("workload: max_len must be positive, got %d", c.MaxLen)
	case c.FailEvery < 0:
		return fmt.Errorf("workload: fail_every cannot be negative, got %d", c.FailEvery)
	}
	return nil
}
