package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/rules"
)

// ErrInvalidConfig is returned by Validate for settings the automaton cannot run with
var ErrInvalidConfig = errors.New("utils: invalid config")

// Config holds the configuration for the automaton and its terminal front end
type Config struct {
	Dims                uint16        `json:"dims" env:"GOL3D_DIMS"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOL3D_FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"GOL3D_AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOL3D_STAGNATION_THRESHOLD"`
	MaxGenerations      int           `json:"max_generations" env:"GOL3D_MAX_GENERATIONS"`
	TaskCount           int           `json:"task_count" env:"GOL3D_TASK_COUNT"`
	Seed                uint64        `json:"seed" env:"GOL3D_SEED"` // 0 picks a random seed
	Neighbourhood       string        `json:"neighbourhood" env:"GOL3D_NEIGHBOURHOOD"`
	Neighbours          []int         `json:"neighbours" env:"GOL3D_NEIGHBOURS" envSeparator:","`
	MaxHealth           uint8         `json:"max_health" env:"GOL3D_MAX_HEALTH"`
	MinHealth           uint8         `json:"min_health" env:"GOL3D_MIN_HEALTH"`
	Layer               int           `json:"layer" env:"GOL3D_LAYER"` // negative renders the middle slice
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Dims:                40,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		TaskCount:           8,
		Neighbourhood:       "von-neumann",
		Neighbours:          []int{3, 5},
		MaxHealth:           90,
		MinHealth:           40,
		Layer:               -1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseEnv overrides config fields from GOL3D_* environment variables.
// Unset variables leave the current value in place.
func ParseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ParseEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects settings that would change or break the simulation
func (c Config) Validate() error {
	if c.Dims == 0 {
		return errors.Wrap(rules.ErrInvalidDims, "[Config.Validate]")
	}
	if c.MinHealth == 0 {
		return errors.Wrap(ErrInvalidConfig, "[Config.Validate] min_health must be greater than zero")
	}
	if c.TaskCount < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] task_count: %d", c.TaskCount)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] frame_rate: %s", c.FrameRate)
	}
	if c.Layer >= int(c.Dims) {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] layer %d outside cube of %d", c.Layer, c.Dims)
	}
	for _, n := range c.Neighbours {
		if n < 0 || n > math.MaxUint8 {
			return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] neighbour count %d out of range", n)
		}
	}
	if _, err := rules.ParseNeighbourhood(c.Neighbourhood); err != nil {
		return errors.Wrap(err, "[Config.Validate]")
	}
	return nil
}

// BuildRules turns the configured cube and neighbourhood into a ruleset
func (c Config) BuildRules() (*rules.Rules, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	offsets, err := rules.ParseNeighbourhood(c.Neighbourhood)
	if err != nil {
		return nil, err
	}
	counts := make([]uint8, 0, len(c.Neighbours))
	for _, n := range c.Neighbours {
		counts = append(counts, uint8(n))
	}
	return rules.New(c.Dims, rules.WithNeighbours(counts...), rules.WithOffsets(offsets...))
}

// RenderLayer returns the slice index the front end should draw
func (c Config) RenderLayer() int {
	if c.Layer < 0 {
		return int(c.Dims) / 2
	}
	return c.Layer
}
