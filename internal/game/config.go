package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/raycrawl/internal/vision"
	"github.com/samdwyer/raycrawl/internal/world"
)

const (
	defaultAggroRange = 6.0
	defaultTickRate   = 60
	defaultLogFile    = "raycrawl.log"

	// Prefix for environment overrides, e.g. RAYCRAWL_SEED=42.
	envPrefix = "RAYCRAWL_"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	VisionRange float64 `yaml:"vision_range"`
	Rays        int     `yaml:"rays"`
	AggroRange  float64 `yaml:"aggro_range"` // Mobs further than this ignore the player

	TickRate int    `yaml:"tick_rate"` // Simulation ticks per second
	LogFile  string `yaml:"log_file"`
	DataDir  string `yaml:"data_dir"` // Overrides the embedded game data when set
}

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() Config {
	return Config{
		MapWidth:    world.DefaultWidth,
		MapHeight:   world.DefaultHeight,
		VisionRange: vision.DefaultRange,
		Rays:        vision.DefaultRays,
		AggroRange:  defaultAggroRange,
		TickRate:    defaultTickRate,
		LogFile:     defaultLogFile,
	}
}

// LoadConfig starts from the defaults, applies the YAML file at path if one exists,
// then RAYCRAWL_* environment variables, and validates the result.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file is fine; defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from environment variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"MAP_WIDTH":  &c.MapWidth,
		"MAP_HEIGHT": &c.MapHeight,
		"RAYS":       &c.Rays,
		"TICK_RATE":  &c.TickRate,
	}
	for key, dst := range ints {
		if v, ok := lookup(envPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"VISION_RANGE": &c.VisionRange,
		"AGGRO_RANGE":  &c.AggroRange,
	}
	for key, dst := range floats {
		if v, ok := lookup(envPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
			}
			*dst = f
		}
	}

	if v, ok := lookup(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(envPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup(envPrefix + "DATA_DIR"); ok {
		c.DataDir = v
	}
	return nil
}

// Validate rejects settings the generator or the loop cannot work with.
func (c Config) Validate() error {
	minSide := world.DefaultGeneratorConfig().MinRoomSize + 3
	if c.MapWidth < minSide || c.MapHeight < minSide {
		return fmt.Errorf("map %dx%d is too small, need at least %dx%d", c.MapWidth, c.MapHeight, minSide, minSide)
	}
	if c.Rays <= 0 {
		return fmt.Errorf("rays must be positive, got %d", c.Rays)
	}
	if c.VisionRange <= 0 {
		return fmt.Errorf("vision range must be positive, got %v", c.VisionRange)
	}
	if c.AggroRange < 0 {
		return fmt.Errorf("aggro range must not be negative, got %v", c.AggroRange)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// GeneratorConfig returns the dungeon layout parameters for this configuration.
func (c Config) GeneratorConfig() world.GeneratorConfig {
	gc := world.DefaultGeneratorConfig()
	gc.Width = c.MapWidth
	gc.Height = c.MapHeight
	return gc
}

// VisionConfig returns the ray-casting parameters for the player.
func (c Config) VisionConfig() vision.Config {
	return vision.Config{Rays: c.Rays, Range: c.VisionRange}
}
