package elemental

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"elemental-arena/internal/governor"
)

// TerrainParams controls the seeded layout Reset builds.
type TerrainParams struct {
	GrassChance        float64 `yaml:"grass_chance"`
	StoneChance        float64 `yaml:"stone_chance"`
	WoodPatchCount     int     `yaml:"wood_patch_count"`
	WoodPatchRadiusMin int     `yaml:"wood_patch_radius_min"`
	WoodPatchRadiusMax int     `yaml:"wood_patch_radius_max"`
	PondRadius         int     `yaml:"pond_radius"`
}

// Config controls the arena dimensions and its ambient tuning.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// ReclaimInterval is the number of ticks between nature-reclaims passes.
	ReclaimInterval int `yaml:"reclaim_interval"`
	LogCapacity     int `yaml:"log_capacity"`

	Terrain  TerrainParams   `yaml:"terrain"`
	Governor governor.Config `yaml:"governor"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           160,
		Height:          120,
		Seed:            1337,
		ReclaimInterval: 30,
		LogCapacity:     DefaultLogCapacity,
		Terrain: TerrainParams{
			GrassChance:        0.55,
			StoneChance:        0.04,
			WoodPatchCount:     6,
			WoodPatchRadiusMin: 2,
			WoodPatchRadiusMax: 6,
			PondRadius:         8,
		},
		Governor: governor.DefaultConfig(),
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized replaces out-of-range values with defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ReclaimInterval <= 0 {
		c.ReclaimInterval = def.ReclaimInterval
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = def.LogCapacity
	}
	t := &c.Terrain
	if t.GrassChance < 0 {
		t.GrassChance = 0
	}
	if t.StoneChance < 0 {
		t.StoneChance = 0
	}
	if t.WoodPatchCount < 0 {
		t.WoodPatchCount = 0
	}
	if t.WoodPatchRadiusMin < 0 {
		t.WoodPatchRadiusMin = 0
	}
	if t.WoodPatchRadiusMax < t.WoodPatchRadiusMin {
		t.WoodPatchRadiusMax = t.WoodPatchRadiusMin
	}
	if t.PondRadius < 0 {
		t.PondRadius = 0
	}
	c.Governor = c.Governor.Normalized()
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["reclaim_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ReclaimInterval = parsed
		}
	}
	if v, ok := cfg["log_capacity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LogCapacity = parsed
		}
	}
	if v, ok := cfg["grass_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.GrassChance = parsed
		}
	}
	if v, ok := cfg["stone_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.StoneChance = parsed
		}
	}
	if v, ok := cfg["wood_patch_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.WoodPatchCount = parsed
		}
	}
	if v, ok := cfg["pond_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.PondRadius = parsed
		}
	}
	return c.normalized()
}
