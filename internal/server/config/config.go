package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lodeworks/tileworld-server/internal/server/world/gen"
)

// Config holds the server configuration.
type Config struct {
	Port         int   `json:"port"`
	Seed         int64 `json:"seed"`
	KeepDistance int   `json:"keep_distance"` // chunk eviction radius around the view center

	NoiseScales      gen.NoiseScales    `json:"noise_scales"`
	Thresholds       gen.Thresholds     `json:"thresholds"`
	Placement        gen.PlacementRules `json:"placement"`
	Scatter          gen.ScatterRules   `json:"scatter"`
	VillageElevation float64            `json:"village_elevation"`
	RoadWidth        int                `json:"road_width"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	p := gen.DefaultParams()
	return &Config{
		Port:             8420,
		Seed:             0,
		KeepDistance:     4,
		NoiseScales:      p.Scales,
		Thresholds:       p.Thresholds,
		Placement:        p.Placement,
		Scatter:          p.Scatter,
		VillageElevation: p.VillageElevation,
		RoadWidth:        p.RoadWidth,
	}
}

// Params assembles the generation parameters from the config.
func (c *Config) Params() gen.Params {
	return gen.Params{
		Scales:           c.NoiseScales,
		Thresholds:       c.Thresholds,
		Placement:        c.Placement,
		Scatter:          c.Scatter,
		VillageElevation: c.VillageElevation,
		RoadWidth:        c.RoadWidth,
	}
}

// Load reads the JSON config at path into cfg. If the file does not exist,
// cfg is unchanged.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Save writes cfg to path atomically using a temp file + rename.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line. Generation
// parameters have no flags and always come from the file.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["keep-distance"] {
		cfg.KeepDistance = fromFile.KeepDistance
	}
	if !explicitFlags["road-width"] {
		cfg.RoadWidth = fromFile.RoadWidth
	}
	cfg.NoiseScales = fromFile.NoiseScales
	cfg.Thresholds = fromFile.Thresholds
	cfg.Placement = fromFile.Placement
	cfg.Scatter = fromFile.Scatter
	cfg.VillageElevation = fromFile.VillageElevation
}
