package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("config/schema.json", schemaSource)

// Validate checks the config against the embedded JSON schema, then enforces
// the cross-field rules the schema cannot express.
func (c *Config) Validate() error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	t := c.Thresholds
	if t.Water >= t.Sand {
		return fmt.Errorf("thresholds: water (%f) must be below sand (%f)", t.Water, t.Sand)
	}
	if t.Sand >= t.Mountain {
		return fmt.Errorf("thresholds: sand (%f) must be below mountain (%f)", t.Sand, t.Mountain)
	}
	if t.Mountain >= t.SnowElevation {
		return fmt.Errorf("thresholds: mountain (%f) must be below snow_elevation (%f)", t.Mountain, t.SnowElevation)
	}
	if sum := c.Placement.VillageChance + c.Placement.DungeonChance; sum > 1 {
		return fmt.Errorf("placement: village_chance + dungeon_chance = %f, must not exceed 1", sum)
	}
	if c.Scatter.GrassRockLow > c.Scatter.GrassRockHigh {
		return fmt.Errorf("scatter: grass_rock_low (%f) must not exceed grass_rock_high (%f)",
			c.Scatter.GrassRockLow, c.Scatter.GrassRockHigh)
	}
	return nil
}
