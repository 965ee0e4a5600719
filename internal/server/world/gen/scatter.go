package gen

// ScatterRules are per-biome density bands for decorative objects. Bands are
// mutually exclusive within a biome, so a tile gets at most one object.
type ScatterRules struct {
	ForestTree    float64 `json:"forest_tree"`
	GrassTree     float64 `json:"grass_tree"`
	GrassRockLow  float64 `json:"grass_rock_low"`
	GrassRockHigh float64 `json:"grass_rock_high"`
	MountainRock  float64 `json:"mountain_rock"`
	DesertRock    float64 `json:"desert_rock"`
}

// DefaultScatterRules returns the object densities of the default world.
func DefaultScatterRules() ScatterRules {
	return ScatterRules{
		ForestTree:    0.55,
		GrassTree:     0.75,
		GrassRockLow:  0.28,
		GrassRockHigh: 0.33,
		MountainRock:  0.65,
		DesertRock:    0.80,
	}
}

// Object maps a biome and a normalized scatter density in [0, 1] to the
// object placed there, or ObjectNone. Callers are responsible for the
// exclusivity rules (no structures, no water, no roads).
func (r ScatterRules) Object(b Biome, density float64) ObjectKind {
	switch b {
	case BiomeForest:
		if density > r.ForestTree {
			return ObjectTree
		}
	case BiomeGrass:
		if density > r.GrassTree {
			return ObjectTree
		}
		if density >= r.GrassRockLow && density < r.GrassRockHigh {
			return ObjectRock
		}
	case BiomeMountain:
		if density > r.MountainRock {
			return ObjectRock
		}
	case BiomeDesert:
		if density > r.DesertRock {
			return ObjectRock
		}
	}
	return ObjectNone
}
