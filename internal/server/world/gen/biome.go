package gen

// Biome is the terrain classification of a tile.
type Biome uint8

const (
	BiomeWater Biome = iota
	BiomeSand
	BiomeGrass
	BiomeForest
	BiomeMountain
	BiomeSnow
	BiomeDesert
	BiomeVillage
	BiomeDungeon
)

var biomeNames = [...]string{
	BiomeWater:    "water",
	BiomeSand:     "sand",
	BiomeGrass:    "grass",
	BiomeForest:   "forest",
	BiomeMountain: "mountain",
	BiomeSnow:     "snow",
	BiomeDesert:   "desert",
	BiomeVillage:  "village",
	BiomeDungeon:  "dungeon",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// Thresholds are the biome classification boundaries. Elevation, temperature
// and humidity inputs are all in [0, 1].
type Thresholds struct {
	Water          float64 `json:"water"`
	Sand           float64 `json:"sand"`
	Mountain       float64 `json:"mountain"`
	SnowElevation  float64 `json:"snow_elevation"`
	DesertTemp     float64 `json:"desert_temp"`
	DesertHumidity float64 `json:"desert_humidity"`
	SnowTemp       float64 `json:"snow_temp"`
	ForestHumidity float64 `json:"forest_humidity"`
}

// DefaultThresholds returns the boundaries used by the default world.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Water:          0.30,
		Sand:           0.38,
		Mountain:       0.75,
		SnowElevation:  0.90,
		DesertTemp:     0.70,
		DesertHumidity: 0.30,
		SnowTemp:       0.25,
		ForestHumidity: 0.60,
	}
}

// Classify maps elevation, temperature and humidity to a biome. The cascade
// is ordered: elevation rules win over temperature rules, which win over
// humidity rules.
func (t Thresholds) Classify(elevation, temperature, humidity float64) Biome {
	switch {
	case elevation < t.Water:
		return BiomeWater
	case elevation < t.Sand:
		return BiomeSand
	case elevation > t.Mountain:
		if elevation > t.SnowElevation {
			return BiomeSnow
		}
		return BiomeMountain
	case temperature > t.DesertTemp && humidity < t.DesertHumidity:
		return BiomeDesert
	case temperature < t.SnowTemp:
		return BiomeSnow
	case humidity > t.ForestHumidity:
		return BiomeForest
	default:
		return BiomeGrass
	}
}
