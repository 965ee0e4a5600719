package gen

// Params bundles every knob of the content pipeline.
type Params struct {
	Scales     NoiseScales    `json:"noise_scales"`
	Thresholds Thresholds     `json:"thresholds"`
	Placement  PlacementRules `json:"placement"`
	Scatter    ScatterRules   `json:"scatter"`

	// VillageElevation is the baseline village tiles are flattened to, so
	// templates do not straddle terrain steps.
	VillageElevation float64 `json:"village_elevation"`
	// RoadWidth is the Chebyshev half-width of rasterized roads, in tiles.
	RoadWidth int `json:"road_width"`
}

// DefaultParams returns the default world parameters.
func DefaultParams() Params {
	return Params{
		Scales:           DefaultNoiseScales(),
		Thresholds:       DefaultThresholds(),
		Placement:        DefaultPlacementRules(),
		Scatter:          DefaultScatterRules(),
		VillageElevation: 0.5,
		RoadWidth:        1,
	}
}

// Generator produces chunks deterministically from a seed. For a fixed seed
// and fixed registry contents relevant to a chunk's 3×3 neighborhood,
// Generate is a pure function of the chunk position.
type Generator struct {
	seed     int64
	noise    *NoiseField
	params   Params
	registry *StructureRegistry
}

// NewGenerator creates a Generator writing structure records into registry.
func NewGenerator(seed int64, params Params, registry *StructureRegistry) *Generator {
	return &Generator{
		seed:     seed,
		noise:    NewNoiseField(seed, params.Scales),
		params:   params,
		registry: registry,
	}
}

// Seed returns the world seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds the full tile grid for one chunk: terrain classification,
// structure overlay, roads, scatter, then autotiling.
func (g *Generator) Generate(pos ChunkPos) *TileGrid {
	// Structure candidacy for this chunk's spacing cell, then adoption from
	// any origin within Chebyshev distance 1. The template is derived from
	// this chunk's own coordinates so every chunk touching the structure
	// recomputes it identically.
	rec, hasStructure := g.registry.Roll(g.seed, pos, g.params.Placement)
	if !hasStructure {
		rec, hasStructure = g.registry.Lookup(pos)
	}

	grid := NewTileGrid(pos)
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			wx := pos.X*ChunkSize + lx
			wy := pos.Y*ChunkSize + ly
			fx, fy := float64(wx), float64(wy)

			t := grid.At(lx, ly)
			t.WorldX = wx
			t.WorldY = wy
			t.Elevation = Normalize(g.noise.WarpedSample(LayerElevation, fx, fy))
			t.Temperature = Normalize(g.noise.Sample(LayerTemperature, fx, fy))
			t.Humidity = Normalize(g.noise.Sample(LayerHumidity, fx, fy))
			t.Biome = g.params.Thresholds.Classify(t.Elevation, t.Temperature, t.Humidity)
		}
	}

	if hasStructure {
		tpl := RandomizedTemplate(rec.Kind, TemplateStream(g.seed, pos.X, pos.Y))
		g.overlayTemplate(grid, tpl)
		if rec.Kind == StructureVillage {
			g.buildRoads(grid)
		}
	}

	g.scatterObjects(grid)
	ApplyAutotiling(grid)
	return grid
}

// overlayTemplate centers the template in the chunk and stamps each marked
// cell whose underlying biome accepts the structure. Village tiles are
// flattened to the baseline elevation.
func (g *Generator) overlayTemplate(grid *TileGrid, tpl Template) {
	ox := (ChunkSize - tpl.Width()) / 2
	oy := (ChunkSize - tpl.Height()) / 2

	for ty := 0; ty < tpl.Height(); ty++ {
		for tx := 0; tx < tpl.Width(); tx++ {
			if !tpl.Cells[ty][tx] {
				continue
			}
			lx, ly := ox+tx, oy+ty
			if !grid.InBounds(lx, ly) {
				continue
			}
			t := grid.At(lx, ly)
			if !CanPlace(tpl.Kind, t.Biome) {
				continue
			}
			t.Structure = tpl.Kind
			t.Biome = tpl.Kind.biome()
			if tpl.Kind == StructureVillage {
				t.Elevation = g.params.VillageElevation
			}
		}
	}
}

// buildRoads grows a road tree around the chunk center and rasterizes it.
func (g *Generator) buildRoads(grid *TileGrid) {
	rs := DetailStream(g.seed, grid.Pos.X, grid.Pos.Y)
	center := float64(ChunkSize) / 2
	graph := BuildRoadGraph(center, center, rs)
	graph.Rasterize(grid, g.params.RoadWidth)
}

// scatterObjects places at most one decorative object per eligible tile.
// Tiles with a structure, a road, or water never receive an object.
func (g *Generator) scatterObjects(grid *TileGrid) {
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			t := grid.At(lx, ly)
			if t.Structure != StructureNone || t.Road || t.Biome == BiomeWater {
				continue
			}
			density := Normalize(g.noise.Sample(LayerScatter, float64(t.WorldX), float64(t.WorldY)))
			t.Object = g.params.Scatter.Object(t.Biome, density)
		}
	}
}
