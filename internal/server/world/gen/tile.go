package gen

// ChunkSize is the edge length of a chunk in tiles.
const ChunkSize = 32

// ChunkPos identifies a chunk by its X and Y coordinates.
type ChunkPos struct{ X, Y int }

// StructureKind tags a tile as belonging to a placed structure.
// StructureNone means no structure.
type StructureKind uint8

const (
	StructureNone StructureKind = iota
	StructureVillage
	StructureDungeon
)

func (k StructureKind) String() string {
	switch k {
	case StructureVillage:
		return "village"
	case StructureDungeon:
		return "dungeon"
	default:
		return "none"
	}
}

// biome returns the biome a structure tile is rewritten to.
func (k StructureKind) biome() Biome {
	if k == StructureVillage {
		return BiomeVillage
	}
	return BiomeDungeon
}

// ObjectKind tags a tile with a scattered decorative object.
// ObjectNone means no object.
type ObjectKind uint8

const (
	ObjectNone ObjectKind = iota
	ObjectTree
	ObjectRock
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectTree:
		return "tree"
	case ObjectRock:
		return "rock"
	default:
		return "none"
	}
}

// Direction indexes the 8 neighbors of a tile, clockwise from north.
// The direction's value is also its bit position in the autotile mask.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionOffsets = [8][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Tile is one cell of the generated world.
type Tile struct {
	WorldX int
	WorldY int

	Elevation   float64
	Temperature float64
	Humidity    float64
	Biome       Biome

	Structure StructureKind
	Object    ObjectKind
	Road      bool

	// Autotiling output. Variant is nil for structure tiles.
	Mask    uint8
	Variant *Variant

	// Neighbor biomes by direction, for renderer edge blending. Off-chunk
	// directions are absent.
	NeighborBiomes map[Direction]Biome
}

// Walkable reports whether an actor can stand on the tile.
func (t *Tile) Walkable() bool {
	return t.Biome != BiomeWater && t.Structure == StructureNone
}

// Solid reports whether the tile blocks movement through it.
func (t *Tile) Solid() bool {
	return t.Structure != StructureNone || t.Object != ObjectNone
}

// TileGrid is one generated chunk: a ChunkSize×ChunkSize grid of tiles.
// It is mutated only during its own generation pass and is effectively
// immutable once autotiling completes.
type TileGrid struct {
	Pos   ChunkPos
	Tiles [ChunkSize][ChunkSize]Tile
}

// NewTileGrid creates an empty grid for the chunk at pos.
func NewTileGrid(pos ChunkPos) *TileGrid {
	return &TileGrid{Pos: pos}
}

// At returns the tile at local coordinates. lx, ly must be in [0, ChunkSize).
func (g *TileGrid) At(lx, ly int) *Tile {
	return &g.Tiles[ly][lx]
}

// InBounds reports whether local coordinates fall inside the chunk.
func (g *TileGrid) InBounds(lx, ly int) bool {
	return lx >= 0 && lx < ChunkSize && ly >= 0 && ly < ChunkSize
}

// floorDiv divides rounding toward negative infinity, so coordinate to cell
// mapping is correct in all quadrants.
func floorDiv(a, b int) int {
	if a < 0 && a%b != 0 {
		return a/b - 1
	}
	return a / b
}
