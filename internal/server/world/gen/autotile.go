package gen

// BiomeGroup is the visual compatibility class used to decide whether two
// different biomes may blend at their border.
type BiomeGroup uint8

const (
	GroupWater BiomeGroup = iota
	GroupShore
	GroupGreen
	GroupHighland
	GroupArid
	GroupBuilt
)

var biomeGroups = [...]BiomeGroup{
	BiomeWater:    GroupWater,
	BiomeSand:     GroupShore,
	BiomeGrass:    GroupGreen,
	BiomeForest:   GroupGreen,
	BiomeMountain: GroupHighland,
	BiomeSnow:     GroupHighland,
	BiomeDesert:   GroupArid,
	BiomeVillage:  GroupBuilt,
	BiomeDungeon:  GroupBuilt,
}

// groupBlends lists, as a bit set, the groups each group may blend with.
// Every entry includes its own group.
var groupBlends = [...]uint8{
	GroupWater:    1<<GroupWater | 1<<GroupShore,
	GroupShore:    1<<GroupShore | 1<<GroupWater | 1<<GroupGreen | 1<<GroupArid,
	GroupGreen:    1<<GroupGreen | 1<<GroupShore | 1<<GroupHighland,
	GroupHighland: 1<<GroupHighland | 1<<GroupGreen,
	GroupArid:     1<<GroupArid | 1<<GroupShore,
	GroupBuilt:    1 << GroupBuilt,
}

// Group returns the compatibility group of a biome.
func Group(b Biome) BiomeGroup {
	return biomeGroups[b]
}

// Compatible reports whether a neighbor biome blends with the center biome.
// Equal biomes are always compatible.
func Compatible(center, neighbor Biome) bool {
	if center == neighbor {
		return true
	}
	return groupBlends[Group(center)]&(1<<Group(neighbor)) != 0
}

// Variant is a renderable tile variant selected by the neighbor mask.
type Variant struct {
	Name string
}

var (
	variantFull     = &Variant{Name: "full"}
	variantIsolated = &Variant{Name: "isolated"}
)

const (
	maskN  = 1 << North
	maskNE = 1 << NorthEast
	maskE  = 1 << East
	maskSE = 1 << SouthEast
	maskS  = 1 << South
	maskSW = 1 << SouthWest
	maskW  = 1 << West
	maskNW = 1 << NorthWest
)

// variantTable resolves a neighbor mask to a variant by exact match.
// Unmatched masks fall back to variantFull.
var variantTable = map[uint8]*Variant{
	0xFF: variantFull,
	0x00: variantIsolated,

	// One incompatible side.
	0xFF &^ (maskN | maskNE | maskNW): {Name: "edge_n"},
	0xFF &^ (maskE | maskNE | maskSE): {Name: "edge_e"},
	0xFF &^ (maskS | maskSE | maskSW): {Name: "edge_s"},
	0xFF &^ (maskW | maskNW | maskSW): {Name: "edge_w"},

	// Two adjacent incompatible sides.
	0xFF &^ (maskN | maskE | maskNE | maskNW | maskSE): {Name: "corner_ne"},
	0xFF &^ (maskS | maskE | maskSE | maskNE | maskSW): {Name: "corner_se"},
	0xFF &^ (maskS | maskW | maskSW | maskSE | maskNW): {Name: "corner_sw"},
	0xFF &^ (maskN | maskW | maskNW | maskNE | maskSW): {Name: "corner_nw"},

	// One incompatible diagonal.
	0xFF &^ maskNE: {Name: "inner_ne"},
	0xFF &^ maskSE: {Name: "inner_se"},
	0xFF &^ maskSW: {Name: "inner_sw"},
	0xFF &^ maskNW: {Name: "inner_nw"},

	// Narrow strips.
	maskE | maskW: {Name: "strip_h"},
	maskN | maskS: {Name: "strip_v"},
}

// ResolveVariant looks up the variant for a mask, falling back to the
// all-compatible variant.
func ResolveVariant(mask uint8) *Variant {
	if v, ok := variantTable[mask]; ok {
		return v
	}
	return variantFull
}

// ApplyAutotiling computes each tile's 8-neighbor compatibility mask and
// resolves its variant. Bit i is set when neighbor i is compatible with the
// center; neighbors outside the chunk count as compatible so chunk borders
// do not render seams. Structure tiles get no variant. Neighbor biomes are
// recorded per direction for all tiles.
func ApplyAutotiling(grid *TileGrid) {
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			t := grid.At(lx, ly)
			neighbors := make(map[Direction]Biome, 8)

			var mask uint8
			for d := North; d <= NorthWest; d++ {
				off := directionOffsets[d]
				nx, ny := lx+off[0], ly+off[1]
				if !grid.InBounds(nx, ny) {
					mask |= 1 << uint(d)
					continue
				}
				nb := grid.At(nx, ny).Biome
				neighbors[d] = nb
				if Compatible(t.Biome, nb) {
					mask |= 1 << uint(d)
				}
			}

			t.NeighborBiomes = neighbors
			if t.Structure != StructureNone {
				t.Mask = 0
				t.Variant = nil
				continue
			}
			t.Mask = mask
			t.Variant = ResolveVariant(mask)
		}
	}
}
