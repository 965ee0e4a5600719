package gen

// PlacementRules controls how often and how far apart structures spawn.
type PlacementRules struct {
	// Spacing is the edge length, in chunks, of the square cells used to
	// keep structures apart. One candidate chunk is drawn per cell.
	Spacing int `json:"spacing"`
	// VillageChance and DungeonChance are cumulative roll thresholds: a roll
	// below VillageChance spawns a village, below the sum a dungeon.
	VillageChance float64 `json:"village_chance"`
	DungeonChance float64 `json:"dungeon_chance"`
}

// DefaultPlacementRules returns the placement density of the default world.
func DefaultPlacementRules() PlacementRules {
	return PlacementRules{
		Spacing:       4,
		VillageChance: 0.4,
		DungeonChance: 0.3,
	}
}

// StructureRecord marks a chunk as the origin of a placed structure.
// Records are created once and never mutated; they are removed only when the
// owning chunk is evicted.
type StructureRecord struct {
	Kind   StructureKind
	Origin ChunkPos
}

// StructureRegistry maps origin chunks to their placed structures. It is
// shared by every chunk generated from one cache, so neighboring chunks can
// detect and extend multi-chunk structures. Not safe for concurrent use; the
// owning cache serializes access.
type StructureRegistry struct {
	records map[ChunkPos]StructureRecord
}

// NewStructureRegistry creates an empty registry.
func NewStructureRegistry() *StructureRegistry {
	return &StructureRegistry{records: make(map[ChunkPos]StructureRecord)}
}

// candidateChunk picks the single chunk inside a spacing cell that may roll
// for a structure. The draw depends only on (seed, cell), never on visit
// order.
func candidateChunk(seed int64, cellX, cellY, spacing int) (ChunkPos, *Stream) {
	rs := OccupancyStream(seed, cellX, cellY)
	ox := rs.IntN(0, spacing)
	oy := rs.IntN(0, spacing)
	return ChunkPos{X: cellX*spacing + ox, Y: cellY*spacing + oy}, rs
}

// Roll decides whether pos spawns a new structure. Only the cell's candidate
// chunk rolls; a successful roll inserts and returns the record.
func (r *StructureRegistry) Roll(seed int64, pos ChunkPos, rules PlacementRules) (StructureRecord, bool) {
	cellX := floorDiv(pos.X, rules.Spacing)
	cellY := floorDiv(pos.Y, rules.Spacing)

	candidate, rs := candidateChunk(seed, cellX, cellY, rules.Spacing)
	if candidate != pos {
		return StructureRecord{}, false
	}

	p := rs.Float()
	var kind StructureKind
	switch {
	case p < rules.VillageChance:
		kind = StructureVillage
	case p < rules.VillageChance+rules.DungeonChance:
		kind = StructureDungeon
	default:
		return StructureRecord{}, false
	}

	rec := StructureRecord{Kind: kind, Origin: pos}
	r.records[pos] = rec
	return rec, true
}

// Lookup returns the record whose structure covers pos: the chunk's own
// record if present, otherwise the first record within Chebyshev distance 1,
// scanned in a fixed order so adoption is deterministic.
func (r *StructureRegistry) Lookup(pos ChunkPos) (StructureRecord, bool) {
	if rec, ok := r.records[pos]; ok {
		return rec, true
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if rec, ok := r.records[ChunkPos{X: pos.X + dx, Y: pos.Y + dy}]; ok {
				return rec, true
			}
		}
	}
	return StructureRecord{}, false
}

// Get returns the record originating at pos, if any.
func (r *StructureRegistry) Get(pos ChunkPos) (StructureRecord, bool) {
	rec, ok := r.records[pos]
	return rec, ok
}

// Remove deletes the record originating at pos. Safe to call when absent.
func (r *StructureRegistry) Remove(pos ChunkPos) {
	delete(r.records, pos)
}

// Clear drops all records.
func (r *StructureRegistry) Clear() {
	r.records = make(map[ChunkPos]StructureRecord)
}

// Len returns the number of records.
func (r *StructureRegistry) Len() int {
	return len(r.records)
}

// Records returns a copy of all records.
func (r *StructureRegistry) Records() []StructureRecord {
	out := make([]StructureRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out
}
