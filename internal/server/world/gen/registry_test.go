package gen

import "testing"

func TestRollDeterministic(t *testing.T) {
	rules := DefaultPlacementRules()
	r1 := NewStructureRegistry()
	r2 := NewStructureRegistry()

	for cy := -8; cy <= 8; cy++ {
		for cx := -8; cx <= 8; cx++ {
			pos := ChunkPos{X: cx, Y: cy}
			rec1, ok1 := r1.Roll(12345, pos, rules)
			rec2, ok2 := r2.Roll(12345, pos, rules)
			if ok1 != ok2 || rec1 != rec2 {
				t.Fatalf("roll at %v not deterministic", pos)
			}
		}
	}
}

func TestRollOrderIndependent(t *testing.T) {
	rules := DefaultPlacementRules()

	forward := NewStructureRegistry()
	for cy := -8; cy <= 8; cy++ {
		for cx := -8; cx <= 8; cx++ {
			forward.Roll(12345, ChunkPos{X: cx, Y: cy}, rules)
		}
	}

	backward := NewStructureRegistry()
	for cy := 8; cy >= -8; cy-- {
		for cx := 8; cx >= -8; cx-- {
			backward.Roll(12345, ChunkPos{X: cx, Y: cy}, rules)
		}
	}

	if forward.Len() != backward.Len() {
		t.Fatalf("visit order changed record count: %d != %d", forward.Len(), backward.Len())
	}
	for pos, rec := range forward.records {
		got, ok := backward.records[pos]
		if !ok || got != rec {
			t.Fatalf("visit order changed record at %v", pos)
		}
	}
}

func TestRollAtMostOnePerCell(t *testing.T) {
	rules := DefaultPlacementRules()
	r := NewStructureRegistry()

	for cy := -20; cy <= 20; cy++ {
		for cx := -20; cx <= 20; cx++ {
			r.Roll(777, ChunkPos{X: cx, Y: cy}, rules)
		}
	}

	perCell := make(map[ChunkPos]int)
	for pos := range r.records {
		cell := ChunkPos{X: floorDiv(pos.X, rules.Spacing), Y: floorDiv(pos.Y, rules.Spacing)}
		perCell[cell]++
	}
	for cell, n := range perCell {
		if n > 1 {
			t.Errorf("cell %v holds %d structures, want at most 1", cell, n)
		}
	}
}

func TestRollSpawnsSomething(t *testing.T) {
	// With a 70% combined chance per cell, an 11x11 cell area should spawn.
	rules := DefaultPlacementRules()
	r := NewStructureRegistry()
	for cy := -22; cy <= 22; cy++ {
		for cx := -22; cx <= 22; cx++ {
			r.Roll(42, ChunkPos{X: cx, Y: cy}, rules)
		}
	}
	if r.Len() == 0 {
		t.Fatal("no structures spawned across 121 cells")
	}

	kinds := make(map[StructureKind]int)
	for _, rec := range r.records {
		kinds[rec.Kind]++
	}
	if kinds[StructureVillage] == 0 || kinds[StructureDungeon] == 0 {
		t.Errorf("expected both kinds across 121 cells, got %v", kinds)
	}
}

func TestLookupOwnRecordFirst(t *testing.T) {
	r := NewStructureRegistry()
	own := ChunkPos{X: 5, Y: 5}
	neighbor := ChunkPos{X: 4, Y: 4}
	r.records[own] = StructureRecord{Kind: StructureVillage, Origin: own}
	r.records[neighbor] = StructureRecord{Kind: StructureDungeon, Origin: neighbor}

	rec, ok := r.Lookup(own)
	if !ok || rec.Origin != own {
		t.Fatalf("Lookup returned %v, want own record", rec)
	}
}

func TestLookupAdoptsNeighbor(t *testing.T) {
	r := NewStructureRegistry()
	origin := ChunkPos{X: 0, Y: 0}
	r.records[origin] = StructureRecord{Kind: StructureDungeon, Origin: origin}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			pos := ChunkPos{X: dx, Y: dy}
			rec, ok := r.Lookup(pos)
			if !ok {
				t.Fatalf("Lookup(%v) found nothing, want adoption from origin", pos)
			}
			if rec.Origin != origin {
				t.Fatalf("Lookup(%v) adopted %v, want %v", pos, rec.Origin, origin)
			}
		}
	}

	// Chebyshev distance 2 is out of reach.
	if _, ok := r.Lookup(ChunkPos{X: 2, Y: 0}); ok {
		t.Error("Lookup at distance 2 should find nothing")
	}
}

func TestRemoveAndClear(t *testing.T) {
	r := NewStructureRegistry()
	pos := ChunkPos{X: 1, Y: 2}
	r.records[pos] = StructureRecord{Kind: StructureVillage, Origin: pos}

	r.Remove(ChunkPos{X: 9, Y: 9}) // absent, no-op
	if r.Len() != 1 {
		t.Fatalf("Remove of absent pos changed Len to %d", r.Len())
	}
	r.Remove(pos)
	if _, ok := r.Get(pos); ok {
		t.Error("record still present after Remove")
	}

	r.records[pos] = StructureRecord{Kind: StructureVillage, Origin: pos}
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", r.Len())
	}
}

func TestCandidateChunkInsideCell(t *testing.T) {
	for cellY := -5; cellY <= 5; cellY++ {
		for cellX := -5; cellX <= 5; cellX++ {
			pos, _ := candidateChunk(42, cellX, cellY, 4)
			if floorDiv(pos.X, 4) != cellX || floorDiv(pos.Y, 4) != cellY {
				t.Fatalf("candidate %v escaped cell (%d, %d)", pos, cellX, cellY)
			}
		}
	}
}
