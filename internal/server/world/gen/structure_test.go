package gen

import "testing"

func countCells(t Template) int {
	n := 0
	for _, row := range t.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

func TestBaseTemplateDimensions(t *testing.T) {
	v := BaseTemplate(StructureVillage)
	if v.Width() != 8 || v.Height() != 8 {
		t.Errorf("village template is %dx%d, want 8x8", v.Width(), v.Height())
	}
	d := BaseTemplate(StructureDungeon)
	if d.Width() != 7 || d.Height() != 6 {
		t.Errorf("dungeon template is %dx%d, want 7x6", d.Width(), d.Height())
	}
}

func TestRotatePreservesCells(t *testing.T) {
	base := BaseTemplate(StructureDungeon)
	for k := 0; k < 4; k++ {
		r := base.Rotate(k)
		if countCells(r) != countCells(base) {
			t.Errorf("Rotate(%d) changed cell count: %d != %d", k, countCells(r), countCells(base))
		}
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	base := BaseTemplate(StructureDungeon)
	r := base.Rotate(1)
	if r.Width() != base.Height() || r.Height() != base.Width() {
		t.Errorf("Rotate(1) is %dx%d, want %dx%d", r.Width(), r.Height(), base.Height(), base.Width())
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	base := BaseTemplate(StructureVillage)
	r := base.Rotate(4)
	if r.Width() != base.Width() || r.Height() != base.Height() {
		t.Fatalf("Rotate(4) changed dimensions")
	}
	for y := range base.Cells {
		for x := range base.Cells[y] {
			if r.Cells[y][x] != base.Cells[y][x] {
				t.Fatalf("Rotate(4) differs from base at (%d, %d)", x, y)
			}
		}
	}
}

func TestScale(t *testing.T) {
	base := BaseTemplate(StructureDungeon)
	s := base.Scale(2)
	if s.Width() != base.Width()*2 || s.Height() != base.Height()*2 {
		t.Fatalf("Scale(2) is %dx%d, want %dx%d", s.Width(), s.Height(), base.Width()*2, base.Height()*2)
	}
	if countCells(s) != countCells(base)*4 {
		t.Errorf("Scale(2) cell count = %d, want %d", countCells(s), countCells(base)*4)
	}
	// Each source cell becomes a uniform 2x2 block.
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Cells[y][x] != base.Cells[y/2][x/2] {
				t.Fatalf("Scale(2) mismatch at (%d, %d)", x, y)
			}
		}
	}
}

func TestScaleOneIsNoop(t *testing.T) {
	base := BaseTemplate(StructureVillage)
	s := base.Scale(1)
	if s.Width() != base.Width() || s.Height() != base.Height() {
		t.Errorf("Scale(1) changed dimensions")
	}
}

func TestRandomizedTemplateDeterministic(t *testing.T) {
	a := RandomizedTemplate(StructureVillage, TemplateStream(12345, 3, 4))
	b := RandomizedTemplate(StructureVillage, TemplateStream(12345, 3, 4))
	if a.Width() != b.Width() || a.Height() != b.Height() {
		t.Fatalf("same stream produced different dimensions")
	}
	for y := range a.Cells {
		for x := range a.Cells[y] {
			if a.Cells[y][x] != b.Cells[y][x] {
				t.Fatalf("same stream produced different cells at (%d, %d)", x, y)
			}
		}
	}
}

func TestRandomizedTemplateFitsChunk(t *testing.T) {
	// Worst case is the 8x8 village at scale 2.
	for seed := int64(0); seed < 200; seed++ {
		tpl := RandomizedTemplate(StructureVillage, TemplateStream(seed, 0, 0))
		if tpl.Width() > ChunkSize || tpl.Height() > ChunkSize {
			t.Fatalf("seed %d: template %dx%d exceeds chunk size", seed, tpl.Width(), tpl.Height())
		}
	}
}

func TestCanPlace(t *testing.T) {
	tests := []struct {
		kind  StructureKind
		biome Biome
		want  bool
	}{
		{StructureVillage, BiomeGrass, true},
		{StructureVillage, BiomeForest, true},
		{StructureVillage, BiomeSand, false},
		{StructureVillage, BiomeWater, false},
		{StructureVillage, BiomeMountain, false},
		{StructureDungeon, BiomeGrass, true},
		{StructureDungeon, BiomeMountain, true},
		{StructureDungeon, BiomeDesert, true},
		{StructureDungeon, BiomeWater, false},
		{StructureNone, BiomeGrass, false},
	}
	for _, tt := range tests {
		if got := CanPlace(tt.kind, tt.biome); got != tt.want {
			t.Errorf("CanPlace(%s, %s) = %v, want %v", tt.kind, tt.biome, got, tt.want)
		}
	}
}
