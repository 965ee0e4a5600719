package gen

// Template is a structure footprint: a rectangular grid of cells, each either
// empty or structure-marked.
type Template struct {
	Kind  StructureKind
	Cells [][]bool
}

// Structure footprints. '#' marks a structure cell.
var (
	villageRows = []string{
		"##.##.##",
		"##.##.##",
		"........",
		"##....##",
		"##....##",
		"........",
		"##.##.##",
		"##.##.##",
	}
	dungeonRows = []string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.###.#",
		"#.....#",
		"###.###",
	}
)

func parseTemplate(kind StructureKind, rows []string) Template {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			cells[y][x] = row[x] == '#'
		}
	}
	return Template{Kind: kind, Cells: cells}
}

// BaseTemplate returns the unrotated, unscaled footprint for a structure kind.
func BaseTemplate(kind StructureKind) Template {
	if kind == StructureVillage {
		return parseTemplate(kind, villageRows)
	}
	return parseTemplate(kind, dungeonRows)
}

// Width returns the template width in cells.
func (t Template) Width() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Height returns the template height in cells.
func (t Template) Height() int {
	return len(t.Cells)
}

// Rotate returns the template rotated 90°×k clockwise.
func (t Template) Rotate(k int) Template {
	out := t
	for i := 0; i < k%4; i++ {
		h, w := out.Height(), out.Width()
		cells := make([][]bool, w)
		for y := 0; y < w; y++ {
			cells[y] = make([]bool, h)
			for x := 0; x < h; x++ {
				cells[y][x] = out.Cells[h-1-x][y]
			}
		}
		out = Template{Kind: t.Kind, Cells: cells}
	}
	return out
}

// Scale expands each cell into an s×s block.
func (t Template) Scale(s int) Template {
	if s <= 1 {
		return t
	}
	h, w := t.Height(), t.Width()
	cells := make([][]bool, h*s)
	for y := range cells {
		cells[y] = make([]bool, w*s)
		for x := range cells[y] {
			cells[y][x] = t.Cells[y/s][x/s]
		}
	}
	return Template{Kind: t.Kind, Cells: cells}
}

// RandomizedTemplate draws a rotation in {0..3} and a scale in {1, 2} from
// the stream and returns the composed template.
func RandomizedTemplate(kind StructureKind, rs *Stream) Template {
	k := rs.IntN(0, 4)
	s := rs.IntN(1, 3)
	return BaseTemplate(kind).Rotate(k).Scale(s)
}

// CanPlace reports whether a structure cell may land on the given biome.
// Villages need grass or forest; dungeons only refuse water. Nothing places
// on water.
func CanPlace(kind StructureKind, b Biome) bool {
	switch kind {
	case StructureVillage:
		return b == BiomeGrass || b == BiomeForest
	case StructureDungeon:
		return b != BiomeWater
	default:
		return false
	}
}
