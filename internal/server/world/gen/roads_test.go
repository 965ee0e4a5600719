package gen

import "testing"

func TestBuildRoadGraphIsTree(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		g := BuildRoadGraph(16, 16, DetailStream(seed, 0, 0))

		n := len(g.Nodes)
		if n < roadMinNodes+1 || n > roadMaxNodes+1 {
			t.Fatalf("seed %d: %d nodes, want [%d, %d]", seed, n, roadMinNodes+1, roadMaxNodes+1)
		}
		if len(g.Edges) != n-1 {
			t.Fatalf("seed %d: %d edges for %d nodes, want %d", seed, len(g.Edges), n, n-1)
		}

		// Connectivity: flood from node 0 over undirected edges.
		adj := make([][]int, n)
		for _, e := range g.Edges {
			adj[e.A] = append(adj[e.A], e.B)
			adj[e.B] = append(adj[e.B], e.A)
		}
		seen := make([]bool, n)
		queue := []int{0}
		seen[0] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range adj[v] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		for i, s := range seen {
			if !s {
				t.Fatalf("seed %d: node %d unreachable from root", seed, i)
			}
		}
	}
}

func TestBuildRoadGraphDeterministic(t *testing.T) {
	a := BuildRoadGraph(16, 16, DetailStream(12345, 2, 3))
	b := BuildRoadGraph(16, 16, DetailStream(12345, 2, 3))
	if len(a.Nodes) != len(b.Nodes) || len(a.Edges) != len(b.Edges) {
		t.Fatalf("same stream produced different graph sizes")
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d differs", i)
		}
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs", i)
		}
	}
}

func TestRoadNodeRadius(t *testing.T) {
	g := BuildRoadGraph(16, 16, DetailStream(7, 0, 0))
	for i, n := range g.Nodes[1:] {
		dx, dy := n.X-16, n.Y-16
		d2 := dx*dx + dy*dy
		if d2 < roadMinRadius*roadMinRadius-1e-9 || d2 > roadMaxRadius*roadMaxRadius+1e-9 {
			t.Errorf("node %d at squared distance %f, want radius in [%f, %f]", i+1, d2, roadMinRadius, roadMaxRadius)
		}
	}
}

func TestRasterizeMarksRoads(t *testing.T) {
	grid := NewTileGrid(ChunkPos{})
	g := &RoadGraph{
		Nodes: []RoadNode{{X: 4, Y: 4}, {X: 20, Y: 4}},
		Edges: []RoadEdge{{A: 0, B: 1}},
	}
	g.Rasterize(grid, 1)

	// The horizontal line plus a width-1 band.
	for x := 4; x <= 20; x++ {
		for y := 3; y <= 5; y++ {
			if !grid.At(x, y).Road {
				t.Fatalf("tile (%d, %d) not road", x, y)
			}
		}
	}
	if grid.At(4, 7).Road {
		t.Error("tile outside the band marked as road")
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	g := BuildRoadGraph(16, 16, DetailStream(99, 0, 0))

	once := NewTileGrid(ChunkPos{})
	g.Rasterize(once, 1)

	twice := NewTileGrid(ChunkPos{})
	g.Rasterize(twice, 1)
	g.Rasterize(twice, 1)

	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			if once.At(lx, ly).Road != twice.At(lx, ly).Road {
				t.Fatalf("double rasterization changed tile (%d, %d)", lx, ly)
			}
		}
	}
}

func TestRasterizeClipsToChunk(t *testing.T) {
	// Nodes beyond the chunk edge must not panic and must clip.
	grid := NewTileGrid(ChunkPos{})
	g := &RoadGraph{
		Nodes: []RoadNode{{X: 16, Y: 16}, {X: 50, Y: -10}},
		Edges: []RoadEdge{{A: 0, B: 1}},
	}
	g.Rasterize(grid, 2)
	if !grid.At(16, 16).Road {
		t.Error("in-bounds segment start not marked")
	}
}

func TestWalkLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		points         int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 0, 0, 0, 5, 6},
		{"diagonal", 0, 0, 5, 5, 6},
		{"single point", 3, 3, 3, 3, 1},
		{"reversed", 5, 0, 0, 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited [][2]int
			walkLine(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) {
				visited = append(visited, [2]int{x, y})
			})
			if len(visited) != tt.points {
				t.Errorf("visited %d points, want %d", len(visited), tt.points)
			}
			first, last := visited[0], visited[len(visited)-1]
			if first != [2]int{tt.x0, tt.y0} || last != [2]int{tt.x1, tt.y1} {
				t.Errorf("endpoints %v..%v, want (%d,%d)..(%d,%d)", first, last, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestWalkLineContiguous(t *testing.T) {
	var prev *[2]int
	walkLine(-3, 7, 11, -2, func(x, y int) {
		if prev != nil {
			dx, dy := x-prev[0], y-prev[1]
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Fatalf("line jumped from %v to (%d, %d)", *prev, x, y)
			}
		}
		prev = &[2]int{x, y}
	})
}
