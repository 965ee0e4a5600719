package gen

import "math"

// RoadNode is an intersection in a road graph, in local tile coordinates.
type RoadNode struct {
	X, Y float64
}

// RoadEdge connects two nodes by index into the graph's node slice.
type RoadEdge struct {
	A, B int
}

// RoadGraph is a tree of intersections generated around a structure center.
// It lives only for one rasterization call and is never cached.
type RoadGraph struct {
	Nodes []RoadNode
	Edges []RoadEdge
}

const (
	roadMinNodes  = 5
	roadMaxNodes  = 10
	roadMinRadius = 6.0
	roadMaxRadius = 18.0
)

// BuildRoadGraph grows a random tree around a center point. Every new node
// attaches by one edge to a uniformly chosen existing node, so the result is
// connected and acyclic for any stream.
func BuildRoadGraph(centerX, centerY float64, rs *Stream) *RoadGraph {
	g := &RoadGraph{Nodes: []RoadNode{{X: centerX, Y: centerY}}}

	n := rs.IntN(roadMinNodes, roadMaxNodes+1)
	for i := 0; i < n; i++ {
		angle := rs.Angle()
		radius := roadMinRadius + rs.Float()*(roadMaxRadius-roadMinRadius)
		node := RoadNode{
			X: centerX + math.Cos(angle)*radius,
			Y: centerY + math.Sin(angle)*radius,
		}
		attach := rs.IntN(0, len(g.Nodes))
		g.Nodes = append(g.Nodes, node)
		g.Edges = append(g.Edges, RoadEdge{A: attach, B: len(g.Nodes) - 1})
	}
	return g
}

// Rasterize walks every edge with Bresenham's line algorithm and tags each
// tile within width (Chebyshev) of a line point as road. Tiles already
// tagged are left alone: first writer wins, in edge-list order.
func (g *RoadGraph) Rasterize(grid *TileGrid, width int) {
	for _, e := range g.Edges {
		a, b := g.Nodes[e.A], g.Nodes[e.B]
		walkLine(roundCoord(a.X), roundCoord(a.Y), roundCoord(b.X), roundCoord(b.Y), func(x, y int) {
			for dy := -width; dy <= width; dy++ {
				for dx := -width; dx <= width; dx++ {
					lx, ly := x+dx, y+dy
					if !grid.InBounds(lx, ly) {
						continue
					}
					t := grid.At(lx, ly)
					if t.Road {
						continue
					}
					t.Road = true
				}
			}
		})
	}
}

func roundCoord(v float64) int {
	return int(math.Round(v))
}

// walkLine visits every integer point on the line from (x0,y0) to (x1,y1).
func walkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
