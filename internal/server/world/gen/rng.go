package gen

import "math"

// Stream is a deterministic LCG random stream. Two streams built from equal
// seeds produce identical sequences; reconstructing a stream restarts it.
type Stream struct {
	state int64
}

// NewStream creates a Stream from a seed.
func NewStream(seed int64) *Stream {
	return &Stream{state: seed}
}

func (s *Stream) next() int64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return s.state
}

// Float returns the next value in [0, 1).
func (s *Stream) Float() float64 {
	return float64(uint64(s.next())>>11) / (1 << 53)
}

// IntN returns the next integer in [min, max).
func (s *Stream) IntN(min, max int) int {
	if max <= min {
		return min
	}
	v := int(s.next()>>33) % (max - min)
	if v < 0 {
		v = -v
	}
	return min + v
}

// Angle returns the next angle in [0, 2π).
func (s *Stream) Angle() float64 {
	return s.Float() * 2 * math.Pi
}

// Coordinate-derived streams. Each purpose combines the world seed with the
// target coordinates through its own pair of multipliers, so streams for
// different purposes at the same coordinate never correlate, and the same
// purpose at the same coordinate always reproduces the same sequence.
const (
	occupancyMulX = 341873128712
	occupancyMulY = 132897987541

	templateMulX = 198491317
	templateMulY = 6542989

	detailMulX = 73856093
	detailMulY = 19349663
)

// OccupancyStream derives the stream that decides structure candidacy for a
// spacing cell.
func OccupancyStream(seed int64, cellX, cellY int) *Stream {
	return NewStream(seed ^ (int64(cellX)*occupancyMulX + int64(cellY)*occupancyMulY))
}

// TemplateStream derives the stream that picks a chunk's template rotation
// and scale.
func TemplateStream(seed int64, cx, cy int) *Stream {
	return NewStream(seed ^ (int64(cx)*templateMulX + int64(cy)*templateMulY))
}

// DetailStream derives the stream for per-chunk variation such as road-graph
// layout.
func DetailStream(seed int64, cx, cy int) *Stream {
	return NewStream(seed ^ (int64(cx)*detailMulX + int64(cy)*detailMulY))
}
