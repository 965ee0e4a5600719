package world

import (
	"sync"

	"github.com/lodeworks/tileworld-server/internal/server/world/gen"
)

// World lazily generates and caches chunks, and owns the structure registry
// shared by every generation call. Generation mutates the registry, so all
// access goes through the write lock; cached reads take the read lock.
type World struct {
	mu        sync.RWMutex
	seed      int64
	params    gen.Params
	registry  *gen.StructureRegistry
	generator *gen.Generator
	chunks    map[gen.ChunkPos]*gen.TileGrid
}

// NewWorld creates a World generating from the given seed and parameters.
func NewWorld(seed int64, params gen.Params) *World {
	registry := gen.NewStructureRegistry()
	return &World{
		seed:      seed,
		params:    params,
		registry:  registry,
		generator: gen.NewGenerator(seed, params, registry),
		chunks:    make(map[gen.ChunkPos]*gen.TileGrid),
	}
}

// Seed returns the current world seed.
func (w *World) Seed() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.seed
}

// GetChunk returns the chunk at (cx, cy), generating and caching it on first
// request.
func (w *World) GetChunk(cx, cy int) *gen.TileGrid {
	pos := gen.ChunkPos{X: cx, Y: cy}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	// Double-check after acquiring the write lock.
	if c, ok := w.chunks[pos]; ok {
		return c
	}
	c := w.generator.Generate(pos)
	w.chunks[pos] = c
	return c
}

// UnloadDistantChunks evicts every chunk whose Chebyshev distance from the
// center exceeds keepDistance, along with its structure record. Returns the
// number of evicted chunks. Idempotent.
func (w *World) UnloadDistantChunks(centerCx, centerCy, keepDistance int) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	evicted := 0
	for pos := range w.chunks {
		dx := pos.X - centerCx
		if dx < 0 {
			dx = -dx
		}
		dy := pos.Y - centerCy
		if dy < 0 {
			dy = -dy
		}
		if dx > keepDistance || dy > keepDistance {
			delete(w.chunks, pos)
			w.registry.Remove(pos)
			evicted++
		}
	}
	return evicted
}

// Clear drops all cached chunks and the structure registry.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunks = make(map[gen.ChunkPos]*gen.TileGrid)
	w.registry.Clear()
}

// Reseed clears the world and swaps in a generator for the new seed.
func (w *World) Reseed(seed int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seed = seed
	w.chunks = make(map[gen.ChunkPos]*gen.TileGrid)
	w.registry = gen.NewStructureRegistry()
	w.generator = gen.NewGenerator(seed, w.params, w.registry)
}

// ActiveChunks returns a copy of the cached chunk set.
func (w *World) ActiveChunks() map[gen.ChunkPos]*gen.TileGrid {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make(map[gen.ChunkPos]*gen.TileGrid, len(w.chunks))
	for pos, c := range w.chunks {
		out[pos] = c
	}
	return out
}

// StructureCount returns the number of live structure records.
func (w *World) StructureCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.registry.Len()
}
