package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/lodeworks/tileworld-server/internal/server/world/gen"
)

// TileData is the wire form of one tile.
type TileData struct {
	Elevation   float64 `json:"e"`
	Temperature float64 `json:"t"`
	Humidity    float64 `json:"h"`
	Biome       string  `json:"biome"`
	Structure   string  `json:"structure,omitempty"`
	Object      string  `json:"object,omitempty"`
	Road        bool    `json:"road,omitempty"`
	Variant     string  `json:"variant,omitempty"`
}

// ChunkData is the wire form of one chunk: a row-major tile grid plus a
// zstd-compressed encoding of it in Payload.
type ChunkData struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Size    int    `json:"size"`
	Payload []byte `json:"payload"`
}

// Stateless zstd codecs are safe for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// EncodeChunk converts a generated chunk to its wire form. Tiles are
// serialized to JSON and zstd-compressed; the mostly repetitive tile rows
// compress well.
func EncodeChunk(grid *gen.TileGrid) (ChunkData, error) {
	tiles := make([]TileData, 0, gen.ChunkSize*gen.ChunkSize)
	for ly := 0; ly < gen.ChunkSize; ly++ {
		for lx := 0; lx < gen.ChunkSize; lx++ {
			t := grid.At(lx, ly)
			td := TileData{
				Elevation:   t.Elevation,
				Temperature: t.Temperature,
				Humidity:    t.Humidity,
				Biome:       t.Biome.String(),
				Road:        t.Road,
			}
			if t.Structure != gen.StructureNone {
				td.Structure = t.Structure.String()
			}
			if t.Object != gen.ObjectNone {
				td.Object = t.Object.String()
			}
			if t.Variant != nil {
				td.Variant = t.Variant.Name
			}
			tiles = append(tiles, td)
		}
	}

	raw, err := json.Marshal(tiles)
	if err != nil {
		return ChunkData{}, fmt.Errorf("marshal tiles: %w", err)
	}
	return ChunkData{
		X:       grid.Pos.X,
		Y:       grid.Pos.Y,
		Size:    gen.ChunkSize,
		Payload: zstdEncoder.EncodeAll(raw, nil),
	}, nil
}

// DecodeChunk decompresses a chunk payload back into its tile list.
func DecodeChunk(cd ChunkData) ([]TileData, error) {
	raw, err := zstdDecoder.DecodeAll(cd.Payload, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress chunk (%d, %d): %w", cd.X, cd.Y, err)
	}
	var tiles []TileData
	if err := json.Unmarshal(raw, &tiles); err != nil {
		return nil, fmt.Errorf("parse chunk (%d, %d): %w", cd.X, cd.Y, err)
	}
	if len(tiles) != cd.Size*cd.Size {
		return nil, fmt.Errorf("chunk (%d, %d): %d tiles, want %d", cd.X, cd.Y, len(tiles), cd.Size*cd.Size)
	}
	return tiles, nil
}
