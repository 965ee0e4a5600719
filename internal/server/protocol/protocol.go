// Package protocol defines the websocket message envelope and the chunk
// wire format used between the server and its viewer clients.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Message types.
const (
	TypeChunkRequest = "chunk_request"
	TypeChunk        = "chunk"
	TypeView         = "view"
	TypeReseed       = "reseed"
	TypeError        = "error"
)

// Envelope wraps every message on the wire. Data holds the type-specific
// payload, still encoded.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ChunkRequest asks the server for one chunk.
type ChunkRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// View reports the client's view center, in chunk coordinates. The server
// evicts chunks outside the keep distance around it; a zero KeepDistance
// falls back to the server's configured value.
type View struct {
	CenterX      int `json:"center_x"`
	CenterY      int `json:"center_y"`
	KeepDistance int `json:"keep_distance,omitempty"`
}

// Reseed asks the server to drop the world and regenerate from a new seed.
type Reseed struct {
	Seed int64 `json:"seed"`
}

// Error reports a failed request back to the client.
type Error struct {
	Message string `json:"message"`
}

// Encode wraps a payload in an envelope and marshals it.
func Encode(msgType string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return json.Marshal(Envelope{Type: msgType, Data: data})
}

// Decode unmarshals an envelope from raw bytes.
func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("parse envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("envelope missing type")
	}
	return env, nil
}
