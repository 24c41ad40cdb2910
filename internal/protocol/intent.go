package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestRegenerate rebuilds the room with its current seed.
type RequestRegenerate struct {
}

// RequestSetSeed rebuilds the room with an explicit seed.
type RequestSetSeed struct {
	Seed int64 `json:"seed"`
}

// RequestRandomizeSeed rebuilds the room with a server-chosen seed.
type RequestRandomizeSeed struct {
}
