package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// RoomRegenerated carries the complete new room state. Clients replace
// everything they hold; there are no incremental layout patches.
type RoomRegenerated struct {
	Snapshot RoomSnapshot `json:"snapshot"`
}
