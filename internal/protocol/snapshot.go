package protocol

import (
	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/roomgen"
)

// PlacementLite is the wire form of one placed mesh instance. Positions are
// world units; yaw is degrees.
type PlacementLite struct {
	Mesh string  `json:"mesh"`
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Yaw  float64 `json:"yaw"`
}

// RoomSnapshot is the full generated-room state a client needs to render
// from scratch. Sent on connect and after every regeneration.
type RoomSnapshot struct {
	Name            string          `json:"name"`
	Seed            int64           `json:"seed"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	CellSize        float64         `json:"cellSize"`
	CellStates      []byte          `json:"cellStates"`
	Placements      []PlacementLite `json:"placements"`
	ProtocolVersion string          `json:"protocolVersion"`
}

const Version = "1"

// SnapshotFromResult flattens a generation result into its wire form.
func SnapshotFromResult(name string, res *roomgen.Result) RoomSnapshot {
	placements := make([]PlacementLite, 0, len(res.Placements))
	for _, p := range res.Placements {
		placements = append(placements, PlacementLite{
			Mesh: string(p.Mesh),
			Kind: string(p.Kind),
			X:    p.Transform.Position.X,
			Y:    p.Transform.Position.Y,
			Z:    p.Transform.Position.Z,
			Yaw:  p.Transform.Yaw,
		})
	}
	return RoomSnapshot{
		Name:            name,
		Seed:            res.Seed,
		Width:           res.Width,
		Height:          res.Height,
		CellSize:        grid.CellSize,
		CellStates:      res.Occupancy.StateBytes(),
		Placements:      placements,
		ProtocolVersion: Version,
	}
}
