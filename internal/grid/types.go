package grid

import (
	"encoding/json"
	"fmt"
	"math"
)

// CellSize is the edge length of one grid cell in world units.
const CellSize = 100.0

// Cell addresses one interior grid cell, or one virtual boundary cell when
// X or Y is -1 or equal to the grid dimension.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellState is the content of an interior cell during and after generation.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellFloorMesh
	CellWallBoundary
	CellDoorwaySlot
)

// BoundaryContent is what occupies a virtual boundary cell.
type BoundaryContent uint8

const (
	BoundaryWall BoundaryContent = iota
	BoundaryDoorway
)

// Edge is one of the four room boundaries.
// Coordinate system: North = +X, South = -X, East = +Y, West = -Y.
type Edge uint8

const (
	North Edge = iota
	South
	East
	West
)

// EdgeOrder is the fixed processing order for wall and door passes.
var EdgeOrder = [4]Edge{North, South, East, West}

func (e Edge) String() string {
	switch e {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseEdge converts the JSON form back into an Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	}
	return North, fmt.Errorf("unknown edge %q", s)
}

func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *Edge) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEdge(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// WallYaw is the inward-facing rotation for wall modules on this edge.
func (e Edge) WallYaw() float64 {
	switch e {
	case East:
		return 270
	case West:
		return 90
	case North:
		return 180
	case South:
		return 0
	}
	return 0
}

// Vec3 is a world-space position or offset.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// RotateYaw rotates v around the Z axis by deg degrees.
func (v Vec3) RotateYaw(deg float64) Vec3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Transform is a placed instance pose: world position plus yaw in degrees.
type Transform struct {
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
}

// Compose applies a local transform on top of t, rotating the local offset
// into t's frame. Used for socket-based layer stacking.
func (t Transform) Compose(local Transform) Transform {
	return Transform{
		Position: t.Position.Add(local.Position.RotateYaw(t.Yaw)),
		Yaw:      t.Yaw + local.Yaw,
	}
}
