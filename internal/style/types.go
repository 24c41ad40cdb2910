package style

import "github.com/gridforge/roomgen/internal/grid"

// MeshRef names a mesh in the catalog. Resolution may fail at generation
// time; callers treat that as "skip this placement".
type MeshRef string

// Size is a footprint in grid cells.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// MeshPlacement describes one candidate floor/interior mesh: its footprint
// in the unrotated frame, its selection weight, and the yaw rotations it may
// be placed with. A 90 or 270 degree rotation swaps the footprint axes.
type MeshPlacement struct {
	Mesh             MeshRef   `json:"mesh"`
	Footprint        Size      `json:"footprint"`
	Weight           float64   `json:"weight"`
	AllowedRotations []float64 `json:"allowedRotations,omitempty"`
}

// WallModule is one stackable wall piece: the base mesh plus optional
// middle/top layers. Middle2 is only used when Middle1 is set.
type WallModule struct {
	Footprint int     `json:"footprint"` // cells along the edge
	Base      MeshRef `json:"base"`
	Middle1   MeshRef `json:"middle1,omitempty"`
	Middle2   MeshRef `json:"middle2,omitempty"`
	Top       MeshRef `json:"top,omitempty"`
	Weight    float64 `json:"weight"`
}

// WallStyle is the room's wall module pool plus the per-edge pivot offset
// constants that align wall meshes with the floor boundary.
type WallStyle struct {
	Modules    []WallModule `json:"modules"`
	CornerMesh MeshRef      `json:"cornerMesh,omitempty"`
	WallHeight float64      `json:"wallHeight"`

	// Positive values move walls outward, negative inward. These are mesh
	// pivot corrections, not computed by the planner.
	NorthOffsetX float64 `json:"northOffsetX"`
	SouthOffsetX float64 `json:"southOffsetX"`
	EastOffsetY  float64 `json:"eastOffsetY"`
	WestOffsetY  float64 `json:"westOffsetY"`
}

// FloorStyle is the weighted floor tile pool plus the guaranteed 1x1 filler.
type FloorStyle struct {
	TilePool   []MeshPlacement `json:"tilePool"`
	FillerTile MeshRef         `json:"fillerTile"`
}

// DoorOffsets fine-tunes one door's frame and functional actor positions.
type DoorOffsets struct {
	FramePositionOffset grid.Vec3 `json:"framePositionOffset"`
	ActorPositionOffset grid.Vec3 `json:"actorPositionOffset"`
}

// DoorStyle describes one door variant: its frame mesh, the cells it spans
// along the edge, and a rotation correction for the frame mesh import.
type DoorStyle struct {
	FrameMesh      MeshRef `json:"frameMesh"`
	Footprint      int     `json:"footprint"`
	RotationOffset float64 `json:"rotationOffset"`
	Weight         float64 `json:"weight"`
}

// FixedDoor pins a door at an exact interior-cell position on an edge.
type FixedDoor struct {
	Edge      grid.Edge   `json:"edge"`
	StartCell int         `json:"startCell"`
	Style     DoorStyle   `json:"style"`
	Offsets   DoorOffsets `json:"offsets"`
}

// ForcedWall pins a specific wall module at an exact edge position, placed
// before procedural doors and random wall fill.
type ForcedWall struct {
	Edge      grid.Edge  `json:"edge"`
	StartCell int        `json:"startCell"`
	Module    WallModule `json:"module"`
}

// ForcedEmptyRegion is a rectangle of cells to keep free of floor/interior
// content. Corner order does not matter.
type ForcedEmptyRegion struct {
	Start grid.Cell `json:"start"`
	End   grid.Cell `json:"end"`
}

// ForcedPlacement pins an interior mesh at a cell. Entries are applied in
// list order, so reapplying the same definition yields the same layout.
type ForcedPlacement struct {
	Cell      grid.Cell     `json:"cell"`
	Placement MeshPlacement `json:"placement"`
}

// ProceduralDoors configures automatic door placement. When RequiredEdges is
// non-empty it overrides the Min/Max randomization: exactly one door per
// listed edge is attempted.
type ProceduralDoors struct {
	Enabled       bool        `json:"enabled"`
	Min           int         `json:"min"`
	Max           int         `json:"max"`
	RequiredEdges []grid.Edge `json:"requiredEdges,omitempty"`
}

// ShapePreset bundles reusable carve-out regions/cells (L-shapes, courtyards
// and so on) that merge with the room's manual overrides.
type ShapePreset struct {
	Name         string              `json:"name"`
	Shape        string              `json:"shape"`
	EmptyRegions []ForcedEmptyRegion `json:"emptyRegions,omitempty"`
	EmptyCells   []grid.Cell         `json:"emptyCells,omitempty"`
}

// CeilingTile is one ceiling tile candidate. Size is the square footprint in
// cells: 4 for the large 4x4 pass, 1 for the gap-filling pass.
type CeilingTile struct {
	Mesh   MeshRef `json:"mesh"`
	Size   int     `json:"size"`
	Weight float64 `json:"weight"`
}

// CeilingStyle holds the two tile pools plus the room-wide height and
// rotation applied to every ceiling tile.
type CeilingStyle struct {
	LargeTiles []CeilingTile `json:"largeTiles"`
	SmallTiles []CeilingTile `json:"smallTiles"`
	Height     float64       `json:"height"`
	Rotation   float64       `json:"rotation"`
}

// RoomDefinition is the full designer-authored input for one room: grid
// size, seed, style pools, and every override. Generation is a pure
// function of this plus the mesh catalog.
type RoomDefinition struct {
	Name string `json:"name"`
	Grid Size   `json:"grid"`
	Seed int64  `json:"seed"`

	Floor    *FloorStyle   `json:"floor,omitempty"`
	Wall     *WallStyle    `json:"wall,omitempty"`
	Ceiling  *CeilingStyle `json:"ceiling,omitempty"`
	DoorPool []DoorStyle   `json:"doorPool,omitempty"`

	ShapePreset        *ShapePreset        `json:"shapePreset,omitempty"`
	ForcedEmptyRegions []ForcedEmptyRegion `json:"forcedEmptyRegions,omitempty"`
	ForcedEmptyCells   []grid.Cell         `json:"forcedEmptyCells,omitempty"`
	ForcedInterior     []ForcedPlacement   `json:"forcedInterior,omitempty"`
	ForcedWalls        []ForcedWall        `json:"forcedWalls,omitempty"`
	FixedDoors         []FixedDoor         `json:"fixedDoors,omitempty"`
	ProceduralDoors    ProceduralDoors     `json:"proceduralDoors"`

	// Room-wide door position correction, applied on top of per-door offsets.
	DoorPositionOffset grid.Vec3 `json:"doorPositionOffset"`
}
