package roomgen

import (
	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// testResolver returns a catalog-backed resolver with the meshes the tests
// reference. wall_base_socketed carries a StackTop socket; wall_base_plain
// relies on the bounding-box fallback.
func testResolver() *CatalogResolver {
	return NewCatalogResolver(&style.MeshCatalog{Meshes: []style.MeshInfo{
		{Name: "tile_1x1", Bounds: grid.Vec3{X: 100, Y: 100, Z: 10}},
		{Name: "tile_2x1", Bounds: grid.Vec3{X: 200, Y: 100, Z: 10}},
		{Name: "crate_2x2", Bounds: grid.Vec3{X: 200, Y: 200, Z: 120}},
		{Name: "filler", Bounds: grid.Vec3{X: 100, Y: 100, Z: 10}},
		{
			Name:   "wall_base_socketed",
			Bounds: grid.Vec3{X: 100, Y: 20, Z: 200},
			Sockets: []style.Socket{
				{Name: StackSocketName, Offset: grid.Vec3{Z: 250}},
			},
		},
		{Name: "wall_base_plain", Bounds: grid.Vec3{X: 100, Y: 20, Z: 200}},
		{Name: "wall_base_wide", Bounds: grid.Vec3{X: 300, Y: 20, Z: 200}},
		{Name: "wall_mid", Bounds: grid.Vec3{X: 100, Y: 20, Z: 100}},
		{Name: "wall_mid_2", Bounds: grid.Vec3{X: 100, Y: 20, Z: 100}},
		{Name: "wall_top", Bounds: grid.Vec3{X: 100, Y: 20, Z: 50}},
		{Name: "wall_corner", Bounds: grid.Vec3{X: 20, Y: 20, Z: 400}},
		{Name: "door_frame", Bounds: grid.Vec3{X: 200, Y: 30, Z: 250}},
		{Name: "ceil_large", Bounds: grid.Vec3{X: 400, Y: 400, Z: 10}},
		{Name: "ceil_small", Bounds: grid.Vec3{X: 100, Y: 100, Z: 10}},
	}})
}

func plainFloor() *style.FloorStyle {
	return &style.FloorStyle{
		TilePool:   []style.MeshPlacement{{Mesh: "tile_1x1", Footprint: style.Size{W: 1, H: 1}, Weight: 1, AllowedRotations: []float64{0}}},
		FillerTile: "filler",
	}
}

func singleModuleWall(base style.MeshRef, footprint int) *style.WallStyle {
	return &style.WallStyle{
		Modules: []style.WallModule{{Footprint: footprint, Base: base, Weight: 1}},
	}
}

// newTestContext builds a fresh passContext for driving individual stages
// directly.
func newTestContext(def *style.RoomDefinition) *passContext {
	return &passContext{
		def:       def,
		resolver:  testResolver(),
		occ:       grid.NewOccupancy(def.Grid.W, def.Grid.H),
		instances: make(map[style.MeshRef][]grid.Transform),
	}
}

// placementsOf filters a result's ordered placements by kind.
func placementsOf(res *Result, kind PlacementKind) []Placement {
	var out []Placement
	for _, p := range res.Placements {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// countMesh counts placed instances of one mesh.
func countMesh(res *Result, ref style.MeshRef) int {
	return len(res.Instances[ref])
}
