package roomgen

import (
	"github.com/gridforge/roomgen/internal/grid"
)

// spawnCorners places the style's corner mesh at the four grid corner
// points, each rotated to face into the room with the same pivot
// convention the wall edges use.
func spawnCorners(ctx *passContext) {
	mesh, ok := ctx.resolver.Resolve(ctx.def.Wall.CornerMesh)
	if !ok {
		return
	}

	w := float64(ctx.def.Grid.W) * grid.CellSize
	h := float64(ctx.def.Grid.H) * grid.CellSize

	corners := []grid.Transform{
		{Position: grid.Vec3{X: 0, Y: 0}, Yaw: 0},   // south-west
		{Position: grid.Vec3{X: w, Y: 0}, Yaw: 90},  // north-west
		{Position: grid.Vec3{X: w, Y: h}, Yaw: 180}, // north-east
		{Position: grid.Vec3{X: 0, Y: h}, Yaw: 270}, // south-east
	}
	for _, t := range corners {
		ctx.place(KindCorner, mesh, t)
	}
}
