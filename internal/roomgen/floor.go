package roomgen

import (
	"log"

	"github.com/gridforge/roomgen/internal/grid"
)

// fillFloor places the default 1x1 filler tile, unrotated, in every cell
// the weighted pass left empty. Afterwards no interior cell is empty:
// everything outside the carved set is floor.
func fillFloor(ctx *passContext) {
	filler, ok := ctx.resolver.Resolve(ctx.def.Floor.FillerTile)
	if !ok {
		log.Printf("roomgen: filler tile %q unavailable, gaps stay empty", ctx.def.Floor.FillerTile)
		return
	}

	for y := 0; y < ctx.def.Grid.H; y++ {
		for x := 0; x < ctx.def.Grid.W; x++ {
			c := grid.Cell{X: x, Y: y}
			if ctx.occ.At(c) != grid.CellEmpty {
				continue
			}
			center := grid.Vec3{
				X: (float64(x) + 0.5) * grid.CellSize,
				Y: (float64(y) + 0.5) * grid.CellSize,
			}
			ctx.place(KindFloor, filler, grid.Transform{Position: center})
			ctx.occ.Set(c, grid.CellFloorMesh)
		}
	}
}
