package roomgen

import (
	"log"
	"math"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

const rotationTolerance = 1e-4

// rotatedFootprint swaps the footprint axes when the yaw is 90 or 270
// degrees; other rotations keep the unrotated footprint.
func rotatedFootprint(fp style.Size, yaw float64) style.Size {
	if math.Abs(yaw-90) < rotationTolerance || math.Abs(yaw-270) < rotationTolerance {
		return style.Size{W: fp.H, H: fp.W}
	}
	return fp
}

// drawRotation picks a yaw uniformly from the placement's allowed set.
func drawRotation(p *style.MeshPlacement, stream *Stream) float64 {
	idx := stream.IntRange(0, len(p.AllowedRotations)-1)
	return p.AllowedRotations[idx]
}

// footprintFits reports whether the rotated footprint starting at origin
// stays inside the grid and covers only empty cells. Cells reserved by the
// carver count as occupied.
func footprintFits(ctx *passContext, origin grid.Cell, fp style.Size) bool {
	if origin.X < 0 || origin.Y < 0 ||
		origin.X+fp.W > ctx.def.Grid.W || origin.Y+fp.H > ctx.def.Grid.H {
		return false
	}
	for dy := 0; dy < fp.H; dy++ {
		for dx := 0; dx < fp.W; dx++ {
			if ctx.occ.At(grid.Cell{X: origin.X + dx, Y: origin.Y + dy}) != grid.CellEmpty {
				return false
			}
		}
	}
	return true
}

// commitInterior marks the footprint occupied and registers one instance at
// the footprint's center with the chosen yaw.
func commitInterior(ctx *passContext, kind PlacementKind, mesh *Mesh, origin grid.Cell, fp style.Size, yaw float64) {
	for dy := 0; dy < fp.H; dy++ {
		for dx := 0; dx < fp.W; dx++ {
			ctx.occ.Set(grid.Cell{X: origin.X + dx, Y: origin.Y + dy}, grid.CellFloorMesh)
		}
	}
	center := grid.Vec3{
		X: (float64(origin.X) + float64(fp.W)/2) * grid.CellSize,
		Y: (float64(origin.Y) + float64(fp.H)/2) * grid.CellSize,
	}
	ctx.place(kind, mesh, grid.Transform{Position: center, Yaw: yaw})
}

// placeForcedInterior applies designer-pinned interior placements in list
// order. Failures are skipped with a diagnostic, never fatal.
func placeForcedInterior(ctx *passContext, stream *Stream) {
	for i := range ctx.def.ForcedInterior {
		forced := &ctx.def.ForcedInterior[i]
		pick := &forced.Placement

		mesh, ok := ctx.resolver.Resolve(pick.Mesh)
		if !ok {
			log.Printf("roomgen: forced placement at (%d,%d): mesh %q unavailable, skipping",
				forced.Cell.X, forced.Cell.Y, pick.Mesh)
			continue
		}

		yaw := drawRotation(pick, stream)
		fp := rotatedFootprint(pick.Footprint, yaw)

		if !footprintFits(ctx, forced.Cell, fp) {
			log.Printf("roomgen: forced placement at (%d,%d) rejected (out of bounds or overlap)",
				forced.Cell.X, forced.Cell.Y)
			continue
		}
		commitInterior(ctx, KindInterior, mesh, forced.Cell, fp, yaw)
	}
}

// placeWeightedInterior scans the grid in raster order and fills each still
// empty cell with a weighted pick from the floor tile pool. Cells whose
// pick does not fit stay empty for the filler pass.
func placeWeightedInterior(ctx *passContext, stream *Stream) {
	pool := ctx.def.Floor.TilePool
	weight := func(p style.MeshPlacement) float64 { return p.Weight }

	for y := 0; y < ctx.def.Grid.H; y++ {
		for x := 0; x < ctx.def.Grid.W; x++ {
			origin := grid.Cell{X: x, Y: y}
			if ctx.occ.At(origin) != grid.CellEmpty {
				continue
			}

			pick, ok := SelectWeighted(pool, weight, stream)
			if !ok {
				continue
			}
			mesh, ok := ctx.resolver.Resolve(pick.Mesh)
			if !ok {
				continue
			}

			yaw := drawRotation(&pick, stream)
			fp := rotatedFootprint(pick.Footprint, yaw)

			if !footprintFits(ctx, origin, fp) {
				continue
			}
			commitInterior(ctx, KindFloor, mesh, origin, fp, yaw)
		}
	}
}
