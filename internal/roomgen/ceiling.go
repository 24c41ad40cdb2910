package roomgen

import (
	"log"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// largeTileSpan is the stride of the first ceiling pass: large tiles cover
// a 4x4 cell block.
const largeTileSpan = 4

// ceilingSeedOffset decorrelates the small-tile stream from the large-tile
// stream while both stay reproducible from the generation seed.
const ceilingSeedOffset = 1000

// generateCeiling tiles the ceiling plane independently of the floor/wall
// state: large 4x4 tiles on a fixed stride first, then small 1x1 tiles in
// every remaining cell, on a private occupancy bitmap.
func (g *Generator) generateCeiling(ctx *passContext) {
	ceiling := ctx.def.Ceiling
	if ceiling == nil {
		log.Printf("roomgen: room %q has no ceiling style, skipping ceiling generation", ctx.def.Name)
		return
	}

	width, height := ctx.def.Grid.W, ctx.def.Grid.H
	covered := make([]bool, width*height)
	weight := func(t style.CeilingTile) float64 { return t.Weight }

	markBlock := func(x, y, span int) {
		for dy := 0; dy < span; dy++ {
			for dx := 0; dx < span; dx++ {
				covered[(y+dy)*width+(x+dx)] = true
			}
		}
	}

	largeStream := NewStream(ctx.def.Seed)
	for y := 0; y+largeTileSpan <= height; y += largeTileSpan {
		for x := 0; x+largeTileSpan <= width; x += largeTileSpan {
			free := true
			for dy := 0; dy < largeTileSpan && free; dy++ {
				for dx := 0; dx < largeTileSpan; dx++ {
					if covered[(y+dy)*width+(x+dx)] {
						free = false
						break
					}
				}
			}
			if !free {
				continue
			}

			tile, ok := SelectWeighted(ceiling.LargeTiles, weight, largeStream)
			if !ok {
				continue
			}
			mesh, ok := ctx.resolver.Resolve(tile.Mesh)
			if !ok {
				continue
			}
			center := grid.Vec3{
				X: (float64(x) + largeTileSpan/2.0) * grid.CellSize,
				Y: (float64(y) + largeTileSpan/2.0) * grid.CellSize,
				Z: ceiling.Height,
			}
			ctx.place(KindCeiling, mesh, grid.Transform{Position: center, Yaw: ceiling.Rotation})
			markBlock(x, y, largeTileSpan)
		}
	}

	smallStream := NewStream(ctx.def.Seed + ceilingSeedOffset)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if covered[y*width+x] {
				continue
			}
			tile, ok := SelectWeighted(ceiling.SmallTiles, weight, smallStream)
			if !ok {
				continue
			}
			mesh, ok := ctx.resolver.Resolve(tile.Mesh)
			if !ok {
				continue
			}
			center := grid.Vec3{
				X: (float64(x) + 0.5) * grid.CellSize,
				Y: (float64(y) + 0.5) * grid.CellSize,
				Z: ceiling.Height,
			}
			ctx.place(KindCeiling, mesh, grid.Transform{Position: center, Yaw: ceiling.Rotation})
			covered[y*width+x] = true
		}
	}
}
