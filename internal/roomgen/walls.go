package roomgen

import (
	"log"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// WallSegmentRecord tracks one placed base wall module so the layer stacker
// can put middle/top meshes on it. Records live for one pass only.
type WallSegmentRecord struct {
	Edge          grid.Edge
	StartCell     int
	Length        int
	BaseTransform grid.Transform
	BaseMesh      *Mesh
	Module        style.WallModule

	// Highest layer placed so far; the stacker advances these.
	topMesh      *Mesh
	topTransform grid.Transform
}

// edgeCells returns the virtual boundary cells for an edge, one cell
// outside the interior, in edge-index order. Wall meshes are centered on
// these; doors use the interior cells instead.
func edgeCells(size style.Size, edge grid.Edge) []grid.Cell {
	var cells []grid.Cell
	switch edge {
	case grid.North: // +X boundary
		for y := 0; y < size.H; y++ {
			cells = append(cells, grid.Cell{X: size.W, Y: y})
		}
	case grid.South: // -X boundary
		for y := 0; y < size.H; y++ {
			cells = append(cells, grid.Cell{X: -1, Y: y})
		}
	case grid.East: // +Y boundary
		for x := 0; x < size.W; x++ {
			cells = append(cells, grid.Cell{X: x, Y: size.H})
		}
	case grid.West: // -Y boundary
		for x := 0; x < size.W; x++ {
			cells = append(cells, grid.Cell{X: x, Y: -1})
		}
	}
	return cells
}

// wallPositionNorthSouth computes the pivot position for a wall module on
// the North or South edge. meshLength is the module's world length along
// the edge. The per-style offsets correct for mesh pivot differences.
func wallPositionNorthSouth(wall *style.WallStyle, cell grid.Cell, meshLength float64, isNorth bool) grid.Vec3 {
	base := grid.Vec3{
		X: float64(cell.X) * grid.CellSize,
		Y: float64(cell.Y) * grid.CellSize,
	}
	half := meshLength / 2
	if isNorth {
		// X = gridWidth: already at the boundary.
		return base.Add(grid.Vec3{X: wall.NorthOffsetX, Y: half})
	}
	// X = -1: one cell before the boundary.
	return base.Add(grid.Vec3{X: grid.CellSize + wall.SouthOffsetX, Y: half})
}

// wallPositionEastWest is the mirrored case along the secondary axis.
func wallPositionEastWest(wall *style.WallStyle, cell grid.Cell, meshLength float64, isEast bool) grid.Vec3 {
	base := grid.Vec3{
		X: float64(cell.X) * grid.CellSize,
		Y: float64(cell.Y) * grid.CellSize,
	}
	half := meshLength / 2
	if isEast {
		return base.Add(grid.Vec3{X: half, Y: wall.EastOffsetY})
	}
	return base.Add(grid.Vec3{X: half, Y: grid.CellSize + wall.WestOffsetY})
}

func wallModulePosition(wall *style.WallStyle, edge grid.Edge, cell grid.Cell, meshLength float64) grid.Vec3 {
	switch edge {
	case grid.North, grid.South:
		return wallPositionNorthSouth(wall, cell, meshLength, edge == grid.North)
	default:
		return wallPositionEastWest(wall, cell, meshLength, edge == grid.East)
	}
}

// placeWallModule places one module's base mesh at an edge position, marks
// its boundary cells, and records the segment for layer stacking.
func placeWallModule(ctx *passContext, edge grid.Edge, cells []grid.Cell, start int, module style.WallModule) bool {
	mesh, ok := ctx.resolver.Resolve(module.Base)
	if !ok {
		log.Printf("roomgen: wall base mesh %q unavailable on %s edge", module.Base, edge)
		return false
	}

	length := float64(module.Footprint) * grid.CellSize
	t := grid.Transform{
		Position: wallModulePosition(ctx.def.Wall, edge, cells[start], length),
		Yaw:      edge.WallYaw(),
	}
	ctx.place(KindWall, mesh, t)

	for i := 0; i < module.Footprint && start+i < len(cells); i++ {
		ctx.occ.SetBoundary(cells[start+i], grid.BoundaryWall)
	}

	ctx.wallRecords = append(ctx.wallRecords, &WallSegmentRecord{
		Edge:          edge,
		StartCell:     start,
		Length:        module.Footprint,
		BaseTransform: t,
		BaseMesh:      mesh,
		Module:        module,
		topMesh:       mesh,
		topTransform:  t,
	})
	return true
}

// placeForcedWalls applies designer-pinned wall modules before procedural
// doors and random fill. Invalid or colliding entries are skipped with a
// diagnostic.
func placeForcedWalls(ctx *passContext) {
	for _, forced := range ctx.def.ForcedWalls {
		cells := edgeCells(ctx.def.Grid, forced.Edge)
		if forced.StartCell < 0 || forced.StartCell+forced.Module.Footprint > len(cells) {
			log.Printf("roomgen: forced wall on %s edge at %d (len %d) out of range, skipping",
				forced.Edge, forced.StartCell, forced.Module.Footprint)
			continue
		}

		collides := false
		for i := 0; i < forced.Module.Footprint; i++ {
			if _, taken := ctx.occ.BoundaryAt(cells[forced.StartCell+i]); taken {
				collides = true
				break
			}
		}
		if collides {
			log.Printf("roomgen: forced wall on %s edge at %d overlaps existing boundary content, skipping",
				forced.Edge, forced.StartCell)
			continue
		}

		placeWallModule(ctx, forced.Edge, cells, forced.StartCell, forced.Module)
	}
}

// planEdges runs the per-edge pipeline in the fixed edge order: door frame
// placement and occupancy marking, then segment scanning and bin packing of
// wall modules into every door-free run.
func planEdges(ctx *passContext, doors []style.FixedDoor) {
	for _, edge := range grid.EdgeOrder {
		cells := edgeCells(ctx.def.Grid, edge)
		if len(cells) == 0 {
			continue
		}

		occupied := make([]bool, len(cells))
		for i, c := range cells {
			if _, taken := ctx.occ.BoundaryAt(c); taken {
				occupied[i] = true
			}
		}

		for _, door := range doors {
			if door.Edge != edge {
				continue
			}
			placeDoorFrame(ctx, edge, door)
			footprint := door.Style.Footprint
			if footprint < 1 {
				footprint = 1
			}
			for i := 0; i < footprint && door.StartCell+i < len(cells); i++ {
				idx := door.StartCell + i
				if idx < 0 {
					continue
				}
				occupied[idx] = true
				ctx.occ.SetBoundary(cells[idx], grid.BoundaryDoorway)
			}
		}

		// Maximal runs of unoccupied cells become wall segments.
		segmentStart := -1
		for i := 0; i < len(occupied); i++ {
			if !occupied[i] {
				if segmentStart == -1 {
					segmentStart = i
				}
				continue
			}
			if segmentStart != -1 {
				fillWallSegment(ctx, edge, cells, segmentStart, i-segmentStart)
				segmentStart = -1
			}
		}
		if segmentStart != -1 {
			fillWallSegment(ctx, edge, cells, segmentStart, len(occupied)-segmentStart)
		}
	}
}

// fillWallSegment greedily packs wall modules into a segment: repeatedly
// the largest module that fits the remainder, ties broken by pool order.
// A remainder smaller than the smallest module is left unfilled.
func fillWallSegment(ctx *passContext, edge grid.Edge, cells []grid.Cell, segmentStart, segmentLength int) {
	modules := ctx.def.Wall.Modules
	if len(modules) == 0 {
		return
	}

	remaining := segmentLength
	cursor := segmentStart
	for remaining > 0 {
		var best *style.WallModule
		for i := range modules {
			m := &modules[i]
			if m.Footprint <= remaining && (best == nil || m.Footprint > best.Footprint) {
				best = m
			}
		}
		if best == nil {
			break
		}
		if !placeWallModule(ctx, edge, cells, cursor, *best) {
			break
		}
		remaining -= best.Footprint
		cursor += best.Footprint
	}
}
