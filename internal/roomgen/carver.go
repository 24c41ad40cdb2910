package roomgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// expandForcedEmpty turns the shape preset plus the manual forced-empty
// regions and cells into one deduplicated cell set, clamped to the grid.
func expandForcedEmpty(def *style.RoomDefinition) mapset.Set[grid.Cell] {
	cells := mapset.New[grid.Cell]()

	if def.ShapePreset != nil {
		for _, region := range def.ShapePreset.EmptyRegions {
			addRegionCells(cells, region, def.Grid)
		}
		addListedCells(cells, def.ShapePreset.EmptyCells, def.Grid)
	}
	for _, region := range def.ForcedEmptyRegions {
		addRegionCells(cells, region, def.Grid)
	}
	addListedCells(cells, def.ForcedEmptyCells, def.Grid)

	return cells
}

// addRegionCells enumerates the inclusive rectangle between the region's
// two corners, in either order, clamping both bounds into the grid.
func addRegionCells(cells mapset.Set[grid.Cell], region style.ForcedEmptyRegion, size style.Size) {
	minX := clampInt(min(region.Start.X, region.End.X), 0, size.W-1)
	maxX := clampInt(max(region.Start.X, region.End.X), 0, size.W-1)
	minY := clampInt(min(region.Start.Y, region.End.Y), 0, size.H-1)
	maxY := clampInt(max(region.Start.Y, region.End.Y), 0, size.H-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cells.Put(grid.Cell{X: x, Y: y})
		}
	}
}

// addListedCells adds individual cells, dropping out-of-bounds entries.
func addListedCells(cells mapset.Set[grid.Cell], list []grid.Cell, size style.Size) {
	for _, c := range list {
		if c.X >= 0 && c.X < size.W && c.Y >= 0 && c.Y < size.H {
			cells.Put(c)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
