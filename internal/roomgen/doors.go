package roomgen

import (
	"log"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// maxDoorPlacementAttempts bounds the reject-and-retry loop when fitting a
// procedural door into an edge's gaps.
const maxDoorPlacementAttempts = 10

// edgeSpan is the interior-cell range of an edge along its axis: H cells
// for North/South, W cells for East/West.
func edgeSpan(size style.Size, edge grid.Edge) int {
	switch edge {
	case grid.North, grid.South:
		return size.H
	default:
		return size.W
	}
}

// doorGap is a maximal run of interior edge cells with no door.
type doorGap struct {
	Start  int
	Length int
}

// doorGaps computes the gaps between the doors currently fixed on an edge.
// Procedural doors appended earlier shrink the gaps for later ones.
func doorGaps(size style.Size, edge grid.Edge, doors []style.FixedDoor) []doorGap {
	span := edgeSpan(size, edge)
	taken := make([]bool, span)
	for _, door := range doors {
		if door.Edge != edge {
			continue
		}
		footprint := door.Style.Footprint
		if footprint < 1 {
			footprint = 1
		}
		for i := 0; i < footprint; i++ {
			idx := door.StartCell + i
			if idx >= 0 && idx < span {
				taken[idx] = true
			}
		}
	}

	var gaps []doorGap
	start := -1
	for i := 0; i < span; i++ {
		if !taken[i] {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			gaps = append(gaps, doorGap{Start: start, Length: i - start})
			start = -1
		}
	}
	if start != -1 {
		gaps = append(gaps, doorGap{Start: start, Length: span - start})
	}
	return gaps
}

// placeProceduralDoors decides target edges, then for each edge tries to
// fit a weighted door style into a uniformly chosen gap, with a bounded
// number of retries. Successful doors join the fixed-door list and behave
// exactly like designer-authored ones from then on.
func placeProceduralDoors(ctx *passContext, stream *Stream, doors []style.FixedDoor) []style.FixedDoor {
	cfg := ctx.def.ProceduralDoors
	if !cfg.Enabled {
		return doors
	}
	if len(ctx.def.DoorPool) == 0 {
		log.Printf("roomgen: procedural doors enabled but door pool is empty")
		return doors
	}

	var targets []grid.Edge
	if len(cfg.RequiredEdges) > 0 {
		targets = cfg.RequiredEdges
	} else {
		count := stream.IntRange(cfg.Min, cfg.Max)
		if count > 4 {
			count = 4
		}
		edges := []grid.Edge{grid.North, grid.South, grid.East, grid.West}
		stream.Shuffle(len(edges), func(i, j int) {
			edges[i], edges[j] = edges[j], edges[i]
		})
		targets = edges[:count]
	}

	weight := func(d style.DoorStyle) float64 { return d.Weight }
	for _, edge := range targets {
		placed := false
		for attempt := 0; attempt < maxDoorPlacementAttempts; attempt++ {
			gaps := doorGaps(ctx.def.Grid, edge, doors)
			if len(gaps) == 0 {
				break
			}
			gap := gaps[stream.IntRange(0, len(gaps)-1)]

			doorStyle, ok := SelectWeighted(ctx.def.DoorPool, weight, stream)
			if !ok {
				break
			}
			footprint := doorStyle.Footprint
			if footprint < 1 {
				footprint = 1
			}
			if footprint > gap.Length {
				continue
			}

			offset := stream.IntRange(0, gap.Length-footprint)
			doors = append(doors, style.FixedDoor{
				Edge:      edge,
				StartCell: gap.Start + offset,
				Style:     doorStyle,
			})
			placed = true
			break
		}
		if !placed {
			log.Printf("roomgen: no procedural door fits on %s edge, skipping", edge)
		}
	}
	return doors
}

// doorPosition computes a door frame's world position from the interior
// edge cells, so doors stay snapped to the floor boundary regardless of
// wall pivot offsets. along is in cell units measured along the edge.
func doorPosition(size style.Size, edge grid.Edge, along float64) grid.Vec3 {
	const half = grid.CellSize / 2
	switch edge {
	case grid.North: // last interior column
		return grid.Vec3{X: float64(size.W-1)*grid.CellSize + half, Y: along * grid.CellSize}
	case grid.South: // first interior column
		return grid.Vec3{X: half, Y: along * grid.CellSize}
	case grid.East: // last interior row
		return grid.Vec3{X: along * grid.CellSize, Y: float64(size.H-1)*grid.CellSize + half}
	default: // West, first interior row
		return grid.Vec3{X: along * grid.CellSize, Y: half}
	}
}

// placeDoorFrame places one instance of the complete frame mesh centered
// on the door's span, applying the style rotation offset plus the per-door
// and room-wide position offsets.
func placeDoorFrame(ctx *passContext, edge grid.Edge, door style.FixedDoor) {
	mesh, ok := ctx.resolver.Resolve(door.Style.FrameMesh)
	if !ok {
		log.Printf("roomgen: door frame mesh %q unavailable on %s edge, cells still reserved",
			door.Style.FrameMesh, edge)
		return
	}

	footprint := door.Style.Footprint
	if footprint < 1 {
		footprint = 1
	}
	center := float64(door.StartCell) + float64(footprint)/2

	position := doorPosition(ctx.def.Grid, edge, center).
		Add(door.Offsets.FramePositionOffset).
		Add(ctx.def.DoorPositionOffset)

	ctx.place(KindDoor, mesh, grid.Transform{
		Position: position,
		Yaw:      edge.WallYaw() + door.Style.RotationOffset,
	})
}
