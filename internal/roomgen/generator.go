package roomgen

import (
	"log"

	"github.com/zyedidia/generic/mapset"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// PlacementKind labels what a placed instance is, for snapshots and viewers.
type PlacementKind string

const (
	KindFloor    PlacementKind = "floor"
	KindInterior PlacementKind = "interior"
	KindWall     PlacementKind = "wall"
	KindDoor     PlacementKind = "door"
	KindCorner   PlacementKind = "corner"
	KindCeiling  PlacementKind = "ceiling"
)

// Placement is one placed mesh instance, in generation order.
type Placement struct {
	Mesh      style.MeshRef
	Kind      PlacementKind
	Transform grid.Transform
}

// Result is the output of one generation pass: the ordered placement list,
// the per-mesh instance transforms for the rendering collaborator, and the
// final occupancy snapshot.
type Result struct {
	Width, Height int
	Seed          int64
	Occupancy     *grid.Occupancy
	Placements    []Placement
	Instances     map[style.MeshRef][]grid.Transform
	ForcedEmpty   mapset.Set[grid.Cell]
}

// Generator turns a room definition plus a mesh catalog into placements.
// It holds no mutable state between passes; every Generate call builds a
// fresh context, so regeneration is a full restart.
type Generator struct {
	def      *style.RoomDefinition
	resolver MeshResolver
}

func New(def *style.RoomDefinition, resolver MeshResolver) *Generator {
	return &Generator{def: def, resolver: resolver}
}

// passContext is the generation-scoped mutable state threaded through every
// stage of one pass. Stages run strictly in sequence; there is no
// concurrent access.
type passContext struct {
	def         *style.RoomDefinition
	resolver    MeshResolver
	occ         *grid.Occupancy
	forcedEmpty mapset.Set[grid.Cell]
	placements  []Placement
	instances   map[style.MeshRef][]grid.Transform
	wallRecords []*WallSegmentRecord
}

func (ctx *passContext) place(kind PlacementKind, mesh *Mesh, t grid.Transform) {
	ctx.placements = append(ctx.placements, Placement{Mesh: mesh.Ref, Kind: kind, Transform: t})
	ctx.instances[mesh.Ref] = append(ctx.instances[mesh.Ref], t)
}

// Generate runs the whole pipeline: carve, interior, floor fill, walls and
// doors, layer stacking, corners, ceiling. Callers must serialize calls for
// a given room; there is no mid-pass abort.
func (g *Generator) Generate() *Result {
	if g.def == nil || g.def.Grid.W <= 0 || g.def.Grid.H <= 0 {
		log.Printf("roomgen: no room configuration, generation is a no-op")
		return &Result{
			Occupancy:   grid.NewOccupancy(0, 0),
			Instances:   map[style.MeshRef][]grid.Transform{},
			ForcedEmpty: mapset.New[grid.Cell](),
		}
	}

	def := g.def
	ctx := &passContext{
		def:         def,
		resolver:    g.resolver,
		occ:         grid.NewOccupancy(def.Grid.W, def.Grid.H),
		forcedEmpty: expandForcedEmpty(def),
		instances:   make(map[style.MeshRef][]grid.Transform),
	}

	// Reserve carved cells before any placement pass so forced and weighted
	// placements treat them like occupied cells.
	ctx.forcedEmpty.Each(func(c grid.Cell) {
		if ctx.occ.At(c) == grid.CellEmpty {
			ctx.occ.Set(c, grid.CellWallBoundary)
		}
	})

	g.generateFloorAndInterior(ctx)
	g.generateWallsAndDoors(ctx)
	g.generateCeiling(ctx)

	return &Result{
		Width:       def.Grid.W,
		Height:      def.Grid.H,
		Seed:        def.Seed,
		Occupancy:   ctx.occ,
		Placements:  ctx.placements,
		Instances:   ctx.instances,
		ForcedEmpty: ctx.forcedEmpty,
	}
}

func (g *Generator) generateFloorAndInterior(ctx *passContext) {
	if ctx.def.Floor == nil {
		log.Printf("roomgen: room %q has no floor style, skipping floor generation", ctx.def.Name)
		return
	}

	stream := NewStream(ctx.def.Seed)
	placeForcedInterior(ctx, stream)
	placeWeightedInterior(ctx, stream)
	fillFloor(ctx)
}

func (g *Generator) generateWallsAndDoors(ctx *passContext) {
	if ctx.def.Wall == nil {
		log.Printf("roomgen: room %q has no wall style, skipping wall generation", ctx.def.Name)
		return
	}

	stream := NewStream(ctx.def.Seed)
	placeForcedWalls(ctx)

	doors := make([]style.FixedDoor, len(ctx.def.FixedDoors))
	copy(doors, ctx.def.FixedDoors)
	doors = placeProceduralDoors(ctx, stream, doors)

	planEdges(ctx, doors)
	spawnMiddleLayers(ctx)
	spawnTopLayers(ctx)
	spawnCorners(ctx)
}
