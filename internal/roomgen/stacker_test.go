package roomgen

import (
	"testing"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

func TestStackTransform_SocketBeatsBounds(t *testing.T) {
	r := testResolver()
	base := grid.Transform{Position: grid.Vec3{X: 100, Y: 50}, Yaw: 90}

	socketed, _ := r.Resolve("wall_base_socketed")
	got := stackTransform(socketed, base)
	if got.Position.Z != 250 || got.Position.X != 100 || got.Position.Y != 50 || got.Yaw != 90 {
		t.Fatalf("socket stack = %+v, want Z 250 above the base", got)
	}

	plain, _ := r.Resolve("wall_base_plain")
	got = stackTransform(plain, base)
	if got.Position.Z != 200 {
		t.Fatalf("bounds fallback must lift by the mesh height, got Z %v", got.Position.Z)
	}
}

func fullStackDef(module style.WallModule) (*style.RoomDefinition, *passContext) {
	def := &style.RoomDefinition{
		Grid: style.Size{W: 4, H: 4},
		Wall: &style.WallStyle{Modules: []style.WallModule{module}},
	}
	ctx := newTestContext(def)
	cells := edgeCells(def.Grid, grid.North)
	placeWallModule(ctx, grid.North, cells, 0, module)
	return def, ctx
}

func TestSpawnLayers_FullStackHeights(t *testing.T) {
	_, ctx := fullStackDef(style.WallModule{
		Footprint: 1,
		Base:      "wall_base_socketed",
		Middle1:   "wall_mid",
		Middle2:   "wall_mid_2",
		Top:       "wall_top",
		Weight:    1,
	})

	spawnMiddleLayers(ctx)
	spawnTopLayers(ctx)

	// Base, middle1, middle2, top.
	if len(ctx.placements) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(ctx.placements))
	}
	wantZ := []float64{0, 250, 350, 450}
	for i, p := range ctx.placements {
		if p.Transform.Position.Z != wantZ[i] {
			t.Errorf("layer %d (%s) Z = %v, want %v", i, p.Mesh, p.Transform.Position.Z, wantZ[i])
		}
		if p.Transform.Yaw != ctx.placements[0].Transform.Yaw {
			t.Errorf("layer %d yaw drifted from the base yaw", i)
		}
	}
}

func TestSpawnMiddleLayers_SecondRequiresFirst(t *testing.T) {
	_, ctx := fullStackDef(style.WallModule{
		Footprint: 1,
		Base:      "wall_base_socketed",
		Middle2:   "wall_mid_2",
		Top:       "wall_top",
		Weight:    1,
	})

	spawnMiddleLayers(ctx)
	spawnTopLayers(ctx)

	if got := countInstances(ctx, "wall_mid_2"); got != 0 {
		t.Fatalf("middle2 without middle1 must not spawn, got %d", got)
	}
	// Top stacks directly onto the base socket.
	tops := ctx.instances["wall_top"]
	if len(tops) != 1 || tops[0].Position.Z != 250 {
		t.Fatalf("top layers = %+v, want one at Z 250", tops)
	}
}

func TestSpawnMiddleLayers_UnresolvedMiddleSkipsChain(t *testing.T) {
	_, ctx := fullStackDef(style.WallModule{
		Footprint: 1,
		Base:      "wall_base_socketed",
		Middle1:   "no_such_mid",
		Middle2:   "wall_mid_2",
		Top:       "wall_top",
		Weight:    1,
	})

	spawnMiddleLayers(ctx)
	spawnTopLayers(ctx)

	if got := countInstances(ctx, "wall_mid_2"); got != 0 {
		t.Fatalf("middle2 must not spawn when middle1 fails, got %d", got)
	}
	tops := ctx.instances["wall_top"]
	if len(tops) != 1 || tops[0].Position.Z != 250 {
		t.Fatalf("top must stack on the highest placed layer, got %+v", tops)
	}
}

func TestSpawnLayers_EveryBaseSegmentGetsItsStack(t *testing.T) {
	module := style.WallModule{
		Footprint: 2,
		Base:      "wall_base_plain",
		Middle1:   "wall_mid",
		Top:       "wall_top",
		Weight:    1,
	}
	def := &style.RoomDefinition{
		Grid: style.Size{W: 4, H: 4},
		Wall: &style.WallStyle{Modules: []style.WallModule{module}},
	}
	ctx := newTestContext(def)
	planEdges(ctx, nil)
	spawnMiddleLayers(ctx)
	spawnTopLayers(ctx)

	// 4 edges, 2 segments each: 8 bases, 8 middles, 8 tops.
	if got := countInstances(ctx, "wall_base_plain"); got != 8 {
		t.Fatalf("base count = %d, want 8", got)
	}
	if got := countInstances(ctx, "wall_mid"); got != 8 {
		t.Fatalf("middle count = %d, want 8", got)
	}
	if got := countInstances(ctx, "wall_top"); got != 8 {
		t.Fatalf("top count = %d, want 8", got)
	}
	// Bounds stacking: middles at Z 200, tops at Z 300.
	for _, m := range ctx.instances["wall_mid"] {
		if m.Position.Z != 200 {
			t.Fatalf("middle at Z %v, want 200", m.Position.Z)
		}
	}
	for _, top := range ctx.instances["wall_top"] {
		if top.Position.Z != 300 {
			t.Fatalf("top at Z %v, want 300", top.Position.Z)
		}
	}
}
