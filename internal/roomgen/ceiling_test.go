package roomgen

import (
	"testing"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

func ceilingDef(w, h int, ceiling *style.CeilingStyle) *style.RoomDefinition {
	return &style.RoomDefinition{
		Name:    "ceiling-test",
		Grid:    style.Size{W: w, H: h},
		Seed:    21,
		Ceiling: ceiling,
	}
}

func runCeiling(def *style.RoomDefinition) *passContext {
	ctx := newTestContext(def)
	New(def, ctx.resolver).generateCeiling(ctx)
	return ctx
}

func TestGenerateCeiling_LargeTilesOnStride(t *testing.T) {
	def := ceilingDef(8, 8, &style.CeilingStyle{
		LargeTiles: []style.CeilingTile{{Mesh: "ceil_large", Size: 4, Weight: 1}},
		SmallTiles: []style.CeilingTile{{Mesh: "ceil_small", Size: 1, Weight: 1}},
		Height:     400,
		Rotation:   90,
	})
	ctx := runCeiling(def)

	if got := countInstances(ctx, "ceil_large"); got != 4 {
		t.Fatalf("8x8 grid fits 4 large tiles, got %d", got)
	}
	if got := countInstances(ctx, "ceil_small"); got != 0 {
		t.Fatalf("fully covered ceiling needs no small tiles, got %d", got)
	}

	wantCenters := map[grid.Vec3]bool{
		{X: 200, Y: 200, Z: 400}: true,
		{X: 600, Y: 200, Z: 400}: true,
		{X: 200, Y: 600, Z: 400}: true,
		{X: 600, Y: 600, Z: 400}: true,
	}
	for _, inst := range ctx.instances["ceil_large"] {
		if !wantCenters[inst.Position] {
			t.Errorf("unexpected large tile center %+v", inst.Position)
		}
		if inst.Yaw != 90 {
			t.Errorf("large tile yaw %v, want style rotation 90", inst.Yaw)
		}
		delete(wantCenters, inst.Position)
	}
	if len(wantCenters) != 0 {
		t.Errorf("missing large tile centers: %v", wantCenters)
	}
}

func TestGenerateCeiling_SmallTilesFillRemainder(t *testing.T) {
	def := ceilingDef(5, 5, &style.CeilingStyle{
		LargeTiles: []style.CeilingTile{{Mesh: "ceil_large", Size: 4, Weight: 1}},
		SmallTiles: []style.CeilingTile{{Mesh: "ceil_small", Size: 1, Weight: 1}},
		Height:     300,
	})
	ctx := runCeiling(def)

	if got := countInstances(ctx, "ceil_large"); got != 1 {
		t.Fatalf("5x5 grid fits one large tile, got %d", got)
	}
	// 25 cells minus the 16-cell block.
	if got := countInstances(ctx, "ceil_small"); got != 9 {
		t.Fatalf("small tiles must fill the 9 uncovered cells, got %d", got)
	}
	for _, inst := range ctx.instances["ceil_small"] {
		if inst.Position.Z != 300 {
			t.Fatalf("small tile Z %v, want ceiling height 300", inst.Position.Z)
		}
	}
}

func TestGenerateCeiling_UnresolvedLargeFallsThroughToSmall(t *testing.T) {
	def := ceilingDef(4, 4, &style.CeilingStyle{
		LargeTiles: []style.CeilingTile{{Mesh: "no_such_tile", Size: 4, Weight: 1}},
		SmallTiles: []style.CeilingTile{{Mesh: "ceil_small", Size: 1, Weight: 1}},
	})
	ctx := runCeiling(def)

	if got := countInstances(ctx, "ceil_small"); got != 16 {
		t.Fatalf("small pass must cover cells the large pass could not, got %d", got)
	}
}

func TestGenerateCeiling_NilStyleIsSkipped(t *testing.T) {
	ctx := runCeiling(ceilingDef(4, 4, nil))
	if len(ctx.placements) != 0 {
		t.Fatalf("nil ceiling style must place nothing, got %d", len(ctx.placements))
	}
}

func TestGenerateCeiling_DeterministicPerSeed(t *testing.T) {
	ceiling := &style.CeilingStyle{
		SmallTiles: []style.CeilingTile{
			{Mesh: "ceil_small", Size: 1, Weight: 1},
			{Mesh: "tile_1x1", Size: 1, Weight: 2},
		},
	}
	first := runCeiling(ceilingDef(6, 6, ceiling))
	second := runCeiling(ceilingDef(6, 6, ceiling))

	if len(first.placements) != len(second.placements) {
		t.Fatalf("placement counts differ: %d vs %d", len(first.placements), len(second.placements))
	}
	for i := range first.placements {
		if first.placements[i] != second.placements[i] {
			t.Fatalf("placement %d differs across identical seeds", i)
		}
	}
}
