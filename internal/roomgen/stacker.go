package roomgen

import (
	"log"

	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// verticalAnchor yields the local transform at which the next layer
// attaches to a mesh. Providers are tried in order; the bounding-box
// fallback always succeeds.
type verticalAnchor interface {
	anchor(m *Mesh) (grid.Transform, bool)
}

type socketAnchor struct {
	name string
}

func (a socketAnchor) anchor(m *Mesh) (grid.Transform, bool) {
	return m.Socket(a.name)
}

type boundsAnchor struct{}

func (boundsAnchor) anchor(m *Mesh) (grid.Transform, bool) {
	return grid.Transform{Position: grid.Vec3{Z: m.BoundsHeight}}, true
}

var stackAnchors = []verticalAnchor{socketAnchor{name: StackSocketName}, boundsAnchor{}}

// stackTransform composes the world transform for the layer above prev.
func stackTransform(prev *Mesh, prevTransform grid.Transform) grid.Transform {
	for _, a := range stackAnchors {
		if local, ok := a.anchor(prev); ok {
			return prevTransform.Compose(local)
		}
	}
	return prevTransform
}

// stackLayer resolves and places one layer mesh on top of the record's
// current highest layer, then advances the record.
func stackLayer(ctx *passContext, rec *WallSegmentRecord, ref style.MeshRef) bool {
	mesh, ok := ctx.resolver.Resolve(ref)
	if !ok {
		log.Printf("roomgen: wall layer mesh %q unavailable on %s edge", ref, rec.Edge)
		return false
	}
	t := stackTransform(rec.topMesh, rec.topTransform)
	ctx.place(KindWall, mesh, t)
	rec.topMesh = mesh
	rec.topTransform = t
	return true
}

// spawnMiddleLayers stacks Middle1 (and Middle2 when both are configured)
// on every placed base wall segment.
func spawnMiddleLayers(ctx *passContext) {
	for _, rec := range ctx.wallRecords {
		if rec.Module.Middle1 == "" {
			continue
		}
		if !stackLayer(ctx, rec, rec.Module.Middle1) {
			continue
		}
		if rec.Module.Middle2 != "" {
			stackLayer(ctx, rec, rec.Module.Middle2)
		}
	}
}

// spawnTopLayers stacks the top mesh onto whichever layer is currently the
// highest on each segment. Segments without a top mesh are left as-is.
func spawnTopLayers(ctx *passContext) {
	for _, rec := range ctx.wallRecords {
		if rec.Module.Top == "" {
			continue
		}
		stackLayer(ctx, rec, rec.Module.Top)
	}
}
