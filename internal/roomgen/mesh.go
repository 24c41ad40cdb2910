package roomgen

import (
	"github.com/gridforge/roomgen/internal/grid"
	"github.com/gridforge/roomgen/internal/style"
)

// StackSocketName is the socket the layer stacker looks up on a mesh to
// find where the next layer attaches.
const StackSocketName = "StackTop"

// Mesh is the resolved, placement-relevant view of an asset: its bounding
// height and sockets. Rendering data never enters the engine.
type Mesh struct {
	Ref          style.MeshRef
	BoundsHeight float64
	Sockets      map[string]grid.Transform
}

// Socket returns the named socket's local transform, if the mesh has one.
func (m *Mesh) Socket(name string) (grid.Transform, bool) {
	t, ok := m.Sockets[name]
	return t, ok
}

// MeshResolver resolves a mesh reference synchronously. A false return
// means "unavailable": the caller skips the placement and continues.
type MeshResolver interface {
	Resolve(ref style.MeshRef) (*Mesh, bool)
}

// CatalogResolver resolves meshes against a loaded catalog.
type CatalogResolver struct {
	meshes map[style.MeshRef]*Mesh
}

func NewCatalogResolver(catalog *style.MeshCatalog) *CatalogResolver {
	r := &CatalogResolver{meshes: make(map[style.MeshRef]*Mesh, len(catalog.Meshes))}
	for _, info := range catalog.Meshes {
		m := &Mesh{
			Ref:          info.Name,
			BoundsHeight: info.Bounds.Z,
			Sockets:      make(map[string]grid.Transform, len(info.Sockets)),
		}
		for _, s := range info.Sockets {
			m.Sockets[s.Name] = grid.Transform{Position: s.Offset, Yaw: s.Yaw}
		}
		r.meshes[info.Name] = m
	}
	return r
}

func (r *CatalogResolver) Resolve(ref style.MeshRef) (*Mesh, bool) {
	if ref == "" {
		return nil, false
	}
	m, ok := r.meshes[ref]
	return m, ok
}
