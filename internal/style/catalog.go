package style

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gridforge/roomgen/internal/grid"
)

// Socket is a named local-space anchor on a mesh, used for stacking wall
// layers. Absence of a socket is normal, not an error.
type Socket struct {
	Name   string    `json:"name"`
	Offset grid.Vec3 `json:"offset"`
	Yaw    float64   `json:"yaw"`
}

// MeshInfo is the placement-relevant metadata for one mesh: its bounding
// box extents and its sockets. How the mesh was authored is out of scope.
type MeshInfo struct {
	Name    MeshRef   `json:"name"`
	Bounds  grid.Vec3 `json:"bounds"`
	Sockets []Socket  `json:"sockets,omitempty"`
}

// MeshCatalog is the asset-side input to generation: every mesh the styles
// may reference, keyed by name.
type MeshCatalog struct {
	Meshes []MeshInfo `json:"meshes"`
}

// LoadMeshCatalogFromFile loads a mesh catalog from a JSON file.
func LoadMeshCatalogFromFile(filepath string) (*MeshCatalog, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mesh catalog: %w", err)
	}

	var catalog MeshCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse mesh catalog JSON: %w", err)
	}

	return &catalog, nil
}
