package style

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSeed matches the historical default for rooms that omit a seed.
const DefaultSeed = 1337

// LoadRoomFromFile loads a room definition from a JSON file and applies
// defaults for omitted fields.
func LoadRoomFromFile(filepath string) (*RoomDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room file: %w", err)
	}

	var def RoomDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse room JSON: %w", err)
	}

	applyRoomDefaults(&def)

	if def.Grid.W <= 0 || def.Grid.H <= 0 {
		return nil, fmt.Errorf("room %q has invalid grid size %dx%d", def.Name, def.Grid.W, def.Grid.H)
	}

	return &def, nil
}

func applyRoomDefaults(def *RoomDefinition) {
	if def.Seed == 0 {
		def.Seed = DefaultSeed
	}

	if def.Floor != nil {
		for i := range def.Floor.TilePool {
			applyPlacementDefaults(&def.Floor.TilePool[i])
		}
	}
	for i := range def.ForcedInterior {
		applyPlacementDefaults(&def.ForcedInterior[i].Placement)
	}

	if def.Wall != nil {
		for i := range def.Wall.Modules {
			applyModuleDefaults(&def.Wall.Modules[i])
		}
	}
	for i := range def.ForcedWalls {
		applyModuleDefaults(&def.ForcedWalls[i].Module)
	}

	for i := range def.DoorPool {
		applyDoorDefaults(&def.DoorPool[i])
	}
	for i := range def.FixedDoors {
		applyDoorDefaults(&def.FixedDoors[i].Style)
	}

	if def.ProceduralDoors.Enabled {
		if def.ProceduralDoors.Min < 1 {
			def.ProceduralDoors.Min = 1
		}
		if def.ProceduralDoors.Max < def.ProceduralDoors.Min {
			def.ProceduralDoors.Max = def.ProceduralDoors.Min
		}
		if def.ProceduralDoors.Max > 4 {
			def.ProceduralDoors.Max = 4
		}
	}
}

func applyPlacementDefaults(p *MeshPlacement) {
	if p.Footprint.W <= 0 {
		p.Footprint.W = 1
	}
	if p.Footprint.H <= 0 {
		p.Footprint.H = 1
	}
	if len(p.AllowedRotations) == 0 {
		p.AllowedRotations = []float64{0}
	}
}

func applyModuleDefaults(m *WallModule) {
	if m.Footprint <= 0 {
		m.Footprint = 1
	}
}

func applyDoorDefaults(d *DoorStyle) {
	if d.Footprint <= 0 {
		d.Footprint = 1
	}
}
