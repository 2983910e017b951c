package render

import (
	"encoding/json"
	"os"

	"github.com/fernvale/roadweaver/internal/roads"
	"github.com/fernvale/roadweaver/internal/terrain"
)

// Document is the exported description of a generated world: the field
// parameters, the waypoints, and the realized road network.
type Document struct {
	Seed      int64            `json:"seed"`
	Size      int              `json:"size"`
	CellSize  float64          `json:"cell_size"`
	SeaLevel  float64          `json:"sea_level"`
	Waypoints []roads.Waypoint `json:"waypoints"`
	Roads     []*roads.Road    `json:"roads"`
	Stats     roads.Stats      `json:"stats"`
}

// NewDocument assembles an export document from a finished pipeline run.
func NewDocument(p *roads.Pipeline, field *terrain.Heightmap) *Document {
	return &Document{
		Seed:      p.Seed,
		Size:      field.Size,
		CellSize:  field.CellSize,
		SeaLevel:  field.SeaLevel,
		Waypoints: p.Waypoints,
		Roads:     p.Roads,
		Stats:     p.Stats,
	}
}

// Save writes the document as indented JSON.
func (d *Document) Save(fpath string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0o644)
}

// LoadDocument reads a previously saved document back.
func LoadDocument(fpath string) (*Document, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
