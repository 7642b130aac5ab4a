// Package export writes snapshots of the car view the user is looking at,
// either to a local directory or to an S3-compatible bucket.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

// Snapshot is the derived car view at one moment, with the view state that
// produced it.
type Snapshot struct {
	ExportedAt time.Time    `json:"exported_at"`
	Scope      string       `json:"scope,omitempty"`
	SortField  string       `json:"sort_field,omitempty"`
	SortDir    string       `json:"sort_dir,omitempty"`
	Filter     string       `json:"filter,omitempty"`
	Cars       []models.Car `json:"cars"`
}

// Name is the object or file name a snapshot is stored under.
func (s Snapshot) Name() string {
	return "cars-" + s.ExportedAt.UTC().Format("20060102T150405Z") + ".json"
}

func (s Snapshot) encode() ([]byte, error) {
	if s.Cars == nil {
		s.Cars = []models.Car{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Exporter stores a snapshot and returns where it went.
type Exporter interface {
	Export(ctx context.Context, s Snapshot) (string, error)
}
