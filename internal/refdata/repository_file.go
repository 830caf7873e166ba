package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository reads the dataset JSON files from a directory.
// Default source for local development.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) LoadTables(ctx context.Context) (*Tables, error) {
	if r.dir == "" {
		return nil, errors.New("dataset directory not set")
	}

	tables := &Tables{}

	if err := r.readInto("islands", &tables.Islands); err != nil {
		return nil, err
	}
	if err := r.readInto("locations", &tables.Locations); err != nil {
		return nil, err
	}
	if err := r.readInto("activities", &tables.Activities); err != nil {
		return nil, err
	}
	if err := r.readInto("activity_links", &tables.ActivityLinks); err != nil {
		return nil, err
	}
	if err := r.readInto("ferry_routes", &tables.FerryRoutes); err != nil {
		return nil, err
	}
	if err := r.readInto("cab_legs", &tables.CabLegs); err != nil {
		return nil, err
	}
	if err := r.readInto("hotels", &tables.Hotels); err != nil {
		return nil, err
	}

	// Pricing config is optional on disk; defaults cover it.
	if err := r.readInto("pricing", &tables.Pricing); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	tables.Pricing = tables.Pricing.ApplyDefaults()

	return tables, nil
}

func (r *FileRepository) readInto(table string, out interface{}) error {
	path := filepath.Join(r.dir, datasetFiles[table])

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", table, err)
	}
	return nil
}
