package refdata

import (
	"context"
	"encoding/json"
	"fmt"
)

// ObjectFetcher is what the object repository needs from a bucket
// client (see storage.R2Client).
type ObjectFetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ObjectRepository loads the dataset JSON from S3-compatible object
// storage. Same file layout as the file repository.
type ObjectRepository struct {
	fetcher ObjectFetcher
}

func NewObjectRepository(fetcher ObjectFetcher) *ObjectRepository {
	return &ObjectRepository{fetcher: fetcher}
}

func (r *ObjectRepository) LoadTables(ctx context.Context) (*Tables, error) {
	tables := &Tables{}

	targets := []struct {
		table string
		out   interface{}
	}{
		{"islands", &tables.Islands},
		{"locations", &tables.Locations},
		{"activities", &tables.Activities},
		{"activity_links", &tables.ActivityLinks},
		{"ferry_routes", &tables.FerryRoutes},
		{"cab_legs", &tables.CabLegs},
		{"hotels", &tables.Hotels},
	}

	for _, target := range targets {
		data, err := r.fetcher.Fetch(ctx, datasetFiles[target.table])
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, target.out); err != nil {
			return nil, fmt.Errorf("parse %s: %w", target.table, err)
		}
	}

	// Pricing config object is optional.
	if data, err := r.fetcher.Fetch(ctx, datasetFiles["pricing"]); err == nil {
		_ = json.Unmarshal(data, &tables.Pricing)
	}
	tables.Pricing = tables.Pricing.ApplyDefaults()

	return tables, nil
}
