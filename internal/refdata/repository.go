package refdata

import "context"

// Repository loads the reference datasets. The core depends ONLY on
// the returned Tables; where they come from (files, postgres, object
// storage) is a deployment choice.
type Repository interface {
	LoadTables(ctx context.Context) (*Tables, error)
}

// Dataset file names shared by the file and object-storage
// repositories. One JSON array per table, pricing as a single object.
var datasetFiles = map[string]string{
	"islands":        "islands.json",
	"locations":      "locations.json",
	"activities":     "activities.json",
	"activity_links": "activity_links.json",
	"ferry_routes":   "ferry_routes.json",
	"cab_legs":       "cab_legs.json",
	"hotels":         "hotels.json",
	"pricing":        "pricing_config.json",
}
