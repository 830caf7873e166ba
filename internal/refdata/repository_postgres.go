package refdata

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository loads the reference tables from postgres. List
// fields (moods, operators, activity ids) are stored as JSONB.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) LoadTables(ctx context.Context) (*Tables, error) {
	tables := &Tables{}

	if err := r.loadIslands(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadLocations(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadActivities(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadActivityLinks(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadFerryRoutes(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadCabLegs(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadHotels(ctx, tables); err != nil {
		return nil, err
	}
	if err := r.loadPricing(ctx, tables); err != nil {
		return nil, err
	}

	tables.Pricing = tables.Pricing.ApplyDefaults()
	return tables, nil
}

func (r *PostgresRepository) loadIslands(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(region, '')
		FROM islands
		ORDER BY ordinal
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var island Island
		if err := rows.Scan(&island.ID, &island.Name, &island.Region); err != nil {
			continue
		}
		t.Islands = append(t.Islands, island)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadLocations(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, island, category, COALESCE(moods, '[]'),
		       COALESCE(brief, ''), COALESCE(typical_hours, 0),
		       COALESCE(best_time, ''), COALESCE(slug, '')
		FROM locations
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var loc Location
		var moods []byte
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Island, &loc.Category, &moods,
			&loc.Brief, &loc.TypicalHours, &loc.BestTime, &loc.Slug,
		); err != nil {
			continue
		}
		_ = json.Unmarshal(moods, &loc.Moods)
		t.Locations = append(t.Locations, loc)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadActivities(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, COALESCE(duration_min, 0),
		       COALESCE(base_price_inr, 0), unit, COALESCE(operated_in, '[]')
		FROM activities
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var act Activity
		var price float64
		var operatedIn []byte
		if err := rows.Scan(
			&act.ID, &act.Name, &act.Category, &act.DurationMin,
			&price, &act.Unit, &operatedIn,
		); err != nil {
			continue
		}
		act.BasePriceINR = INR(price)
		_ = json.Unmarshal(operatedIn, &act.OperatedIn)
		t.Activities = append(t.Activities, act)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadActivityLinks(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT location_id, COALESCE(activity_ids, '[]')
		FROM activity_links
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var link ActivityLink
		var ids []byte
		if err := rows.Scan(&link.LocationID, &ids); err != nil {
			continue
		}
		_ = json.Unmarshal(ids, &link.ActivityIDs)
		t.ActivityLinks = append(t.ActivityLinks, link)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadFerryRoutes(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, origin_id, destination_id, COALESCE(operators, '[]'),
		       COALESCE(typical_duration_min, 0)
		FROM ferry_routes
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var route FerryRoute
		var operators []byte
		if err := rows.Scan(
			&route.ID, &route.OriginID, &route.DestinationID,
			&operators, &route.TypicalDurationMin,
		); err != nil {
			continue
		}
		_ = json.Unmarshal(operators, &route.Operators)
		t.FerryRoutes = append(t.FerryRoutes, route)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadCabLegs(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, island_id, from_zone, to_zone,
		       COALESCE(trip_type, ''), COALESCE(vehicle_class, ''),
		       COALESCE(service_class, ''), COALESCE(day_fare_inr, 0),
		       COALESCE(night_fare_inr, 0), COALESCE(included_wait_min, 0)
		FROM cab_legs
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var leg CabLeg
		var day, night float64
		if err := rows.Scan(
			&leg.ID, &leg.IslandID, &leg.FromZone, &leg.ToZone,
			&leg.TripType, &leg.VehicleClass, &leg.ServiceClass,
			&day, &night, &leg.IncludedWaitMin,
		); err != nil {
			continue
		}
		leg.DayFareINR = INR(day)
		leg.NightFareINR = INR(night)
		t.CabLegs = append(t.CabLegs, leg)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadHotels(ctx context.Context, t *Tables) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, island_id, display_name, COALESCE(category, ''),
		       COALESCE(moods, '[]'), COALESCE(zone, ''),
		       COALESCE(star_rating, 0), COALESCE(min_nightly_inr, 0),
		       COALESCE(max_nightly_inr, 0), COALESCE(typical_couple_inr, 0),
		       COALESCE(is_beachfront, FALSE)
		FROM hotels
		ORDER BY ordinal
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var hotel Hotel
		var moods []byte
		var minN, maxN, couple float64
		if err := rows.Scan(
			&hotel.ID, &hotel.IslandID, &hotel.DisplayName, &hotel.Category,
			&moods, &hotel.Zone, &hotel.StarRating,
			&minN, &maxN, &couple, &hotel.IsBeachfront,
		); err != nil {
			continue
		}
		hotel.MinNightlyINR = INR(minN)
		hotel.MaxNightlyINR = INR(maxN)
		hotel.TypicalCoupleINR = INR(couple)
		_ = json.Unmarshal(moods, &hotel.Moods)
		t.Hotels = append(t.Hotels, hotel)
	}
	return rows.Err()
}

func (r *PostgresRepository) loadPricing(ctx context.Context, t *Tables) error {
	var doc []byte
	err := r.db.QueryRow(ctx, `
		SELECT config FROM pricing_config ORDER BY id DESC LIMIT 1
	`).Scan(&doc)
	if err != nil {
		// No pricing row is fine; defaults cover it.
		return nil
	}
	_ = json.Unmarshal(doc, &t.Pricing)
	return nil
}
