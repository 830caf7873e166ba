package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the reference tables if they do not exist. The
// serving path only reads them; loading is done by dataset scripts.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS islands (
			id VARCHAR(16) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			region VARCHAR(255),
			ordinal SERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			island VARCHAR(255) NOT NULL,
			category VARCHAR(64),
			moods JSONB DEFAULT '[]',
			brief TEXT,
			typical_hours DOUBLE PRECISION,
			best_time VARCHAR(128),
			slug VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(64),
			duration_min INT,
			base_price_inr DOUBLE PRECISION,
			unit VARCHAR(32) NOT NULL DEFAULT 'per_person',
			operated_in JSONB DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS activity_links (
			location_id VARCHAR(64) PRIMARY KEY,
			activity_ids JSONB DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS ferry_routes (
			id VARCHAR(64) PRIMARY KEY,
			origin_id VARCHAR(16) NOT NULL,
			destination_id VARCHAR(16) NOT NULL,
			operators JSONB DEFAULT '[]',
			typical_duration_min INT
		)`,
		`CREATE TABLE IF NOT EXISTS cab_legs (
			id VARCHAR(64) PRIMARY KEY,
			island_id VARCHAR(16) NOT NULL,
			from_zone VARCHAR(128) NOT NULL,
			to_zone VARCHAR(128) NOT NULL,
			trip_type VARCHAR(32),
			vehicle_class VARCHAR(32),
			service_class VARCHAR(32),
			day_fare_inr DOUBLE PRECISION,
			night_fare_inr DOUBLE PRECISION,
			included_wait_min INT
		)`,
		`CREATE TABLE IF NOT EXISTS hotels (
			id VARCHAR(64) PRIMARY KEY,
			island_id VARCHAR(16) NOT NULL,
			display_name VARCHAR(255) NOT NULL,
			category VARCHAR(64),
			moods JSONB DEFAULT '[]',
			zone VARCHAR(128),
			star_rating DOUBLE PRECISION,
			min_nightly_inr DOUBLE PRECISION,
			max_nightly_inr DOUBLE PRECISION,
			typical_couple_inr DOUBLE PRECISION,
			is_beachfront BOOLEAN DEFAULT FALSE,
			ordinal SERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS pricing_config (
			id SERIAL PRIMARY KEY,
			config JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Schema initialized")
	return nil
}
