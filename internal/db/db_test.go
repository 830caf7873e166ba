package db

import (
	"context"
	"os"
	"testing"
)

// Integration test: only runs against a real database. The reference
// tables are read-only for the API, so a schema round-trip is enough.
func TestConnectPostgresInitializesSchema(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	var count int
	err := pool.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_name IN ('islands', 'locations', 'hotels', 'ferry_routes', 'cab_legs')
	`).Scan(&count)
	if err != nil {
		t.Fatalf("schema query failed: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 reference tables, found %d", count)
	}
}
