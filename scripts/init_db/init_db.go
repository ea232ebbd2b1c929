package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"fleet-monitor/reporting/internal/config"
	"fleet-monitor/reporting/internal/domain"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using system environment variables")
	}

	cfg := config.Load()
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	ctx := context.Background()

	fmt.Println("Connecting to Postgres...")
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		log.Fatalf("Connection failed: %v\n\nMake sure Postgres is running:\n  docker-compose up -d postgres", err)
	}
	defer conn.Close(ctx)
	fmt.Println("✓ Connected")

	step1_vehicles_table(ctx, conn)
	step2_seed_vehicles(ctx, conn)
	step3_verify(ctx, conn)

	fmt.Println("\n✅ Database initialised successfully")
	fmt.Println("   Start the service with: CATALOG_SOURCE=postgres go run ./cmd/reporting")
}

// ─────────────────────────────────────────────────────────────
// Step 1 — vehicles table
// ─────────────────────────────────────────────────────────────
func step1_vehicles_table(ctx context.Context, conn *pgx.Conn) {
	fmt.Println("\n── Step 1: vehicles table ──────────────────────")

	execOrFatal(ctx, conn, `
		CREATE TABLE IF NOT EXISTS vehicles (
			id           TEXT             PRIMARY KEY,
			car_model    TEXT             NOT NULL,
			fuel_type    TEXT             NOT NULL,

			-- Fuel units per 100 distance units
			consumption  DOUBLE PRECISION NOT NULL,

			CONSTRAINT chk_consumption_positive CHECK (consumption > 0)
		);
	`, "vehicles table created")
}

// ─────────────────────────────────────────────────────────────
// Step 2 — seed the built-in catalog
// ─────────────────────────────────────────────────────────────
func step2_seed_vehicles(ctx context.Context, conn *pgx.Conn) {
	fmt.Println("\n── Step 2: Seeding vehicles ────────────────────")

	batch := &pgx.Batch{}
	for _, v := range domain.DefaultVehicles {
		batch.Queue(`
			INSERT INTO vehicles (id, car_model, fuel_type, consumption)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET car_model = EXCLUDED.car_model,
			    fuel_type = EXCLUDED.fuel_type,
			    consumption = EXCLUDED.consumption
		`, v.ID, v.Model, v.FuelType, v.ConsumptionRate)
	}

	results := conn.SendBatch(ctx, batch)
	for _, v := range domain.DefaultVehicles {
		if _, err := results.Exec(); err != nil {
			results.Close()
			log.Fatalf("Failed to upsert %s: %v", v.ID, err)
		}
		fmt.Printf("  ✓ %-38s %-18s %5.1f\n", v.ID, v.Model, v.ConsumptionRate)
	}
	if err := results.Close(); err != nil {
		log.Fatalf("Seed batch failed: %v", err)
	}
}

// ─────────────────────────────────────────────────────────────
// Step 3 — Verify
// ─────────────────────────────────────────────────────────────
func step3_verify(ctx context.Context, conn *pgx.Conn) {
	fmt.Println("\n── Step 3: Verification ────────────────────────")

	var count int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count); err != nil {
		log.Fatalf("Count failed: %v", err)
	}
	fmt.Printf("  ✓ %d vehicles in table\n", count)

	var model string
	var rate float64
	err := conn.QueryRow(ctx,
		`SELECT car_model, consumption FROM vehicles WHERE id = $1`,
		"b658bd54-7cbe-4342-aca3-b08bbf9f7f5d",
	).Scan(&model, &rate)
	if err != nil {
		log.Fatalf("Spot check failed: %v", err)
	}
	fmt.Printf("  ✓ spot check: %s → %.1f per 100\n", model, rate)
}

// execOrFatal runs a SQL statement and prints result or exits on error
func execOrFatal(ctx context.Context, conn *pgx.Conn, sql, label string) {
	_, err := conn.Exec(ctx, sql)
	if err != nil {
		log.Fatalf("FAILED — %s\nError: %v\nSQL: %s", label, err, sql)
	}
	fmt.Printf("  ✓ %s\n", label)
}
