package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"fleet-monitor/reporting/internal/config"
	"fleet-monitor/reporting/internal/domain"
	"fleet-monitor/reporting/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file — using system environment variables")
	}

	ctx := context.Background()

	fmt.Println("Connecting to Redis...")
	rs, err := store.NewRedisStore(ctx, config.Load())
	if err != nil {
		log.Fatalf("Connection failed: %v\n\nMake sure Redis is running:\n  docker-compose up -d redis", err)
	}
	defer rs.Close()
	fmt.Println("✓ Connected")

	step1_vehicles(ctx, rs)
	step2_verify(ctx, rs)

	fmt.Println("\n✅ Redis seeded successfully")
	fmt.Println("   Start the service with: CATALOG_SOURCE=redis go run ./cmd/reporting")
}

func step1_vehicles(ctx context.Context, rs *store.RedisStore) {
	fmt.Println("\n── Step 1: Seeding vehicles ────────────────────")

	// fleet:vehicles holds the ids, vehicle:{id} the fields.
	// No TTL: the catalog is read once at service startup.
	if err := rs.SeedVehicles(ctx, domain.DefaultVehicles); err != nil {
		log.Fatalf("Failed to seed vehicles: %v", err)
	}
	for _, v := range domain.DefaultVehicles {
		fmt.Printf("  ✓ %-45s → %s\n", store.VehicleKey(v.ID), v.Model)
	}
}

func step2_verify(ctx context.Context, rs *store.RedisStore) {
	fmt.Println("\n── Step 2: Verification ────────────────────────")

	vehicles, err := rs.LoadVehicles(ctx)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("  ✓ %d vehicles found in Redis\n", len(vehicles))

	n, err := rs.Client().SCard(ctx, store.VehicleIndexKey).Result()
	if err != nil {
		log.Fatalf("Spot check failed: %v", err)
	}
	fmt.Printf("  ✓ spot check: %s has %d members\n", store.VehicleIndexKey, n)
}
