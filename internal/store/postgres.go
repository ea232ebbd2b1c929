package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-monitor/reporting/internal/config"
	"fleet-monitor/reporting/internal/domain"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg *config.Config) (*PostgresStore, error) {
	return NewPostgresStoreFromURL(ctx, cfg.PostgresURL())
}

func NewPostgresStoreFromURL(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

type vehicleRow struct {
	ID          string  `db:"id"`
	CarModel    string  `db:"car_model"`
	FuelType    string  `db:"fuel_type"`
	Consumption float64 `db:"consumption"`
}

const selectVehicles = `
	SELECT id, car_model, fuel_type, consumption
	FROM vehicles
	ORDER BY id
`

func (s *PostgresStore) LoadVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := s.pool.Query(ctx, selectVehicles)
	if err != nil {
		return nil, fmt.Errorf("query vehicles failed: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[vehicleRow])
	if err != nil {
		return nil, fmt.Errorf("scan vehicles failed: %w", err)
	}

	vehicles := make([]domain.Vehicle, len(records))
	for i, r := range records {
		vehicles[i] = domain.Vehicle{
			ID:              r.ID,
			Model:           r.CarModel,
			FuelType:        r.FuelType,
			ConsumptionRate: r.Consumption,
		}
	}
	return vehicles, nil
}
