package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"fleet-monitor/reporting/internal/config"
	"fleet-monitor/reporting/internal/domain"
)

// Key layout:
//
//	fleet:vehicles       set of vehicle ids
//	vehicle:{id}         hash with car_model, fuel_type, consumption
const VehicleIndexKey = "fleet:vehicles"

func VehicleKey(id string) string {
	return fmt.Sprintf("vehicle:%s", id)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     4,
		MinIdleConns: 1,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Client() *redis.Client {
	return r.client
}

func (r *RedisStore) LoadVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	ids, err := r.client.SMembers(ctx, VehicleIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis read vehicle index failed: %w", err)
	}
	sort.Strings(ids)

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, VehicleKey(id))
	}
	if len(ids) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("redis pipeline failed: %w", err)
		}
	}

	vehicles := make([]domain.Vehicle, 0, len(ids))
	for i, id := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			return nil, fmt.Errorf("vehicle %s is indexed but %s is missing", id, VehicleKey(id))
		}
		rate, err := strconv.ParseFloat(fields["consumption"], 64)
		if err != nil {
			return nil, fmt.Errorf("vehicle %s has bad consumption %q: %w", id, fields["consumption"], err)
		}
		vehicles = append(vehicles, domain.Vehicle{
			ID:              id,
			Model:           fields["car_model"],
			FuelType:        fields["fuel_type"],
			ConsumptionRate: rate,
		})
	}
	return vehicles, nil
}

// SeedVehicles writes vehicles into the layout LoadVehicles reads.
func (r *RedisStore) SeedVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	pipe := r.client.TxPipeline()
	for _, v := range vehicles {
		pipe.HSet(ctx, VehicleKey(v.ID), map[string]interface{}{
			"car_model":   v.Model,
			"fuel_type":   v.FuelType,
			"consumption": strconv.FormatFloat(v.ConsumptionRate, 'f', -1, 64),
		})
		pipe.SAdd(ctx, VehicleIndexKey, v.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis seed failed: %w", err)
	}
	return nil
}
