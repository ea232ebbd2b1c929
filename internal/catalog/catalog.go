// Package catalog holds the read-only set of vehicles reports are checked
// against. A Catalog is built once at startup and never mutated, so it is
// safe to share between request goroutines without locking.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"fleet-monitor/reporting/internal/domain"
)

var (
	ErrDuplicateID    = errors.New("duplicate vehicle id")
	ErrInvalidVehicle = errors.New("invalid vehicle")
	ErrEmptyCatalog   = errors.New("catalog source returned no vehicles")
)

// Source supplies the vehicles a Catalog is seeded with.
type Source interface {
	LoadVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

type Catalog struct {
	byID map[string]domain.Vehicle
}

func New(vehicles []domain.Vehicle) (*Catalog, error) {
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: empty id (model %q)", ErrInvalidVehicle, v.Model)
		}
		if math.IsNaN(v.ConsumptionRate) || math.IsInf(v.ConsumptionRate, 0) || v.ConsumptionRate <= 0 {
			return nil, fmt.Errorf("%w: %s has consumption rate %v", ErrInvalidVehicle, v.ID, v.ConsumptionRate)
		}
		if _, ok := byID[v.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
		}
		byID[v.ID] = v
	}
	return &Catalog{byID: byID}, nil
}

// Load builds a Catalog from whatever src returns. An empty source is an
// error: the service would answer every report with 404.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	vehicles, err := src.LoadVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(vehicles)
}

func (c *Catalog) Lookup(id string) (domain.Vehicle, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// Vehicles returns a copy of every entry ordered by id.
func (c *Catalog) Vehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(c.byID))
	for _, v := range c.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type staticSource []domain.Vehicle

// Static serves a fixed slice of vehicles, typically domain.DefaultVehicles.
func Static(vehicles []domain.Vehicle) Source {
	cp := make([]domain.Vehicle, len(vehicles))
	copy(cp, vehicles)
	return staticSource(cp)
}

func (s staticSource) LoadVehicles(context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(s))
	copy(out, s)
	return out, nil
}
