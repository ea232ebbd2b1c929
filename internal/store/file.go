package store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fleet-monitor/reporting/internal/domain"
)

// FileStore reads the catalog from a YAML document of the form
//
//	vehicles:
//	  - id: b658bd54-7cbe-4342-aca3-b08bbf9f7f5d
//	    car_model: Dacia Duster
//	    fuel_type: gas
//	    consumption: 5.4
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type catalogFile struct {
	Vehicles []vehicleEntry `yaml:"vehicles"`
}

type vehicleEntry struct {
	ID          string  `yaml:"id"`
	CarModel    string  `yaml:"car_model"`
	FuelType    string  `yaml:"fuel_type"`
	Consumption float64 `yaml:"consumption"`
}

func (f *FileStore) LoadVehicles(_ context.Context) ([]domain.Vehicle, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", f.path, err)
	}

	vehicles := make([]domain.Vehicle, len(doc.Vehicles))
	for i, e := range doc.Vehicles {
		vehicles[i] = domain.Vehicle{
			ID:              e.ID,
			Model:           e.CarModel,
			FuelType:        e.FuelType,
			ConsumptionRate: e.Consumption,
		}
	}
	return vehicles, nil
}
