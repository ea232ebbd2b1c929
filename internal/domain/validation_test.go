package domain

import (
	"math"
	"testing"
)

var duster = Vehicle{
	ID:              "b658bd54-7cbe-4342-aca3-b08bbf9f7f5d",
	Model:           "Dacia Duster",
	FuelType:        FuelGas,
	ConsumptionRate: 5.4,
}

func TestValidateReport(t *testing.T) {
	tests := []struct {
		name     string
		mileage  float64
		usedFuel float64
		want     bool
	}{
		{"exact match", 100, 5.4, true},
		{"half distance", 50, 2.7, true},
		{"too much fuel", 100, 10.0, false},
		{"too little fuel", 100, 5.0, false},
		{"zero mileage and zero fuel", 0, 0, false},
		{"zero mileage", 0, 5.4, false},
		{"negative mileage", -100, -5.4, false},
		{"zero fuel", 100, 0, false},
		{"negative fuel", 100, -5.4, false},
		{"nan mileage", math.NaN(), 5.4, false},
		{"nan fuel", 100, math.NaN(), false},
		{"infinite mileage", math.Inf(1), math.Inf(1), false},
		{"infinite fuel", 100, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{ID: duster.ID, Mileage: tt.mileage, UsedFuel: tt.usedFuel}
			if got := ValidateReport(duster, r); got != tt.want {
				t.Errorf("ValidateReport(mileage=%v, used=%v) = %v, want %v", tt.mileage, tt.usedFuel, got, tt.want)
			}
		})
	}
}

func TestValidateReportExpectedFuelAlwaysValid(t *testing.T) {
	mileages := []float64{0.1, 1, 37.5, 100, 420.42, 12345.6, 1e7}

	for _, v := range DefaultVehicles {
		for _, m := range mileages {
			r := Report{ID: v.ID, Mileage: m, UsedFuel: ExpectedFuel(v, m)}
			if !ValidateReport(v, r) {
				t.Errorf("%s: expected fuel for mileage %v reported invalid", v.Model, m)
			}
		}
	}
}

func TestValidateReportTolerance(t *testing.T) {
	expected := ExpectedFuel(duster, 250)

	within := Report{Mileage: 250, UsedFuel: expected * (1 + 1e-12)}
	if !ValidateReport(duster, within) {
		t.Errorf("difference below relative tolerance should be valid")
	}

	outside := Report{Mileage: 250, UsedFuel: expected * (1 + 1e-6)}
	if ValidateReport(duster, outside) {
		t.Errorf("difference above relative tolerance should be invalid")
	}
}

func TestValidateReportIgnoresInformationalFields(t *testing.T) {
	r := Report{ID: duster.ID, Model: "Something Else", FuelType: FuelDiesel, Mileage: 100, UsedFuel: 5.4}
	if !ValidateReport(duster, r) {
		t.Errorf("model and fuel type must not affect validity")
	}
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		rel  float64
		abs  float64
		want bool
	}{
		{"equal", 1.5, 1.5, RelTolerance, AbsTolerance, true},
		{"both zero", 0, 0, RelTolerance, AbsTolerance, true},
		{"zero vs tiny without abs tol", 0, 1e-300, RelTolerance, AbsTolerance, false},
		{"zero vs tiny with abs tol", 0, 1e-300, RelTolerance, 1e-12, true},
		{"rel tol boundary", 1e9, 1e9 + 1, RelTolerance, AbsTolerance, true},
		{"rel tol exceeded", 1e9, 1e9 + 2, RelTolerance, AbsTolerance, false},
		{"nan self", math.NaN(), math.NaN(), RelTolerance, AbsTolerance, false},
		{"inf self", math.Inf(1), math.Inf(1), RelTolerance, AbsTolerance, false},
		{"neg inf", math.Inf(-1), 1, RelTolerance, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.a, tt.b, tt.rel, tt.abs); got != tt.want {
				t.Errorf("IsClose(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidityOf(t *testing.T) {
	if ValidityOf(true) != ResultValid {
		t.Errorf("ValidityOf(true) = %q", ValidityOf(true))
	}
	if ValidityOf(false) != ResultInvalid {
		t.Errorf("ValidityOf(false) = %q", ValidityOf(false))
	}
}
