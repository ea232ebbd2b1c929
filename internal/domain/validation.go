package domain

import "math"

const (
	RelTolerance = 1e-9
	AbsTolerance = 0.0
)

// ValidateReport reports whether the fuel used in r matches what v is
// expected to burn over r.Mileage.
func ValidateReport(v Vehicle, r Report) bool {
	if r.Mileage <= 0 || r.UsedFuel <= 0 {
		return false
	}
	if !isFinite(r.Mileage) || !isFinite(r.UsedFuel) {
		return false
	}

	expected := ExpectedFuel(v, r.Mileage)
	return IsClose(expected, r.UsedFuel, RelTolerance, AbsTolerance)
}

func ExpectedFuel(v Vehicle, mileage float64) float64 {
	return v.ConsumptionRate * (mileage / 100)
}

// IsClose compares a and b with a relative and an absolute tolerance:
// |a-b| <= max(relTol*max(|a|,|b|), absTol). NaN and infinities are never
// close to anything, themselves included.
func IsClose(a, b, relTol, absTol float64) bool {
	if !isFinite(a) || !isFinite(b) {
		return false
	}
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
