package domain

// Vehicle is a catalog entry. ConsumptionRate is fuel units per 100
// distance units.
type Vehicle struct {
	ID              string
	Model           string
	FuelType        string
	ConsumptionRate float64
}

// Report is a caller's claim of distance travelled and fuel used by a
// vehicle. Model and FuelType are informational only.
type Report struct {
	ID       string
	Model    string
	FuelType string
	Mileage  float64
	UsedFuel float64
}

type Validity string

const (
	ResultValid   Validity = "valid"
	ResultInvalid Validity = "invalid"
)

func ValidityOf(valid bool) Validity {
	if valid {
		return ResultValid
	}
	return ResultInvalid
}

const (
	FuelGas    = "gas"
	FuelDiesel = "diesel"
)

var DefaultVehicles = []Vehicle{
	{ID: "6137f257-a2d2-447d-9fbf-0122164b361b", Model: "Ford Raptor", FuelType: FuelGas, ConsumptionRate: 15.9},
	{ID: "c16beeec-0c5f-448c-94e2-98c007aa4734", Model: "Jeep Compass", FuelType: FuelGas, ConsumptionRate: 9.3},
	{ID: "b658bd54-7cbe-4342-aca3-b08bbf9f7f5d", Model: "Dacia Duster", FuelType: FuelGas, ConsumptionRate: 5.4},
	{ID: "a2577337-ba03-45be-8e66-d1d533cf0b8f", Model: "Citroen C3", FuelType: FuelGas, ConsumptionRate: 4.7},
	{ID: "3791a7ab-2c24-4675-a111-72693f2c4291", Model: "Fiat 500 pro", FuelType: FuelGas, ConsumptionRate: 4.3},
	{ID: "58ee929f-815e-4a71-b568-85dc505a6f98", Model: "Ford Fiesta", FuelType: FuelGas, ConsumptionRate: 5.2},
	{ID: "d68c01a1-e1e1-4632-b832-b7852209864e", Model: "Hyundai i20", FuelType: FuelDiesel, ConsumptionRate: 5.6},
	{ID: "793b849f-4a20-4851-9f2e-266db332818d", Model: "Opel Astra", FuelType: FuelDiesel, ConsumptionRate: 5.3},
	{ID: "20b7de84-7df8-4455-b6f7-14a5b23db882", Model: "Peugeot 108", FuelType: FuelDiesel, ConsumptionRate: 4.4},
	{ID: "c4ed6aa9-a507-48ba-9e7e-d471d621cdfa", Model: "Toyota Aygo", FuelType: FuelDiesel, ConsumptionRate: 3.7},
	{ID: "5e3d4a33-bf69-48b7-ac1a-857416fd4977", Model: "Seat Ibiza", FuelType: FuelDiesel, ConsumptionRate: 6.3},
	{ID: "77c85822-ec76-43f2-a40a-bd326cc85a0a", Model: "Alfa Romeo Giulia", FuelType: FuelDiesel, ConsumptionRate: 6.7},
}
