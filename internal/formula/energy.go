package formula

import "fmt"

const (
	secondsPerHour = 3600
	wattsPerKW     = 1000

	EnergySweepMin = 0.0
	EnergySweepMax = 10.0
)

// EnergyJoules returns W = P × t × 3600 for p in watts and hours in hours.
func EnergyJoules(p, hours float64) float64 { return p * hours * secondsPerHour }

// EnergyKWh returns W = P × t / 1000 in kilowatt-hours.
func EnergyKWh(p, hours float64) float64 { return p * hours / wattsPerKW }

// Energy computes the energy used by a constant load over in.Hours.
func Energy(in CircuitInput) Evaluation {
	j := EnergyJoules(in.Power, in.Hours)
	kwh := EnergyKWh(in.Power, in.Hours)

	return Evaluation{
		Calculator: CalcEnergy,
		Input:      in,
		Result: CalculationResult{
			Symbol: "W", Quantity: "energy", Unit: "J", Value: j,
			Formula:    "W = P × t",
			Derivation: fmt.Sprintf("W = P × t = %s W × %s h = %s J", num(in.Power), num(in.Hours), fixed(j, 0)),
		},
		Steps: []CalculationResult{{
			Symbol: "W", Quantity: "energy", Unit: "kWh", Value: kwh,
			Formula:    "W = P × t / 1000",
			Derivation: fmt.Sprintf("W = %s W × %s h = %s kWh", num(in.Power), num(in.Hours), fixed(kwh, 3)),
		}},
		Plot: Plot{
			Title:  "Energy vs time",
			XLabel: "Time (h)",
			YLabel: "Energy (J)",
			Series: []PlotSeries{
				{
					Name:  fmt.Sprintf("P = %s W", num(in.Power)),
					Style: StyleLine,
					Points: Sample(func(t float64) float64 {
						return EnergyJoules(in.Power, t)
					}, EnergySweepMin, EnergySweepMax, CurveSamples),
				},
				{Name: "Actual point", Style: StyleMarker, Points: Marker(in.Hours, j)},
			},
		},
	}
}
