package formula

import "fmt"

// Sweep ranges shared by the current-driven plots.
const (
	CurrentSweepMin = 0.1
	CurrentSweepMax = 5.0
	CurveSamples    = 100

	ResistanceSweepMin = 1.0
	ResistanceSweepMax = 50.0
)

// SolveVoltage returns V = I × R.
func SolveVoltage(i, r float64) float64 { return i * r }

// SolveCurrent returns I = V / R, or 0 when R is zero.
func SolveCurrent(v, r float64) float64 {
	q, _ := divide(v, r)
	return q
}

// SolveResistance returns R = V / I, or 0 when I is zero.
func SolveResistance(v, i float64) float64 {
	q, _ := divide(v, i)
	return q
}

// Ohm solves Ohm's law for target and samples the matching characteristic.
func Ohm(in CircuitInput, target OhmTarget) (Evaluation, error) {
	ev := Evaluation{Calculator: CalcOhm, Input: in}

	switch target {
	case OhmVoltage:
		v := SolveVoltage(in.Current, in.Resistance)
		ev.Result = CalculationResult{
			Symbol: "V", Quantity: "voltage", Unit: "V", Value: v,
			Formula:    "V = I × R",
			Derivation: fmt.Sprintf("V = I × R = %s × %s = %s V", num(in.Current), num(in.Resistance), fixed(v, 2)),
		}
		ev.Plot = currentVoltagePlot("Voltage vs current (Ohm's law)", in.Resistance, in.Current, v)

	case OhmCurrent:
		i, zero := divide(in.Voltage, in.Resistance)
		ev.Result = CalculationResult{
			Symbol: "I", Quantity: "current", Unit: "A", Value: i,
			Formula:         "I = V / R",
			Derivation:      fmt.Sprintf("I = V / R = %s / %s = %s A", num(in.Voltage), num(in.Resistance), fixed(i, 2)),
			ZeroDenominator: zero,
		}
		ev.Plot = Plot{
			Title:  "Current vs resistance",
			XLabel: "Resistance (Ω)",
			YLabel: "Current (A)",
			Series: []PlotSeries{
				{
					Name:  fmt.Sprintf("V = %s V", num(in.Voltage)),
					Style: StyleLine,
					Points: Sample(func(r float64) float64 {
						return SolveCurrent(in.Voltage, r)
					}, ResistanceSweepMin, ResistanceSweepMax, CurveSamples),
				},
				{Name: "Actual point", Style: StyleMarker, Points: Marker(in.Resistance, i)},
			},
		}

	case OhmResistance:
		r, zero := divide(in.Voltage, in.Current)
		ev.Result = CalculationResult{
			Symbol: "R", Quantity: "resistance", Unit: "Ω", Value: r,
			Formula:         "R = V / I",
			Derivation:      fmt.Sprintf("R = V / I = %s / %s = %s Ω", num(in.Voltage), num(in.Current), fixed(r, 2)),
			ZeroDenominator: zero,
		}
		ev.Plot = currentVoltagePlot("Voltage vs current (Ohm's law)", r, in.Current, in.Voltage)

	default:
		return Evaluation{}, fmt.Errorf("ohm target %d: %w", target, ErrUnknownSelector)
	}
	return ev, nil
}

// currentVoltagePlot draws V = I×R over the current sweep with a marker
// at (i, v).
func currentVoltagePlot(title string, r, i, v float64) Plot {
	return Plot{
		Title:  title,
		XLabel: "Current (A)",
		YLabel: "Voltage (V)",
		Series: []PlotSeries{
			{
				Name:  fmt.Sprintf("R = %s Ω", num(r)),
				Style: StyleLine,
				Points: Sample(func(x float64) float64 {
					return SolveVoltage(x, r)
				}, CurrentSweepMin, CurrentSweepMax, CurveSamples),
			},
			{Name: "Actual point", Style: StyleMarker, Points: Marker(i, v)},
		},
	}
}
