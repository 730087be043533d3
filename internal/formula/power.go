package formula

import "fmt"

// Time axis of the power plot, in seconds.
const (
	PowerSweepMin = 0.0
	PowerSweepMax = 10.0
)

// PowerVI returns P = V × I.
func PowerVI(v, i float64) float64 { return v * i }

// PowerI2R returns P = I² × R.
func PowerI2R(i, r float64) float64 { return i * i * r }

// PowerV2R returns P = V² / R, or 0 when R is zero.
func PowerV2R(v, r float64) float64 {
	p, _ := divide(v*v, r)
	return p
}

// Power computes electrical power with the chosen variant. The plot is a
// constant line over time since P does not depend on t.
func Power(in CircuitInput, variant PowerVariant) (Evaluation, error) {
	ev := Evaluation{Calculator: CalcPower, Input: in}
	res := CalculationResult{Symbol: "P", Quantity: "power", Unit: "W"}

	switch variant {
	case PowerFromVI:
		res.Value = PowerVI(in.Voltage, in.Current)
		res.Formula = "P = V × I"
		res.Derivation = fmt.Sprintf("P = V × I = %s × %s = %s W", num(in.Voltage), num(in.Current), fixed(res.Value, 2))
	case PowerFromI2R:
		res.Value = PowerI2R(in.Current, in.Resistance)
		res.Formula = "P = I² × R"
		res.Derivation = fmt.Sprintf("P = I² × R = %s² × %s = %s W", num(in.Current), num(in.Resistance), fixed(res.Value, 2))
	case PowerFromV2R:
		res.Value, res.ZeroDenominator = divide(in.Voltage*in.Voltage, in.Resistance)
		res.Formula = "P = V² / R"
		res.Derivation = fmt.Sprintf("P = V² / R = %s² / %s = %s W", num(in.Voltage), num(in.Resistance), fixed(res.Value, 2))
	default:
		return Evaluation{}, fmt.Errorf("power variant %d: %w", variant, ErrUnknownSelector)
	}
	ev.Result = res

	ev.Plot = Plot{
		Title:  "Power vs time",
		XLabel: "Time (s)",
		YLabel: "Power (W)",
		Series: []PlotSeries{{
			Name:   "Constant power",
			Style:  StyleLine,
			Points: Constant(res.Value, PowerSweepMin, PowerSweepMax, CurveSamples),
		}},
	}
	return ev, nil
}
