package formula

import "fmt"

// EMF returns ε = V + I×r.
func EMF(v, i, r float64) float64 { return v + i*r }

// TerminalVoltage returns V = ε − I×r.
func TerminalVoltage(emf, i, r float64) float64 { return emf - i*r }

// InternalResistance returns r = (ε − V) / I, or 0 when I is zero.
func InternalResistance(emf, v, i float64) float64 {
	r, _ := divide(emf-v, i)
	return r
}

// EMFCalc solves the source equation ε = V + I×r for target and plots the
// terminal voltage against load current.
func EMFCalc(in CircuitInput, target EMFTarget) (Evaluation, error) {
	ev := Evaluation{Calculator: CalcEMF, Input: in}
	emf, r := in.EMF, in.InternalResistance

	switch target {
	case EMFSource:
		emf = EMF(in.Voltage, in.Current, r)
		ev.Result = CalculationResult{
			Symbol: "ε", Quantity: "electromotive force", Unit: "V", Value: emf,
			Formula: "ε = V + I×r",
			Derivation: fmt.Sprintf("ε = V + I×r = %s + %s×%s = %s V",
				num(in.Voltage), num(in.Current), num(r), fixed(emf, 2)),
		}
	case EMFTerminal:
		v := TerminalVoltage(emf, in.Current, r)
		ev.Result = CalculationResult{
			Symbol: "V", Quantity: "terminal voltage", Unit: "V", Value: v,
			Formula: "V = ε - I×r",
			Derivation: fmt.Sprintf("V = ε - I×r = %s - %s×%s = %s V",
				num(emf), num(in.Current), num(r), fixed(v, 2)),
		}
	case EMFInternal:
		var zero bool
		r, zero = divide(emf-in.Voltage, in.Current)
		ev.Result = CalculationResult{
			Symbol: "r", Quantity: "internal resistance", Unit: "Ω", Value: r,
			Formula: "r = (ε - V) / I",
			Derivation: fmt.Sprintf("r = (ε - V) / I = (%s - %s) / %s = %s Ω",
				num(emf), num(in.Voltage), num(in.Current), fixed(r, 2)),
			ZeroDenominator: zero,
		}
	default:
		return Evaluation{}, fmt.Errorf("emf target %d: %w", target, ErrUnknownSelector)
	}

	ev.Plot = Plot{
		Title:  "EMF vs terminal voltage",
		XLabel: "Current (A)",
		YLabel: "Voltage (V)",
		Series: []PlotSeries{
			{
				Name:  "Terminal voltage",
				Style: StyleLine,
				Points: Sample(func(i float64) float64 {
					return TerminalVoltage(emf, i, r)
				}, CurrentSweepMin, CurrentSweepMax, CurveSamples),
			},
			{Name: "EMF", Style: StyleReference, Points: Constant(emf, CurrentSweepMin, CurrentSweepMax, CurveSamples)},
		},
	}
	return ev, nil
}
