package formula

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Comparison sweep for ScaledComparison.
const (
	ScaleSweepMin = 1.0
	ScaleSweepMax = 20.0
	ScaleSamples  = 50
	scaleDivisor  = 10.0
)

// SeriesTotal returns the sum of the resistances. The sum runs in
// ascending order so the total does not depend on the order of rs.
func SeriesTotal(rs []float64) float64 {
	if len(rs) == 0 {
		return 0
	}
	return floats.Sum(sorted(rs))
}

// ParallelTotal returns 1 / Σ(1/r) over the nonzero resistances, or 0
// when there are none.
func ParallelTotal(rs []float64) float64 {
	total, _ := divide(1, reciprocalSum(rs))
	return total
}

// reciprocalSum skips zero elements. Like SeriesTotal it is independent
// of the order of rs.
func reciprocalSum(rs []float64) float64 {
	var sum float64
	for _, r := range sorted(rs) {
		if r != 0 {
			sum += 1 / r
		}
	}
	return sum
}

func sorted(rs []float64) []float64 {
	c := slices.Clone(rs)
	slices.Sort(c)
	return c
}

// ScaledComparison sweeps a factor x over [1, 20] and returns the series
// and parallel totals of the set with every resistor scaled by x/10.
// The overlay is illustrative only: it shows how the two arrangements
// diverge, not a physical scaling law.
func ScaledComparison(rs ResistorSet) (series, parallel CurveSample) {
	series = Sample(func(x float64) float64 {
		return SeriesTotal(rs.Scale(x / scaleDivisor))
	}, ScaleSweepMin, ScaleSweepMax, ScaleSamples)
	parallel = Sample(func(x float64) float64 {
		return ParallelTotal(rs.Scale(x / scaleDivisor))
	}, ScaleSweepMin, ScaleSweepMax, ScaleSamples)
	return series, parallel
}

// Resistance computes the equivalent resistance of in.Resistors.
func Resistance(in CircuitInput, a Arrangement) (Evaluation, error) {
	rs := in.Resistors
	if err := rs.Validate(); err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{Calculator: CalcResistance, Input: in}

	labels := make([]string, len(rs))
	values := make([]string, len(rs))

	switch a {
	case Series:
		for i, r := range rs {
			labels[i] = fmt.Sprintf("R%d", i+1)
			values[i] = num(r)
		}
		total := SeriesTotal(rs)
		ev.Result = CalculationResult{
			Symbol: "R_total", Quantity: "series resistance", Unit: "Ω", Value: total,
			Formula: "R_total = " + strings.Join(labels, " + "),
			Derivation: fmt.Sprintf("R_total = %s = %s = %s Ω",
				strings.Join(labels, " + "), strings.Join(values, " + "), fixed(total, 2)),
		}

	case Parallel:
		for i, r := range rs {
			labels[i] = fmt.Sprintf("1/R%d", i+1)
			values[i] = "1/" + num(r)
		}
		inv := reciprocalSum(rs)
		total, zero := divide(1, inv)
		ev.Steps = []CalculationResult{{
			Symbol: "1/R_total", Quantity: "reciprocal sum", Unit: "1/Ω", Value: inv,
			Formula: "1/R_total = " + strings.Join(labels, " + "),
			Derivation: fmt.Sprintf("1/R_total = %s = %s = %s",
				strings.Join(labels, " + "), strings.Join(values, " + "), fixed(inv, 4)),
		}}
		ev.Result = CalculationResult{
			Symbol: "R_total", Quantity: "parallel resistance", Unit: "Ω", Value: total,
			Formula:         "R_total = 1 / (1/R_total)",
			Derivation:      fmt.Sprintf("R_total = 1/%s = %s Ω", fixed(inv, 4), fixed(total, 2)),
			ZeroDenominator: zero,
		}

	default:
		return Evaluation{}, fmt.Errorf("arrangement %d: %w", a, ErrUnknownSelector)
	}

	series, parallel := ScaledComparison(rs)
	ev.Plot = Plot{
		Title:  "Series vs parallel resistance",
		XLabel: "Scale factor",
		YLabel: "Total resistance (Ω)",
		Series: []PlotSeries{
			{Name: "Series", Style: StyleLine, Points: series},
			{Name: "Parallel", Style: StyleLine, Points: parallel},
		},
	}
	return ev, nil
}
