package formula

import "math"

// Waveform comparison parameters.
const (
	WaveAmplitude = 5.0
	WaveSamples   = 400
)

// FormulaGroup is a titled list of formulas for the reference sheet.
type FormulaGroup struct {
	Title    string   `json:"title"`
	Formulas []string `json:"formulas"`
}

// ArrangementNote is shown next to the resistance calculator.
type ArrangementNote struct {
	Arrangement     Arrangement `json:"arrangement"`
	Diagram         string      `json:"diagram"`
	Characteristics []string    `json:"characteristics"`
}

// ComparisonRow is one row of the DC vs AC table.
type ComparisonRow struct {
	Aspect string `json:"aspect"`
	DC     string `json:"dc"`
	AC     string `json:"ac"`
}

// ReferenceSheet collects the static teaching material.
type ReferenceSheet struct {
	Formulas     []FormulaGroup    `json:"formulas"`
	Arrangements []ArrangementNote `json:"arrangements"`
	Comparison   []ComparisonRow   `json:"comparison"`
	Waveforms    Plot              `json:"waveforms"`
}

// Reference returns the formula sheet, arrangement notes and the DC vs AC
// comparison.
func Reference() ReferenceSheet {
	return ReferenceSheet{
		Formulas: []FormulaGroup{
			{Title: "Ohm's law", Formulas: []string{"V = I × R", "I = V / R", "R = V / I"}},
			{Title: "Electrical power", Formulas: []string{"P = V × I", "P = I² × R", "P = V² / R"}},
			{Title: "Energy & EMF", Formulas: []string{"W = P × t", "ε = V + I×r", "V = ε - I×r"}},
		},
		Arrangements: []ArrangementNote{
			{
				Arrangement: Series,
				Diagram:     "——[R1]——[R2]——[R3]——\n+                    -",
				Characteristics: []string{
					"Same current at every point",
					"Voltage is divided",
					"R_total = R1 + R2 + R3",
				},
			},
			{
				Arrangement: Parallel,
				Diagram:     "+——[R1]——+\n|        |\n+——[R2]——+\n|        |\n+——[R3]——+",
				Characteristics: []string{
					"Same voltage across every branch",
					"Current is divided",
					"1/R_total = 1/R1 + 1/R2 + 1/R3",
				},
			},
		},
		Comparison: []ComparisonRow{
			{Aspect: "Current direction", DC: "One way", AC: "Alternating"},
			{Aspect: "Waveform", DC: "Constant", AC: "Sinusoidal"},
			{Aspect: "Frequency", DC: "0 Hz", AC: "50/60 Hz"},
			{Aspect: "Source", DC: "Battery, accumulator", AC: "Grid, generator"},
			{Aspect: "Use", DC: "Electronics", AC: "Households"},
		},
		Waveforms: Waveforms(),
	}
}

// Waveforms samples a constant DC level and a sine AC wave of the same
// amplitude over two periods.
func Waveforms() Plot {
	return Plot{
		Title:  "DC vs AC waveforms",
		XLabel: "Time",
		YLabel: "Voltage (V)",
		Series: []PlotSeries{
			{Name: "DC", Style: StyleLine, Points: Constant(WaveAmplitude, 0, 4*math.Pi, WaveSamples)},
			{Name: "AC", Style: StyleLine, Points: Sample(func(t float64) float64 {
				return WaveAmplitude * math.Sin(t)
			}, 0, 4*math.Pi, WaveSamples)},
		},
	}
}
