package formula

import (
	"errors"
	"fmt"
)

// ErrResistorCount is returned when a ResistorSet has fewer than
// MinResistors or more than MaxResistors elements.
var ErrResistorCount = errors.New("resistor count out of range")

const (
	MinResistors = 2
	MaxResistors = 5
)

// CircuitInput is the complete set of scalar inputs for one evaluation.
// Each calculator reads only the fields it needs.
type CircuitInput struct {
	Voltage            float64     `json:"voltage"`             // V
	Current            float64     `json:"current"`             // A
	Resistance         float64     `json:"resistance"`          // Ω
	EMF                float64     `json:"emf"`                 // V
	InternalResistance float64     `json:"internal_resistance"` // Ω
	Power              float64     `json:"power"`               // W
	Hours              float64     `json:"hours"`               // h
	Resistors          ResistorSet `json:"resistors,omitempty"` // Ω each
}

// ResistorSet is an ordered list of resistances, labelled R1..Rn.
type ResistorSet []float64

// Validate checks the set has between MinResistors and MaxResistors elements.
func (rs ResistorSet) Validate() error {
	if len(rs) < MinResistors || len(rs) > MaxResistors {
		return fmt.Errorf("%d resistors, want %d-%d: %w", len(rs), MinResistors, MaxResistors, ErrResistorCount)
	}
	return nil
}

// Total returns the equivalent resistance for the given arrangement.
func (rs ResistorSet) Total(a Arrangement) float64 {
	switch a {
	case Parallel:
		return ParallelTotal(rs)
	default:
		return SeriesTotal(rs)
	}
}

// Scale returns a copy with every resistor multiplied by k.
func (rs ResistorSet) Scale(k float64) ResistorSet {
	out := make(ResistorSet, len(rs))
	for i, r := range rs {
		out[i] = r * k
	}
	return out
}

// CalculationResult is a single computed quantity together with the
// formula and the substituted derivation shown to the student.
type CalculationResult struct {
	Symbol     string  `json:"symbol"`
	Quantity   string  `json:"quantity"`
	Unit       string  `json:"unit"`
	Value      float64 `json:"value"`
	Formula    string  `json:"formula"`
	Derivation string  `json:"derivation"`

	// ZeroDenominator is set when the formula divided by zero and 0 was
	// substituted for the undefined value.
	ZeroDenominator bool `json:"zero_denominator,omitempty"`
}

// Point is one (x, y) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CurveSample is a materialised curve ordered by increasing X.
type CurveSample []Point

// Xs returns the x coordinates.
func (c CurveSample) Xs() []float64 {
	xs := make([]float64, len(c))
	for i, p := range c {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates.
func (c CurveSample) Ys() []float64 {
	ys := make([]float64, len(c))
	for i, p := range c {
		ys[i] = p.Y
	}
	return ys
}

// SeriesStyle hints how a series is drawn.
type SeriesStyle string

const (
	StyleLine      SeriesStyle = "line"
	StyleMarker    SeriesStyle = "marker"
	StyleReference SeriesStyle = "reference"
)

// PlotSeries is a named curve inside a Plot.
type PlotSeries struct {
	Name   string      `json:"name"`
	Style  SeriesStyle `json:"style"`
	Points CurveSample `json:"points"`
}

// Plot is the chart dataset produced alongside a result.
type Plot struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Series []PlotSeries `json:"series"`
}

// Evaluation is the full output of one calculator run.
type Evaluation struct {
	Calculator Calculator          `json:"calculator"`
	Input      CircuitInput        `json:"input"`
	Result     CalculationResult   `json:"result"`
	Steps      []CalculationResult `json:"steps,omitempty"`
	Plot       Plot                `json:"plot"`
}

// ZeroDenominator reports whether any result in the evaluation hit the
// zero-denominator substitution.
func (e Evaluation) ZeroDenominator() bool {
	if e.Result.ZeroDenominator {
		return true
	}
	for _, s := range e.Steps {
		if s.ZeroDenominator {
			return true
		}
	}
	return false
}

// Request selects a calculator and carries its input. Only the selector
// belonging to Calculator is consulted.
type Request struct {
	Calculator  Calculator
	Input       CircuitInput
	OhmTarget   OhmTarget
	Power       PowerVariant
	EMFTarget   EMFTarget
	Arrangement Arrangement
}
