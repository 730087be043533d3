package circuit

import (
	"fmt"
	"math"

	"dc-circuit-lab/internal/formula"
)

// EvaluateRequest is the JSON body for every POST /circuit/{calculator}
// endpoint. Omitted fields keep the calculator defaults.
type EvaluateRequest struct {
	Target      string `json:"target,omitempty"`      // ohm: voltage|current|resistance, emf: emf|terminal|internal
	Variant     string `json:"variant,omitempty"`     // power: vi|i2r|v2r
	Arrangement string `json:"arrangement,omitempty"` // resistance: series|parallel
	formula.CircuitInput
}

// NewEvaluateRequest returns a request pre-filled with the defaults of calc.
func NewEvaluateRequest(calc formula.Calculator) EvaluateRequest {
	return EvaluateRequest{CircuitInput: formula.Defaults(calc)}
}

// Validate rejects NaN and infinite inputs.
func (req EvaluateRequest) Validate() error {
	in := req.CircuitInput
	named := []struct {
		name string
		v    float64
	}{
		{"voltage", in.Voltage},
		{"current", in.Current},
		{"resistance", in.Resistance},
		{"emf", in.EMF},
		{"internal_resistance", in.InternalResistance},
		{"power", in.Power},
		{"hours", in.Hours},
	}
	for _, n := range named {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return fmt.Errorf("%s=%g is not finite", n.name, n.v)
		}
	}
	for i, r := range in.Resistors {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("resistors[%d]=%g is not finite", i, r)
		}
	}
	return nil
}

// Request resolves the selector that belongs to calc.
func (req EvaluateRequest) Request(calc formula.Calculator) (formula.Request, error) {
	out := formula.Request{Calculator: calc, Input: req.CircuitInput}

	var err error
	switch calc {
	case formula.CalcOhm:
		err = out.OhmTarget.UnmarshalText([]byte(req.Target))
	case formula.CalcEMF:
		err = out.EMFTarget.UnmarshalText([]byte(req.Target))
	case formula.CalcPower:
		err = out.Power.UnmarshalText([]byte(req.Variant))
	case formula.CalcResistance:
		err = out.Arrangement.UnmarshalText([]byte(req.Arrangement))
	}
	return out, err
}

// checkFinite reports the first NaN or infinite number in ev. Finite
// inputs can still overflow, e.g. P = V × I with V near MaxFloat64.
func checkFinite(ev formula.Evaluation) error {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

	if bad(ev.Result.Value) {
		return fmt.Errorf("%s=%g overflows", ev.Result.Symbol, ev.Result.Value)
	}
	for _, s := range ev.Steps {
		if bad(s.Value) {
			return fmt.Errorf("%s=%g overflows", s.Symbol, s.Value)
		}
	}
	for _, s := range ev.Plot.Series {
		for _, p := range s.Points {
			if bad(p.X) || bad(p.Y) {
				return fmt.Errorf("series %q point (%g, %g) overflows", s.Name, p.X, p.Y)
			}
		}
	}
	return nil
}

// EvaluateResponse is the JSON response for POST /circuit/{calculator}.
type EvaluateResponse struct {
	formula.Evaluation
	Warnings []string `json:"warnings,omitempty"`
}

const zeroDenominatorWarning = "division by zero: the undefined result was reported as 0"

func newEvaluateResponse(ev formula.Evaluation) EvaluateResponse {
	resp := EvaluateResponse{Evaluation: ev}
	if ev.ZeroDenominator() {
		resp.Warnings = append(resp.Warnings, zeroDenominatorWarning)
	}
	return resp
}
