package formula

import "fmt"

// Evaluate dispatches req to its calculator.
func Evaluate(req Request) (Evaluation, error) {
	switch req.Calculator {
	case CalcOhm:
		return Ohm(req.Input, req.OhmTarget)
	case CalcResistance:
		return Resistance(req.Input, req.Arrangement)
	case CalcPower:
		return Power(req.Input, req.Power)
	case CalcEnergy:
		return Energy(req.Input), nil
	case CalcEMF:
		return EMFCalc(req.Input, req.EMFTarget)
	}
	return Evaluation{}, fmt.Errorf("calculator %d: %w", req.Calculator, ErrUnknownSelector)
}

// Defaults returns the initial input values for a calculator. The values
// cover every target of that calculator.
func Defaults(c Calculator) CircuitInput {
	switch c {
	case CalcOhm:
		return CircuitInput{Voltage: 12, Current: 1, Resistance: 10}
	case CalcResistance:
		return CircuitInput{Resistors: ResistorSet{10, 20, 30}}
	case CalcPower:
		return CircuitInput{Voltage: 12, Current: 2, Resistance: 10}
	case CalcEnergy:
		return CircuitInput{Power: 100, Hours: 2}
	case CalcEMF:
		return CircuitInput{EMF: 12, Voltage: 9, Current: 1, InternalResistance: 1}
	}
	return CircuitInput{}
}
