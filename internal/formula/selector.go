package formula

import (
	"errors"
	"fmt"
)

// ErrUnknownSelector is returned when a calculator, target, variant or
// arrangement name does not match any known value.
var ErrUnknownSelector = errors.New("unknown selector")

// Calculator identifies one of the five formula families.
type Calculator int

const (
	CalcOhm Calculator = iota
	CalcResistance
	CalcPower
	CalcEnergy
	CalcEMF
)

var calculatorNames = [...]string{"ohm", "resistance", "power", "energy", "emf"}

// Calculators lists every calculator in display order.
func Calculators() []Calculator {
	return []Calculator{CalcOhm, CalcResistance, CalcPower, CalcEnergy, CalcEMF}
}

func (c Calculator) String() string { return nameOf(calculatorNames[:], int(c)) }

func (c Calculator) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Calculator) UnmarshalText(b []byte) error {
	v, err := parse("calculator", calculatorNames[:], string(b))
	*c = Calculator(v)
	return err
}

// ParseCalculator maps a calculator name such as "ohm" to its Calculator.
func ParseCalculator(s string) (Calculator, error) {
	var c Calculator
	err := c.UnmarshalText([]byte(s))
	return c, err
}

// OhmTarget is the unknown solved for by the Ohm's law calculator.
type OhmTarget int

const (
	OhmVoltage OhmTarget = iota
	OhmCurrent
	OhmResistance
)

var ohmTargetNames = [...]string{"voltage", "current", "resistance"}

func (t OhmTarget) String() string { return nameOf(ohmTargetNames[:], int(t)) }

func (t OhmTarget) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *OhmTarget) UnmarshalText(b []byte) error {
	v, err := parse("ohm target", ohmTargetNames[:], string(b))
	*t = OhmTarget(v)
	return err
}

// PowerVariant selects which pair of quantities power is computed from.
type PowerVariant int

const (
	PowerFromVI PowerVariant = iota
	PowerFromI2R
	PowerFromV2R
)

var powerVariantNames = [...]string{"vi", "i2r", "v2r"}

func (p PowerVariant) String() string { return nameOf(powerVariantNames[:], int(p)) }

func (p PowerVariant) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PowerVariant) UnmarshalText(b []byte) error {
	v, err := parse("power variant", powerVariantNames[:], string(b))
	*p = PowerVariant(v)
	return err
}

// EMFTarget is the unknown solved for by the EMF calculator. Current is
// always an input.
type EMFTarget int

const (
	EMFSource EMFTarget = iota
	EMFTerminal
	EMFInternal
)

var emfTargetNames = [...]string{"emf", "terminal", "internal"}

func (t EMFTarget) String() string { return nameOf(emfTargetNames[:], int(t)) }

func (t EMFTarget) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *EMFTarget) UnmarshalText(b []byte) error {
	v, err := parse("emf target", emfTargetNames[:], string(b))
	*t = EMFTarget(v)
	return err
}

// Arrangement is how a ResistorSet is wired.
type Arrangement int

const (
	Series Arrangement = iota
	Parallel
)

var arrangementNames = [...]string{"series", "parallel"}

func (a Arrangement) String() string { return nameOf(arrangementNames[:], int(a)) }

func (a Arrangement) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Arrangement) UnmarshalText(b []byte) error {
	v, err := parse("arrangement", arrangementNames[:], string(b))
	*a = Arrangement(v)
	return err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

// parse resolves s against names. The empty string selects the first value.
func parse(kind string, names []string, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownSelector)
}
