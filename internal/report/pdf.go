// Package report renders evaluations as downloadable documents.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"dc-circuit-lab/internal/formula"
)

// The core PDF fonts are cp1252; these symbols have no glyph there.
var symbolReplacer = strings.NewReplacer("Ω", "Ohm", "ε", "EMF")

// Inputs lists the labelled input values a calculator reads.
func Inputs(ev formula.Evaluation) [][2]string {
	in := ev.Input
	f := func(v float64, unit string) string { return fmt.Sprintf("%g %s", v, unit) }

	switch ev.Calculator {
	case formula.CalcOhm:
		return [][2]string{
			{"Voltage", f(in.Voltage, "V")},
			{"Current", f(in.Current, "A")},
			{"Resistance", f(in.Resistance, "Ω")},
		}
	case formula.CalcResistance:
		rows := make([][2]string, len(in.Resistors))
		for i, r := range in.Resistors {
			rows[i] = [2]string{fmt.Sprintf("R%d", i+1), f(r, "Ω")}
		}
		return rows
	case formula.CalcPower:
		return [][2]string{
			{"Voltage", f(in.Voltage, "V")},
			{"Current", f(in.Current, "A")},
			{"Resistance", f(in.Resistance, "Ω")},
		}
	case formula.CalcEnergy:
		return [][2]string{
			{"Power", f(in.Power, "W")},
			{"Time", f(in.Hours, "h")},
		}
	case formula.CalcEMF:
		return [][2]string{
			{"EMF", f(in.EMF, "V")},
			{"Terminal voltage", f(in.Voltage, "V")},
			{"Current", f(in.Current, "A")},
			{"Internal resistance", f(in.InternalResistance, "Ω")},
		}
	}
	return nil
}

// WritePDF writes a one-page A4 report of ev.
func WritePDF(w io.Writer, ev formula.Evaluation, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(symbolReplacer.Replace(s)) }

	pdf.SetTitle("DC circuit calculation", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(fmt.Sprintf("DC circuit calculation: %s", ev.Calculator)))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	section(pdf, "Inputs")
	for _, row := range Inputs(ev) {
		pdf.CellFormat(60, 7, text(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, text(row[1]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Result")
	results := append([]formula.CalculationResult{ev.Result}, ev.Steps...)
	pdf.SetFont("Courier", "B", 11)
	for _, r := range results {
		pdf.MultiCell(0, 7, text(r.Derivation), "", "L", false)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text(fmt.Sprintf("%s = %.2f %s", ev.Result.Quantity, ev.Result.Value, ev.Result.Unit)))
	pdf.Ln(10)

	if ev.ZeroDenominator() {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: a zero denominator occurred; the undefined value was reported as 0.", "", "L", false)
		pdf.Ln(4)
	}

	section(pdf, text("Plot: "+ev.Plot.Title))
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []string{"Series", "Samples", "x range", "y range"} {
		pdf.CellFormat(45, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, s := range ev.Plot.Series {
		xMin, xMax := span(s.Points.Xs())
		yMin, yMax := span(s.Points.Ys())
		pdf.CellFormat(45, 7, text(s.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprint(len(s.Points)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f .. %.2f", xMin, xMax), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f .. %.2f", yMin, yMax), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func span(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return lo, hi
}
