package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"dc-circuit-lab/internal/formula"
)

const (
	resultSheet   = "Result"
	maxSheetName  = 31
	badSheetChars = `[]:*?/\'`
)

// WriteXLSX writes a workbook with a result sheet and one sheet of sampled
// points per plot series.
func WriteXLSX(w io.Writer, ev formula.Evaluation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultSheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Calculator", ev.Calculator.String()},
		{},
		{"Input", "Value"},
	}
	for _, in := range Inputs(ev) {
		rows = append(rows, []any{in[0], in[1]})
	}
	rows = append(rows, []any{}, []any{"Quantity", "Value", "Unit", "Formula", "Derivation"})
	for _, r := range append([]formula.CalculationResult{ev.Result}, ev.Steps...) {
		rows = append(rows, []any{r.Quantity, r.Value, r.Unit, r.Formula, r.Derivation})
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return err
		}
	}

	for i, s := range ev.Plot.Series {
		name := SheetName(i, s.Name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := f.SetSheetRow(name, "A1", &[]any{ev.Plot.XLabel, ev.Plot.YLabel}); err != nil {
			return err
		}
		for j, p := range s.Points {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			if err := f.SetSheetRow(name, cell, &[]any{p.X, p.Y}); err != nil {
				return err
			}
		}
		if len(s.Points) > 1 {
			if err := addScatter(f, name, s.Name, len(s.Points)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func addScatter(f *excelize.File, sheet, title string, n int) error {
	ref := fmt.Sprintf("'%s'!$%%s$2:$%%s$%d", sheet, n+1)
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       title,
			Categories: fmt.Sprintf(ref, "A", "A"),
			Values:     fmt.Sprintf(ref, "B", "B"),
		}},
		Title: []excelize.RichTextRun{{Text: title}},
	})
}

// SheetName builds a unique, Excel-safe sheet name for the i-th series.
func SheetName(i int, series string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(badSheetChars, r) {
			return '_'
		}
		return r
	}, series)
	name := fmt.Sprintf("%d %s", i+1, clean)
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
