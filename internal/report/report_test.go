package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dc-circuit-lab/internal/formula"
)

func parallelEvaluation(t *testing.T) formula.Evaluation {
	t.Helper()
	ev, err := formula.Resistance(formula.CircuitInput{Resistors: formula.ResistorSet{10, 20, 30}}, formula.Parallel)
	require.NoError(t, err)
	return ev
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)

	require.NoError(t, WritePDF(&buf, parallelEvaluation(t), now))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDFZeroDenominator(t *testing.T) {
	ev, err := formula.Ohm(formula.CircuitInput{Voltage: 12}, formula.OhmCurrent)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, ev, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteXLSX(t *testing.T) {
	ev := parallelEvaluation(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, ev))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Result", "1 Series", "2 Parallel"}, f.GetSheetList())

	calc, err := f.GetCellValue("Result", "B1")
	require.NoError(t, err)
	assert.Equal(t, "resistance", calc)

	rows, err := f.GetRows("2 Parallel")
	require.NoError(t, err)
	require.Len(t, rows, formula.ScaleSamples+1)
	assert.Equal(t, []string{"Scale factor", "Total resistance (Ω)"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
}

func TestInputs(t *testing.T) {
	ev := formula.Energy(formula.CircuitInput{Power: 100, Hours: 2})
	assert.Equal(t, [][2]string{{"Power", "100 W"}, {"Time", "2 h"}}, Inputs(ev))

	ev = parallelEvaluation(t)
	rows := Inputs(ev)
	require.Len(t, rows, 3)
	assert.Equal(t, [2]string{"R3", "30 Ω"}, rows[2])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "1 R = 10 Ω", SheetName(0, "R = 10 Ω"))
	assert.Equal(t, "2 a_b_c", SheetName(1, "a/b:c"))
	assert.Len(t, []rune(SheetName(0, "a very long series name that will not fit")), 31)
}
