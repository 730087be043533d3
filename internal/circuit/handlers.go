package circuit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"dc-circuit-lab/internal/chart"
	"dc-circuit-lab/internal/formula"
	"dc-circuit-lab/internal/handlers"
	"dc-circuit-lab/internal/observability"
	"dc-circuit-lab/internal/report"
)

// tracer is the circuit API's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("circuit")

const maxBodyBytes = 1 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// unknownLabel stands in for an unrecognised {calculator} in span names and
// metric attributes so arbitrary paths cannot grow label cardinality.
const unknownLabel = "unknown"

var errTrailingData = errors.New("unexpected data after JSON body")

// rendered is an encoded evaluation ready to be written.
type rendered struct {
	contentType string
	filename    string // set for downloads
	body        []byte
}

type renderFunc func(ev formula.Evaluation) (rendered, error)

// ---------------------------------------------------------------------------
// Handlers: evaluations
// ---------------------------------------------------------------------------

// Evaluate handles POST /circuit/{calculator}
func Evaluate(w http.ResponseWriter, r *http.Request) {
	handleEvaluation(w, r, "json", func(ev formula.Evaluation) (rendered, error) {
		b, err := json.Marshal(newEvaluateResponse(ev))
		return rendered{contentType: "application/json", body: b}, err
	})
}

// Chart handles POST /circuit/{calculator}/chart
func Chart(w http.ResponseWriter, r *http.Request) {
	handleEvaluation(w, r, "chart", func(ev formula.Evaluation) (rendered, error) {
		var buf bytes.Buffer
		err := chart.Render(&buf, ev.Plot, ev.Result.Derivation)
		return rendered{contentType: "text/html; charset=utf-8", body: buf.Bytes()}, err
	})
}

// Report handles POST /circuit/{calculator}/report.pdf
func Report(w http.ResponseWriter, r *http.Request) {
	handleEvaluation(w, r, "pdf", func(ev formula.Evaluation) (rendered, error) {
		var buf bytes.Buffer
		err := report.WritePDF(&buf, ev, time.Now())
		return rendered{
			contentType: "application/pdf",
			filename:    fmt.Sprintf("%s-report.pdf", ev.Calculator),
			body:        buf.Bytes(),
		}, err
	})
}

// Export handles POST /circuit/{calculator}/export.xlsx
func Export(w http.ResponseWriter, r *http.Request) {
	handleEvaluation(w, r, "xlsx", func(ev formula.Evaluation) (rendered, error) {
		var buf bytes.Buffer
		err := report.WriteXLSX(&buf, ev)
		return rendered{
			contentType: xlsxContentType,
			filename:    fmt.Sprintf("%s-samples.xlsx", ev.Calculator),
			body:        buf.Bytes(),
		}, err
	})
}

// handleEvaluation is the shared implementation for every evaluation
// endpoint: decode, validate, dispatch into the formula engine, record
// span/metrics/logs, then encode with render.
func handleEvaluation(w http.ResponseWriter, r *http.Request, format string, render renderFunc) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	calc, parseErr := formula.ParseCalculator(chi.URLParam(r, "calculator"))
	name := calc.String()
	if parseErr != nil {
		name = unknownLabel
	}

	// --- 1. Span ---
	ctx, span := tracer.Start(ctx, fmt.Sprintf("circuit.%s", name),
		trace.WithAttributes(
			attribute.String("circuit.calculator", name),
			attribute.String("circuit.format", format),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if parseErr != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "unknown calculator", parseErr, http.StatusNotFound, w)
		return
	}

	// --- 2. Decode and validate ---
	req := NewEvaluateRequest(calc)
	if err := decodeBody(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if err := req.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "invalid numeric input", err, http.StatusBadRequest, w)
		return
	}
	fr, err := req.Request(calc)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "invalid selector", err, http.StatusBadRequest, w)
		return
	}

	// --- 3. Evaluate (timed for histogram) ---
	start := time.Now()
	ev, err := formula.Evaluate(fr)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "invalid input", err, http.StatusBadRequest, w)
		return
	}
	if err := checkFinite(ev); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "result out of range", err, http.StatusBadRequest, w)
		return
	}

	// --- 4. Metrics ---
	attrs := metric.WithAttributes(attribute.String("calculator", name))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, ev.Result.Value, attrs)
	sampledPoints.Add(ctx, int64(countPoints(ev.Plot)), attrs)

	if ev.ZeroDenominator() {
		zeroDenomCount.Add(ctx, 1, attrs)
		span.AddEvent("zero_denominator")
		logger.Warn("zero denominator replaced by 0",
			zap.String("calculator", name),
			zap.String("formula", ev.Result.Formula),
			zap.String("request_id", requestID),
		)
	}

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.Float64("result", ev.Result.Value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("circuit.formula", ev.Result.Formula),
		attribute.Float64("circuit.result", ev.Result.Value),
	)

	// --- 5. Encode ---
	out, err := render(ev)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, "render failed", err, http.StatusInternalServerError, w)
		return
	}
	span.SetStatus(codes.Ok, "")

	logger.Info("circuit evaluation completed",
		zap.String("calculator", name),
		zap.String("format", format),
		zap.String("formula", ev.Result.Formula),
		zap.Float64("result", ev.Result.Value),
		zap.String("unit", ev.Result.Unit),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	w.Header().Set("Content-Type", out.contentType)
	if out.filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.filename))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(out.body)
}

// decodeBody decodes a single JSON value into dst. An empty body leaves
// dst as is.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func countPoints(p formula.Plot) int {
	n := 0
	for _, s := range p.Series {
		n += len(s.Points)
	}
	return n
}

// ---------------------------------------------------------------------------
// Handlers: static material
// ---------------------------------------------------------------------------

// Defaults handles GET /circuit/{calculator}/defaults
func Defaults(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "calculator")
	calc, err := formula.ParseCalculator(name)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	req := NewEvaluateRequest(calc)
	var sel formula.Request
	switch calc {
	case formula.CalcOhm:
		req.Target = sel.OhmTarget.String()
	case formula.CalcEMF:
		req.Target = sel.EMFTarget.String()
	case formula.CalcPower:
		req.Variant = sel.Power.String()
	case formula.CalcResistance:
		req.Arrangement = sel.Arrangement.String()
	}
	handlers.WriteJSON(w, http.StatusOK, req)
}

// Reference handles GET /circuit/reference
func Reference(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, formula.Reference())
}

// ReferenceChart handles GET /circuit/reference/chart and draws the DC and
// AC waveforms as two stacked charts.
func ReferenceChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := chart.RenderPage(&buf, chart.SplitSeries(formula.Waveforms())...); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("render reference chart", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
