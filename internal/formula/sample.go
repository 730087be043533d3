package formula

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Sample evaluates fn at n evenly spaced points over [xMin, xMax],
// both ends included. n <= 0 yields an empty curve and n == 1 a single
// point at xMin.
func Sample(fn func(x float64) float64, xMin, xMax float64, n int) CurveSample {
	switch {
	case n <= 0:
		return CurveSample{}
	case n == 1:
		return CurveSample{{X: xMin, Y: fn(xMin)}}
	}
	xs := floats.Span(make([]float64, n), xMin, xMax)
	out := make(CurveSample, n)
	for i, x := range xs {
		out[i] = Point{X: x, Y: fn(x)}
	}
	return out
}

// Constant samples the horizontal line y = c.
func Constant(c, xMin, xMax float64, n int) CurveSample {
	return Sample(func(float64) float64 { return c }, xMin, xMax, n)
}

// Marker is a single-point curve highlighting the actual input pair.
func Marker(x, y float64) CurveSample {
	return CurveSample{{X: x, Y: y}}
}

// divide returns a/b, or 0 with zero set when b is zero.
func divide(a, b float64) (q float64, zero bool) {
	if b == 0 {
		return 0, true
	}
	return a / b, false
}

// num formats an input value the way it was entered.
func num(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// fixed formats a computed value with prec decimals.
func fixed(x float64, prec int) string { return strconv.FormatFloat(x, 'f', prec, 64) }
