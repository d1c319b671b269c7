// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Triangular is the triangular uncertainty family on
// [Minimum, Maximum] with mode Loc.
type Triangular struct{}

func (Triangular) Validate(p Params) error {
	for i, row := range p {
		if math.IsNaN(row.Minimum) || math.IsNaN(row.Maximum) {
			field := "minimum"
			if !math.IsNaN(row.Minimum) {
				field = "maximum"
			}
			return &InvalidParamsError{
				Field:  field,
				Row:    i,
				Reason: "real minimum and maximum values are required for triangular uncertainties",
			}
		}
		if row.Minimum >= row.Maximum {
			return &InvalidParamsError{
				Field:  "minimum",
				Row:    i,
				Reason: "minimum must be strictly less than maximum for triangular uncertainties",
			}
		}
		if math.IsNaN(row.Loc) || row.Loc < row.Minimum || row.Loc > row.Maximum {
			return &InvalidParamsError{
				Field:  "loc",
				Row:    i,
				Reason: "loc (mode) values must lie within [minimum, maximum] for triangular uncertainties",
			}
		}
	}
	return nil
}

func (Triangular) RandomVariables(p Params, n int, src rand.Source) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrSampleSize
	}
	src = defaultSource(src)
	out := make([][]float64, len(p))
	for i, row := range p {
		d := distuv.NewTriangle(row.Minimum, row.Maximum, row.Loc, src)
		xs := make([]float64, n)
		for j := range xs {
			xs[j] = d.Rand()
		}
		out[i] = xs
	}
	return out, nil
}

func (Triangular) CDF(p Params, vals [][]float64) ([][]float64, error) {
	vals, err := checkInputs(p, vals)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.NewTriangle(row.Minimum, row.Maximum, row.Loc, nil)
		for j, x := range vals[i] {
			vals[i][j] = d.CDF(x)
		}
	}
	return vals, nil
}

func (Triangular) PPF(p Params, pcts [][]float64) ([][]float64, error) {
	pcts, err := checkInputs(p, pcts)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.NewTriangle(row.Minimum, row.Maximum, row.Loc, nil)
		for j, pt := range pcts[i] {
			pcts[i][j] = quantileOrNaN(d, pt)
		}
	}
	return pcts, nil
}

// Statistics returns the closed-form summary of a one-row table.
func (Triangular) Statistics(p Params, transform bool) (Statistics, error) {
	row, err := oneRow(p)
	if err != nil {
		return Statistics{}, err
	}
	a, b, c := row.Minimum, row.Maximum, row.Loc
	var median float64
	if c >= (a+b)/2 {
		median = a + math.Sqrt((b-a)*(c-a)/2)
	} else {
		median = b - math.Sqrt((b-a)*(b-c)/2)
	}
	return Statistics{
		Median: median,
		Mode:   c,
		Mean:   (a + b + c) / 3,
		Lower:  a,
		Upper:  b,
	}, nil
}

func (Triangular) PDF(p Params, xs []float64) ([]float64, []float64, error) {
	row, err := oneRow(p)
	if err != nil {
		return nil, nil, err
	}
	if xs == nil {
		xs = floats.Span(make([]float64, DefaultCurvePoints), row.Minimum, row.Maximum)
	} else {
		xs = append([]float64(nil), xs...)
	}
	d := distuv.NewTriangle(row.Minimum, row.Maximum, row.Loc, nil)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return xs, ys, nil
}
