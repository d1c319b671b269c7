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

// Uniform is the continuous uniform uncertainty family on
// [Minimum, Maximum].
type Uniform struct{}

func (Uniform) Validate(p Params) error {
	for i, row := range p {
		if math.IsNaN(row.Minimum) {
			return &InvalidParamsError{
				Field:  "minimum",
				Row:    i,
				Reason: "real minimum values are required for uniform uncertainties",
			}
		}
		if math.IsNaN(row.Maximum) {
			return &InvalidParamsError{
				Field:  "maximum",
				Row:    i,
				Reason: "real maximum values are required for uniform uncertainties",
			}
		}
		if row.Minimum >= row.Maximum {
			return &InvalidParamsError{
				Field:  "minimum",
				Row:    i,
				Reason: "minimum must be strictly less than maximum for uniform uncertainties",
			}
		}
	}
	return nil
}

func (Uniform) RandomVariables(p Params, n int, src rand.Source) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrSampleSize
	}
	src = defaultSource(src)
	out := make([][]float64, len(p))
	for i, row := range p {
		d := distuv.Uniform{Min: row.Minimum, Max: row.Maximum, Src: src}
		xs := make([]float64, n)
		for j := range xs {
			xs[j] = d.Rand()
		}
		out[i] = xs
	}
	return out, nil
}

func (Uniform) CDF(p Params, vals [][]float64) ([][]float64, error) {
	vals, err := checkInputs(p, vals)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.Uniform{Min: row.Minimum, Max: row.Maximum}
		for j, x := range vals[i] {
			vals[i][j] = d.CDF(x)
		}
	}
	return vals, nil
}

func (Uniform) PPF(p Params, pcts [][]float64) ([][]float64, error) {
	pcts, err := checkInputs(p, pcts)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.Uniform{Min: row.Minimum, Max: row.Maximum}
		for j, pt := range pcts[i] {
			pcts[i][j] = quantileOrNaN(d, pt)
		}
	}
	return pcts, nil
}

// Statistics returns the closed-form summary of a one-row table. The
// mode of a uniform distribution is undefined and reported as NaN.
func (Uniform) Statistics(p Params, transform bool) (Statistics, error) {
	row, err := oneRow(p)
	if err != nil {
		return Statistics{}, err
	}
	mid := (row.Minimum + row.Maximum) / 2
	return Statistics{
		Median: mid,
		Mode:   nan,
		Mean:   mid,
		Lower:  row.Minimum,
		Upper:  row.Maximum,
	}, nil
}

// PDF generates the density curve for a one-row table. The default
// domain is the support widened by a twentieth of the range on each
// side, so the curve visibly drops to zero at the edges.
func (Uniform) PDF(p Params, xs []float64) ([]float64, []float64, error) {
	row, err := oneRow(p)
	if err != nil {
		return nil, nil, err
	}
	if xs == nil {
		margin := (row.Maximum - row.Minimum) / 20
		xs = floats.Span(make([]float64, DefaultCurvePoints), row.Minimum-margin, row.Maximum+margin)
	} else {
		xs = append([]float64(nil), xs...)
	}
	d := distuv.Uniform{Min: row.Minimum, Max: row.Maximum}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return xs, ys, nil
}
