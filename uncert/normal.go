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

// Normal is the normal (Gaussian) uncertainty family: Loc is the mean
// and Scale the standard deviation. The support already covers the
// negative reals, so the Negative flag is ignored.
type Normal struct{}

func (Normal) Validate(p Params) error {
	for i, row := range p {
		if math.IsNaN(row.Loc) {
			return &InvalidParamsError{
				Field:  "loc",
				Row:    i,
				Reason: "real loc (mean) values are required for normal uncertainties",
			}
		}
		if math.IsNaN(row.Scale) || row.Scale <= 0 {
			return &InvalidParamsError{
				Field:  "scale",
				Row:    i,
				Reason: "real, positive scale (standard deviation) values are required for normal uncertainties",
			}
		}
	}
	return nil
}

func (Normal) RandomVariables(p Params, n int, src rand.Source) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrSampleSize
	}
	src = defaultSource(src)
	out := make([][]float64, len(p))
	for i, row := range p {
		d := distuv.Normal{Mu: row.Loc, Sigma: row.Scale, Src: src}
		xs := make([]float64, n)
		for j := range xs {
			xs[j] = d.Rand()
		}
		out[i] = xs
	}
	return out, nil
}

func (Normal) CDF(p Params, vals [][]float64) ([][]float64, error) {
	vals, err := checkInputs(p, vals)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.Normal{Mu: row.Loc, Sigma: row.Scale}
		for j, x := range vals[i] {
			vals[i][j] = d.CDF(x)
		}
	}
	return vals, nil
}

func (Normal) PPF(p Params, pcts [][]float64) ([][]float64, error) {
	pcts, err := checkInputs(p, pcts)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := distuv.Normal{Mu: row.Loc, Sigma: row.Scale}
		for j, pt := range pcts[i] {
			pcts[i][j] = quantileOrNaN(d, pt)
		}
	}
	return pcts, nil
}

// Statistics returns the closed-form summary of a one-row table. The
// interval is the mean plus or minus two standard deviations.
func (Normal) Statistics(p Params, transform bool) (Statistics, error) {
	row, err := oneRow(p)
	if err != nil {
		return Statistics{}, err
	}
	return Statistics{
		Median: row.Loc,
		Mode:   row.Loc,
		Mean:   row.Loc,
		Lower:  row.Loc - 2*row.Scale,
		Upper:  row.Loc + 2*row.Scale,
	}, nil
}

func (Normal) PDF(p Params, xs []float64) ([]float64, []float64, error) {
	row, err := oneRow(p)
	if err != nil {
		return nil, nil, err
	}
	if xs == nil {
		min := row.Minimum
		if math.IsNaN(min) {
			min = row.Loc - DefaultRangeStdDevs*row.Scale
		}
		max := row.Maximum
		if math.IsNaN(max) {
			max = row.Loc + DefaultRangeStdDevs*row.Scale
		}
		xs = floats.Span(make([]float64, DefaultCurvePoints), min, max)
	} else {
		xs = append([]float64(nil), xs...)
	}
	d := distuv.Normal{Mu: row.Loc, Sigma: row.Scale}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return xs, ys, nil
}
