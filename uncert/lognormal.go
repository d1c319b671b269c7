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

// Lognormal is the lognormal uncertainty family.
//
// Scale is the log-domain location ("mu") and Shape the log-domain
// dispersion ("sigma"); both must be positive. Sampling and the
// closed-form statistics read Scale as mu directly, while CDF, PPF,
// and PDF feed Scale to the kernel's scale slot, so quantiles come out
// as Scale*exp(Shape*z).
//
// The log transform loses sign information, so a negative modeled
// quantity sets Negative on its row instead of a negative mu. Inputs
// for mirrored rows are negated before entering the positive-domain
// kernel and outputs negated on the way back out.
type Lognormal struct{}

// Validate checks that every row has a real, positive Scale and
// Shape. Mean parameters are log-transformed, so the usual any-real
// location rule does not apply here.
func (Lognormal) Validate(p Params) error {
	for i, row := range p {
		if math.IsNaN(row.Scale) || row.Scale <= 0 {
			return &InvalidParamsError{
				Field:  "scale",
				Row:    i,
				Reason: "real, positive scale (mu) values are required for lognormal uncertainties; negative mu's should have Negative set",
			}
		}
		if math.IsNaN(row.Shape) || row.Shape <= 0 {
			return &InvalidParamsError{
				Field:  "shape",
				Row:    i,
				Reason: "real, positive shape (sigma) values are required for lognormal uncertainties",
			}
		}
	}
	return nil
}

// RandomVariables draws n lognormal variates per row with mu = Scale
// and sigma = Shape. The sign flip for mirrored rows happens after
// drawing; the generator itself only produces positive support.
func (Lognormal) RandomVariables(p Params, n int, src rand.Source) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrSampleSize
	}
	src = defaultSource(src)
	out := make([][]float64, len(p))
	for i, row := range p {
		d := distuv.LogNormal{Mu: row.Scale, Sigma: row.Shape, Src: src}
		xs := make([]float64, n)
		for j := range xs {
			xs[j] = d.Rand()
		}
		if row.Negative {
			negate(xs)
		}
		out[i] = xs
	}
	return out, nil
}

// CDF evaluates the cumulative distribution at the given abscissae.
// Mirrored rows have their abscissae negated first so the kernel sees
// the coordinate system it understands; the caller's matrix is copied,
// not modified.
func (Lognormal) CDF(p Params, vals [][]float64) ([][]float64, error) {
	vals, err := checkInputs(p, vals)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		xs := vals[i]
		if row.Negative {
			negate(xs)
		}
		d := lognormKernel(row)
		for j, x := range xs {
			if x <= 0 {
				xs[j] = 0
				continue
			}
			xs[j] = d.CDF(x)
		}
	}
	return vals, nil
}

// PPF evaluates the quantile function at the given probabilities.
// Inversion happens in positive-domain coordinates; mirrored rows are
// negated only at the end.
func (Lognormal) PPF(p Params, pcts [][]float64) ([][]float64, error) {
	pcts, err := checkInputs(p, pcts)
	if err != nil {
		return nil, err
	}
	for i, row := range p {
		d := lognormKernel(row)
		for j, pt := range pcts[i] {
			pcts[i][j] = quantileOrNaN(d, pt)
		}
		if row.Negative {
			negate(pcts[i])
		}
	}
	return pcts, nil
}

// Statistics returns the closed-form summary of a one-row table. The
// geometric mean exp(Scale) is the median. For mirrored rows the
// interval bounds are swapped before negation, keeping Lower <= Upper
// in the result.
func (Lognormal) Statistics(p Params, transform bool) (Statistics, error) {
	row, err := oneRow(p)
	if err != nil {
		return Statistics{}, err
	}
	if transform {
		row.Negative = row.Loc < 0
	}
	sign := 1.0
	if row.Negative {
		sign = -1
	}
	mu, sigma := row.Scale, row.Shape
	gmu, gsigma := math.Exp(mu), math.Exp(sigma)
	mean := math.Exp(mu + sigma*sigma/2)
	mode := math.Exp(mu - sigma*sigma)
	lower := gmu / (gsigma * gsigma)
	upper := gmu * (gsigma * gsigma)
	if row.Negative {
		lower, upper = upper, lower
	}
	return Statistics{
		Median: sign * gmu,
		Mode:   sign * mode,
		Mean:   sign * mean,
		Lower:  sign * lower,
		Upper:  sign * upper,
	}, nil
}

// PDF generates a probability density curve for a one-row table. With
// nil xs the domain spans DefaultRangeStdDevs geometric standard
// deviations around Scale, clipped to the absolute value of any
// explicit bound, with DefaultCurvePoints points. Mirrored rows get
// their abscissae negated on the way out, so xs runs high to low.
func (Lognormal) PDF(p Params, xs []float64) ([]float64, []float64, error) {
	row, err := oneRow(p)
	if err != nil {
		return nil, nil, err
	}
	if xs == nil {
		min := row.Minimum
		if math.IsNaN(min) {
			min = row.Scale / math.Pow(math.Exp(row.Shape), DefaultRangeStdDevs)
		} else {
			min = math.Abs(min)
		}
		max := row.Maximum
		if math.IsNaN(max) {
			max = row.Scale * math.Pow(math.Exp(row.Shape), DefaultRangeStdDevs)
		} else {
			max = math.Abs(max)
		}
		xs = floats.Span(make([]float64, DefaultCurvePoints), min, max)
	} else {
		xs = append([]float64(nil), xs...)
	}
	d := lognormKernel(row)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		if x <= 0 {
			continue
		}
		ys[i] = d.Prob(x)
	}
	if row.Negative {
		negate(xs)
	}
	return xs, ys, nil
}

// lognormKernel returns the positive-domain primitive for CDF, PPF,
// and PDF evaluation. Scale goes into the kernel's scale slot as-is
// (the log-location doubles as a location-scale parameter here),
// which pins the median at Scale rather than exp(Scale).
func lognormKernel(row Param) distuv.LogNormal {
	return distuv.LogNormal{Mu: math.Log(row.Scale), Sigma: row.Shape}
}
