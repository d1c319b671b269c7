// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// A Dist is a parametric distribution family. Every operation takes a
// whole parameter table and processes all rows in one pass; the
// per-row meaning of the Param fields is up to the family.
//
// Callers must Validate a table before trusting the other operations
// on it. The other operations do not re-validate; on a malformed table
// they may return NaNs rather than a diagnosis.
type Dist interface {
	// Validate checks required-field presence and domain
	// constraints for every row. It returns an
	// *InvalidParamsError naming the first offending field.
	Validate(p Params) error

	// RandomVariables draws n independent variates per row. The
	// result has one slice of n values per parameter row. A nil
	// src means a time-seeded source; pass an explicit source for
	// reproducible draws.
	RandomVariables(p Params, n int, src rand.Source) ([][]float64, error)

	// CDF evaluates the cumulative distribution function at the
	// given abscissae. vals must have either one row, which is
	// broadcast across all parameter rows, or exactly one row per
	// parameter row. The caller's matrix is not modified.
	CDF(p Params, vals [][]float64) ([][]float64, error)

	// PPF evaluates the quantile function (inverse CDF) at the
	// given probabilities, shaped like the vals argument of CDF.
	// Probabilities outside [0, 1] yield NaN.
	PPF(p Params, pcts [][]float64) ([][]float64, error)

	// Statistics returns the closed-form summary of a single-row
	// table. If transform is set, the row's Negative flag is first
	// derived from the sign of its Loc. Multi-row tables are an
	// *ImproperBoundsError.
	Statistics(p Params, transform bool) (Statistics, error)

	// PDF returns a probability density curve for a single-row
	// table as equal-length abscissae and ordinates. A nil xs
	// synthesizes a default domain from the row's bounds or its
	// dispersion. ys is non-negative throughout.
	PDF(p Params, xs []float64) (xsOut, ys []float64, err error)
}

// ErrSampleSize is returned by RandomVariables when the requested
// sample count is not positive.
var ErrSampleSize = errors.New("uncert: sample size must be positive")

// DefaultRangeStdDevs is the number of standard deviations a
// synthesized density curve domain extends to on each side when a row
// carries no explicit bound.
const DefaultRangeStdDevs = 2.2

// DefaultCurvePoints is the number of evenly spaced abscissae in a
// synthesized density curve domain.
const DefaultCurvePoints = 200

// A Family identifies a distribution family. It is the tag a caller
// stores alongside a parameter table to record which family the
// table's rows parameterize.
type Family int

const (
	FamilyLognormal  Family = 2
	FamilyNormal     Family = 3
	FamilyUniform    Family = 4
	FamilyTriangular Family = 5
)

// Dist returns the distribution family identified by f.
func (f Family) Dist() (Dist, error) {
	switch f {
	case FamilyLognormal:
		return Lognormal{}, nil
	case FamilyNormal:
		return Normal{}, nil
	case FamilyUniform:
		return Uniform{}, nil
	case FamilyTriangular:
		return Triangular{}, nil
	}
	return nil, fmt.Errorf("uncert: unknown distribution family %d", int(f))
}

func (f Family) String() string {
	switch f {
	case FamilyLognormal:
		return "lognormal"
	case FamilyNormal:
		return "normal"
	case FamilyUniform:
		return "uniform"
	case FamilyTriangular:
		return "triangular"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// checkInputs shapes vals to one slice per parameter row: a one-row
// input is broadcast across all rows, a matching-row-count input
// passes through. The result is a fresh copy, so callers of CDF and
// PPF never see their own matrix change.
func checkInputs(p Params, vals [][]float64) ([][]float64, error) {
	switch {
	case len(vals) == len(p) && len(p) > 0:
	case len(vals) == 1:
		bcast := make([][]float64, len(p))
		for i := range bcast {
			bcast[i] = vals[0]
		}
		vals = bcast
	default:
		return nil, &ImproperBoundsError{Want: len(p), Got: len(vals)}
	}
	out := make([][]float64, len(vals))
	for i, row := range vals {
		out[i] = append([]float64(nil), row...)
	}
	return out, nil
}

// oneRow unwraps a single-row parameter table.
func oneRow(p Params) (Param, error) {
	if len(p) != 1 {
		return Param{}, &ImproperBoundsError{Want: 1, Got: len(p)}
	}
	return p[0], nil
}

func negate(xs []float64) {
	for i := range xs {
		xs[i] = -xs[i]
	}
}

func defaultSource(src rand.Source) rand.Source {
	if src != nil {
		return src
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// quantileOrNaN guards a kernel's quantile function, which panics
// outside [0, 1].
func quantileOrNaN(d interface{ Quantile(float64) float64 }, p float64) float64 {
	if !(0 <= p && p <= 1) {
		return nan
	}
	return d.Quantile(p)
}
