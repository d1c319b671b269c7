// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"fmt"
	"math"
)

// Unbounded marks a Minimum or Maximum field as unset. Use
// math.IsNaN to test for it.
var Unbounded = math.NaN()

// A Param is one row of a parameter table. It fully specifies one
// random quantity's distribution; the meaning of each field depends on
// the distribution family reading it.
type Param struct {
	// Loc is the location parameter. For the normal family this
	// is the mean; for the triangular family it is the mode. The
	// lognormal family does not read it except to derive the
	// Negative flag from the modeled amount's sign.
	Loc float64

	// Scale is the general scale parameter. For the lognormal
	// family it is the log-domain location ("mu") and must be
	// positive; for the normal family it is the standard
	// deviation.
	Scale float64

	// Shape is the shape parameter. For the lognormal family it
	// is the log-domain dispersion ("sigma") and must be
	// positive. Shapeless families ignore it.
	Shape float64

	// Minimum and Maximum optionally bound the quantity. They are
	// required parameters for the uniform and triangular families;
	// elsewhere they only shape the default density curve domain.
	// Set them to Unbounded when absent.
	Minimum float64
	Maximum float64

	// Negative marks a quantity that is the negation of a
	// strictly-positive underlying variate. Families whose natural
	// support is positive-only mirror their inputs and outputs
	// across zero for rows with Negative set.
	Negative bool
}

// Params is a parameter table: one Param per independent random
// quantity. Operations never modify the table; output row i always
// corresponds to table row i.
type Params []Param

// Statistics is the closed-form summary of a single parameter row.
type Statistics struct {
	Median float64
	Mode   float64
	Mean   float64

	// Lower and Upper bound a 95%-like interval, with
	// Lower <= Upper even for mirrored rows. Families without a
	// defined interval leave them NaN.
	Lower float64
	Upper float64
}

// An InvalidParamsError reports a parameter row that violates a
// family's domain constraints, such as a non-positive lognormal
// sigma.
type InvalidParamsError struct {
	// Field is the offending parameter field ("scale", "shape",
	// "loc", "minimum", or "maximum").
	Field string

	// Row is the index of the offending row in the parameter
	// table.
	Row int

	// Reason states the violated domain constraint.
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("uncert: invalid %s in parameter row %d: %s", e.Field, e.Row, e.Reason)
}

// An ImproperBoundsError reports an input whose row count cannot be
// reconciled with the parameter table's row count.
type ImproperBoundsError struct {
	// Want is the required number of rows and Got the number
	// supplied.
	Want, Got int
}

func (e *ImproperBoundsError) Error() string {
	return fmt.Sprintf("uncert: improper input shape: got %d rows, want %d", e.Got, e.Want)
}
