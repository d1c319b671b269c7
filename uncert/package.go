// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uncert provides vectorized parametric uncertainty
// distributions for uncertainty propagation.
//
// A caller holds a table of parameter rows, one row per independent
// random quantity, and applies one operation of a distribution family
// to the whole table at once: sampling, cumulative distribution
// evaluation, quantile (inverse CDF) evaluation, closed-form summary
// statistics, or probability density curve generation. All families
// share the same tabular parameter layout even though each assigns its
// own meaning to the fields.
package uncert // import "github.com/aclements/go-uncert/uncert"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
