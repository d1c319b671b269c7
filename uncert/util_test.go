// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, in, want, got)
		}
	}
}

// cdf1 adapts a family's vectorized CDF to a scalar function over the
// single row of p.
func cdf1(t *testing.T, d Dist, p Params) func(float64) float64 {
	return func(x float64) float64 {
		t.Helper()
		out, err := d.CDF(p, [][]float64{{x}})
		if err != nil {
			t.Fatalf("CDF(%v) failed: %v", x, err)
		}
		return out[0][0]
	}
}

// ppf1 is the PPF analog of cdf1.
func ppf1(t *testing.T, d Dist, p Params) func(float64) float64 {
	return func(pt float64) float64 {
		t.Helper()
		out, err := d.PPF(p, [][]float64{{pt}})
		if err != nil {
			t.Fatalf("PPF(%v) failed: %v", pt, err)
		}
		return out[0][0]
	}
}

// testRoundTrip checks that CDF and PPF are mutual inverses on the
// single row of p.
func testRoundTrip(t *testing.T, d Dist, p Params, xs, pts []float64) {
	t.Helper()
	cdf, ppf := cdf1(t, d, p), ppf1(t, d, p)
	for _, x := range xs {
		if got := ppf(cdf(x)); !aeq(x, got) {
			t.Errorf("want PPF(CDF(%v)) = %v, got %v", x, x, got)
		}
	}
	for _, pt := range pts {
		if got := cdf(ppf(pt)); !aeq(pt, got) {
			t.Errorf("want CDF(PPF(%v)) = %v, got %v", pt, pt, got)
		}
	}
}
