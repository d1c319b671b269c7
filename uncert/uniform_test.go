// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestUniformValidate(t *testing.T) {
	var u Uniform

	if err := u.Validate(Params{{Minimum: -1, Maximum: 1}, {Minimum: 0, Maximum: 10}}); err != nil {
		t.Errorf("want valid table to pass, got %v", err)
	}

	bad := []struct {
		name  string
		p     Params
		field string
	}{
		{"NaN minimum", Params{{Minimum: nan, Maximum: 1}}, "minimum"},
		{"NaN maximum", Params{{Minimum: 0, Maximum: nan}}, "maximum"},
		{"inverted bounds", Params{{Minimum: 2, Maximum: 1}}, "minimum"},
		{"empty support", Params{{Minimum: 1, Maximum: 1}}, "minimum"},
	}
	for _, test := range bad {
		var ipe *InvalidParamsError
		if err := u.Validate(test.p); !errors.As(err, &ipe) || ipe.Field != test.field {
			t.Errorf("%s: want *InvalidParamsError on %q, got %v", test.name, test.field, err)
		}
	}
}

func TestUniformCDF(t *testing.T) {
	p := Params{{Minimum: 2, Maximum: 6}}
	testFunc(t, "CDF", cdf1(t, Uniform{}, p), map[float64]float64{
		1: 0,
		2: 0,
		4: 0.5,
		6: 1,
		7: 1,
	})
	testFunc(t, "PPF", ppf1(t, Uniform{}, p), map[float64]float64{
		0:    2,
		0.25: 3,
		0.5:  4,
		1:    6,
	})
	testRoundTrip(t, Uniform{}, p,
		[]float64{2.5, 4, 5.5},
		[]float64{0.1, 0.5, 0.9})
}

func TestUniformStatistics(t *testing.T) {
	s, err := Uniform{}.Statistics(Params{{Minimum: 2, Maximum: 6}}, false)
	if err != nil {
		t.Fatal(err)
	}
	if s.Median != 4 || s.Mean != 4 {
		t.Errorf("want median = mean = 4, got %+v", s)
	}
	if !math.IsNaN(s.Mode) {
		t.Errorf("want undefined mode, got %v", s.Mode)
	}
	if s.Lower != 2 || s.Upper != 6 {
		t.Errorf("want interval [2, 6], got [%v, %v]", s.Lower, s.Upper)
	}
}

func TestUniformRandomVariables(t *testing.T) {
	out, err := Uniform{}.RandomVariables(Params{{Minimum: -1, Maximum: 1}}, 500, rand.NewSource(3))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range out[0] {
		if x < -1 || x >= 1 {
			t.Fatalf("want samples in [-1, 1), got %v", x)
		}
	}
}

func TestUniformPDF(t *testing.T) {
	xs, ys, err := Uniform{}.PDF(Params{{Minimum: 2, Maximum: 6}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// The default domain widens the support so the curve's edges
	// are visible.
	if !aeq(1.8, xs[0]) || !aeq(6.2, xs[len(xs)-1]) {
		t.Errorf("want domain [1.8, 6.2], got [%v, %v]", xs[0], xs[len(xs)-1])
	}
	if ys[0] != 0 || ys[len(ys)-1] != 0 {
		t.Errorf("want zero density outside the support, got %v and %v", ys[0], ys[len(ys)-1])
	}
	mid := len(ys) / 2
	if !aeq(0.25, ys[mid]) {
		t.Errorf("want density 0.25 inside the support, got %v", ys[mid])
	}
}
