// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncert

import (
	"errors"
	"testing"
)

func TestFamilyDist(t *testing.T) {
	checks := []struct {
		f    Family
		want Dist
		name string
	}{
		{FamilyLognormal, Lognormal{}, "lognormal"},
		{FamilyNormal, Normal{}, "normal"},
		{FamilyUniform, Uniform{}, "uniform"},
		{FamilyTriangular, Triangular{}, "triangular"},
	}
	for _, c := range checks {
		d, err := c.f.Dist()
		if err != nil {
			t.Errorf("%v.Dist() failed: %v", c.f, err)
			continue
		}
		if d != c.want {
			t.Errorf("want %v.Dist() = %T, got %T", c.f, c.want, d)
		}
		if c.f.String() != c.name {
			t.Errorf("want %q, got %q", c.name, c.f.String())
		}
	}

	if _, err := Family(9).Dist(); err == nil {
		t.Error("want an error for an unknown family id")
	}
}

func TestCheckInputs(t *testing.T) {
	p := Params{{Scale: 1, Shape: 1}, {Scale: 2, Shape: 1}}

	in := [][]float64{{1, 2}, {3, 4}}
	out, err := checkInputs(p, in)
	if err != nil {
		t.Fatal(err)
	}
	out[0][0] = 99
	if in[0][0] != 1 {
		t.Error("shaped input aliases the caller's matrix")
	}

	out, err = checkInputs(p, [][]float64{{5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0][0] != 5 || out[1][0] != 5 {
		t.Errorf("want the single row broadcast to both rows, got %v", out)
	}
	out[0][0] = 99
	if out[1][0] != 5 {
		t.Error("broadcast rows alias each other")
	}

	for _, bad := range [][][]float64{nil, {{1}, {2}, {3}}} {
		_, err := checkInputs(p, bad)
		var ibe *ImproperBoundsError
		if !errors.As(err, &ibe) {
			t.Errorf("want *ImproperBoundsError for %d rows, got %v", len(bad), err)
		}
	}
}
