// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pdist reads distribution parameter rows from stdin, one per line,
// and describes each distribution.
//
// Each line names a family followed by its parameters:
//
//	lognormal <scale> <shape> [-]
//	normal <loc> <scale>
//	uniform <min> <max>
//	triangular <min> <mode> <max>
//
// A trailing "-" on a lognormal row mirrors the quantity onto the
// negative reals. Blank lines and lines starting with "#" are
// ignored.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-uncert/uncert"
)

var quantiles = []float64{0.025, 0.25, 0.5, 0.75, 0.975}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := describe(line); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineno, err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func describe(line string) error {
	d, row, err := parseRow(line)
	if err != nil {
		return err
	}
	p := uncert.Params{row}
	if err := d.Validate(p); err != nil {
		return err
	}

	s, err := d.Statistics(p, false)
	if err != nil {
		return err
	}
	fmt.Println(line)
	fmt.Printf("  median %.6g  mode %.6g  mean %.6g  95%% [%.6g, %.6g]\n",
		s.Median, s.Mode, s.Mean, s.Lower, s.Upper)

	out, err := d.PPF(p, [][]float64{quantiles})
	if err != nil {
		return err
	}
	for i, q := range quantiles {
		fmt.Printf("  %5.3g%% %.6g\n", q*100, out[0][i])
	}
	return nil
}

func parseRow(line string) (uncert.Dist, uncert.Param, error) {
	fields := strings.Fields(line)
	row := uncert.Param{Minimum: uncert.Unbounded, Maximum: uncert.Unbounded}

	var d uncert.Dist
	var args []*float64
	switch fields[0] {
	case "lognormal":
		d = uncert.Lognormal{}
		args = []*float64{&row.Scale, &row.Shape}
		if len(fields) == len(args)+2 && fields[len(fields)-1] == "-" {
			row.Negative = true
			fields = fields[:len(fields)-1]
		}
	case "normal":
		d = uncert.Normal{}
		args = []*float64{&row.Loc, &row.Scale}
	case "uniform":
		d = uncert.Uniform{}
		args = []*float64{&row.Minimum, &row.Maximum}
	case "triangular":
		d = uncert.Triangular{}
		args = []*float64{&row.Minimum, &row.Loc, &row.Maximum}
	default:
		return nil, row, fmt.Errorf("unknown distribution family %q", fields[0])
	}

	if len(fields) != len(args)+1 {
		return nil, row, fmt.Errorf("%s takes %d parameters, got %d", fields[0], len(args), len(fields)-1)
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, row, fmt.Errorf("bad parameter %q: %v", fields[i+1], err)
		}
		*arg = v
	}
	return d, row, nil
}
