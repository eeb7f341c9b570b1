//go:build uniongen

package main

import (
	"strconv"

	"github.com/sublee/uniongen"
)

// Scalar is one JSON-ish scalar value.
type Scalar interface {
	Number(float64)
	Text(string)
	Flag(bool)
}

var _ = uniongen.Union[Scalar]()

// atof parses s as a float, defaulting to 0.
func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
