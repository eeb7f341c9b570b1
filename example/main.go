//go:build !uniongen

package main

import (
	"fmt"

	"github.com/sublee/uniongen/pkg/unionkit"
)

func main() {
	vals := []Scalar{
		ScalarOfNumber(atof("4.5")),
		ScalarOfText("hello"),
		ScalarOfFlag(true),
		{},
	}

	for _, v := range vals {
		fmt.Println(describe(v))
	}
}

// describe renders a scalar for display without knowing its case up front.
func describe(v Scalar) string {
	switch {
	case unionkit.Holds[float64](v):
		return fmt.Sprintf("number %.1f", unionkit.Must(v.AsNumber()))
	case unionkit.Holds[string](v):
		return fmt.Sprintf("text %q", unionkit.Must(v.AsText()))
	case unionkit.Holds[bool](v):
		return fmt.Sprintf("flag %v", unionkit.Must(v.AsFlag()))
	}
	return "empty"
}
