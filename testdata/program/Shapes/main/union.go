//go:build uniongen

package main

import "github.com/sublee/uniongen"

type Shape interface {
	Circle(float64)
	Rect([2]float64)
}

type Event interface {
	ID(int64)
	Name(string)
}

var (
	_ = uniongen.Union[Shape](uniongen.From | uniongen.TryAsRef)
	_ = uniongen.Union[Event]()
)
