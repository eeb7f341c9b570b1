//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
	Text(string)
	Flag(bool)
}

type Shape interface {
	Circle(float64)
	Rect([2]float64)
}

var (
	_ = uniongen.Union[Value]()
	_ = uniongen.Union[Shape](uniongen.From | uniongen.TryAsRef)
)
