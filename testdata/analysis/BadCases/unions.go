//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Value interface {
	None()                // want `case Value.None must declare exactly one payload type`
	Named(n int64)        // want `case Value.Named cannot name its payload`
	Pair(int64, string)   // want `case Value.Pair must declare exactly one payload type, got 2`
	Variadic(...bool)     // want `case Value.Variadic cannot declare a variadic payload`
	Resulted(int64) error // want `case Value.Resulted cannot declare results`
}

var _ = uniongen.Union[Value]()
