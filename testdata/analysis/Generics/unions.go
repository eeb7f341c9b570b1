//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Box[T any] interface {
	Item(T)
}

var _ = uniongen.Union[Box[int64]]() // want `cannot declare union for generic type Box\[int64\]`
