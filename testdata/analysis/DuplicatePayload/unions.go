//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Size interface {
	Width(int64)
	Height(int64) // want `case Height duplicates payload type int64`
}

var _ = uniongen.Union[Size]()
