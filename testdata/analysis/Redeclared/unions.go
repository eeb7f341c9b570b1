//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var (
	_ = uniongen.Union[Value]()
	_ = uniongen.Union[Value](uniongen.From) // want `union Value redeclared`
)
