//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var decl = uniongen.Union[Value]() // want `uniongen.Union must be assigned to the blank identifier`
