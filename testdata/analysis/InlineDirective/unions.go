//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value]()

func init() {
	_ = uniongen.Union[Value]() // want `uniongen.Union must be a package-level blank assignment`
}
