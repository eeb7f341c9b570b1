//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type base interface {
	Number(int64)
}

type Value interface {
	base // want `union Value cannot embed base`
	Text(string)
}

var _ = uniongen.Union[Value]()
