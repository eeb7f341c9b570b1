package testdata

import "github.com/sublee/uniongen" // want `file must have "//go:build uniongen" constraint when importing uniongen`

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value]()
