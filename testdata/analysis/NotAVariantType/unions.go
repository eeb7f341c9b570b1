//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

type Plain struct{}

type Empty interface{} // want `union Empty must declare at least one case`

var (
	_ = uniongen.Union[int64]() // want `union type must be a named interface, not int64`
	_ = uniongen.Union[Plain]() // want `union type Plain must be an interface`
	_ = uniongen.Union[error]() // want `union type error must be declared in this package`
	_ = uniongen.Union[Empty]()
)
