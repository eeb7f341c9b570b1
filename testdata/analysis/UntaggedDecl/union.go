//go:build uniongen

package testdata

import "github.com/sublee/uniongen"

var _ = uniongen.Union[Value]() // want `union type Value must be declared in a file with "//go:build uniongen" constraint`
