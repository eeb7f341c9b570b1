//go:build uniongen

package main

import "github.com/sublee/uniongen"

type Size interface {
	Width(int64)
	Height(int64)
}

var _ = uniongen.Union[Size]()
