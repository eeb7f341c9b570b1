//go:build uniongen

package main

import "github.com/sublee/uniongen"

type Value interface {
	Number()
}

var _ = uniongen.Union[Value]()
