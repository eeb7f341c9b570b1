//go:build uniongen

package main

import "github.com/sublee/uniongen"

// Value holds one scalar out of a number, a text, or a flag.
type Value interface {
	Number(int64)
	Text(string)
	Flag(bool)
}

var _ = uniongen.Union[Value]()
