//go:build uniongen

package main

import (
	"strings"

	"github.com/sublee/uniongen"
)

type Token interface {
	Word(string)
	Count(int)
}

var _ = uniongen.Union[Token](uniongen.From | uniongen.TryAsRef)

// repeat repeats w n times separated by spaces. It is merged into the
// generated file.
func repeat(w string, n int) string {
	return strings.TrimSpace(strings.Repeat(w+" ", n))
}
