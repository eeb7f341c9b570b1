//go:build !uniongen

package main

import (
	"fmt"

	"github.com/sublee/uniongen/pkg/unionkit"
)

func main() {
	v := ValueOfNumber(42)

	if n, ok := v.AsNumber(); ok {
		fmt.Println("number:", n)
	}
	if _, ok := v.AsText(); !ok {
		fmt.Println("not text")
	}

	// A failed conversion hands the container back untouched.
	res := v.TryIntoText()
	if rest, ok := res.Rest(); ok {
		fmt.Println("still number:", unionkit.Must(rest.AsNumber()))
	}

	fmt.Println("unwrapped:", v.TryIntoNumber().Unwrap())

	if p, ok := v.MutNumber(); ok {
		*p++
	}
	fmt.Println("mutated:", unionkit.Must(v.AsNumber()))

	fmt.Println("type:", v.PayloadType())
	fmt.Println("holds int64:", unionkit.Holds[int64](v))
	fmt.Println("holds string:", unionkit.Holds[string](v))

	var zero Value
	fmt.Println("zero type:", zero.PayloadType())
}
