//go:build !uniongen

package main

import "fmt"

func main() {
	t := TokenOfWord("go")
	w, _ := t.AsWord()
	fmt.Println(repeat(w, 3))

	if _, ok := t.AsCount(); !ok {
		fmt.Println("no count")
	}
}
