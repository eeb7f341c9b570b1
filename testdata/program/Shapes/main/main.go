//go:build !uniongen

package main

import "fmt"

func main() {
	s := ShapeOfCircle(1.5)
	if r, ok := s.AsCircle(); ok {
		fmt.Println("circle:", r)
	}
	if _, ok := s.AsRect(); !ok {
		fmt.Println("not rect")
	}

	e := EventOfName("started")
	fmt.Println("event:", e.TryIntoName().Unwrap())
	fmt.Println("event type:", e.PayloadType())
}
