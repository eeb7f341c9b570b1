package main

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value]()
