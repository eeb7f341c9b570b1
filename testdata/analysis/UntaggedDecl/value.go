package testdata

type Value interface {
	Number(int64)
}
