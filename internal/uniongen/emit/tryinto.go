package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeTryIntoCode writes one consuming conversion per case. A failed
// conversion returns the container untouched so it can be retried against
// another case.
//
//	func (v Value) TryIntoNumber() unionkit.Result[int64, Value] {
//		if v.kind != valueKindNumber {
//			return unionkit.Fail[int64](v)
//		}
//		return unionkit.OK[int64, Value](v.number)
//	}
func (u *Union) writeTryIntoCode(w *codefmt.Writer) {
	name := u.schema.Name
	unionkit := w.Import("github.com/sublee/uniongen/pkg/unionkit", "unionkit")

	for i, c := range u.schema.Cases {
		w.Printf("// TryInto%s consumes %s and yields the %s payload, or gives %s back\n", c.Name, u.recv, c.Name, u.recv)
		w.Printf("// when it holds something else.\n")
		w.Printf("func (%s %s) TryInto%s() %s.Result[%t, %s] {\n", u.recv, name, c.Name, unionkit, c.Payload, name)
		w.Printf("if %s.kind != %s {\n", u.recv, u.kindConsts[i])
		w.Printf("return %s.Fail[%t](%s)\n", unionkit, c.Payload, u.recv)
		w.Printf("}\n")
		w.Printf("return %s.OK[%t, %s](%s.%s)\n", unionkit, c.Payload, name, u.recv, u.fields[i])
		w.Printf("}\n\n")
	}
}
