package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeAsRefCode writes one read-only accessor per case. The accessor copies
// the payload, so the container stays untouched.
//
//	func (v Value) AsNumber() (int64, bool) {
//		if v.kind != valueKindNumber {
//			var zero int64
//			return zero, false
//		}
//		return v.number, true
//	}
func (u *Union) writeAsRefCode(w *codefmt.Writer) {
	name := u.schema.Name

	for i, c := range u.schema.Cases {
		w.Printf("// As%s returns the %s payload. It reports false when %s holds\n", c.Name, c.Name, u.recv)
		w.Printf("// something else.\n")
		w.Printf("func (%s %s) As%s() (%t, bool) {\n", u.recv, name, c.Name, c.Payload)
		w.Printf("if %s.kind != %s {\n", u.recv, u.kindConsts[i])
		w.Printf("var zero %t\n", c.Payload)
		w.Printf("return zero, false\n")
		w.Printf("}\n")
		w.Printf("return %s.%s, true\n", u.recv, u.fields[i])
		w.Printf("}\n\n")
	}
}
