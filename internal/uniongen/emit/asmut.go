package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeAsMutCode writes one mutable accessor per case. The pointer aliases
// the payload in place, so writes through it stay visible in the container.
//
//	func (v *Value) MutNumber() (*int64, bool) {
//		if v.kind != valueKindNumber {
//			return nil, false
//		}
//		return &v.number, true
//	}
func (u *Union) writeAsMutCode(w *codefmt.Writer) {
	name := u.schema.Name

	for i, c := range u.schema.Cases {
		w.Printf("// Mut%s returns a pointer to the %s payload. It reports false when\n", c.Name, c.Name)
		w.Printf("// %s holds something else.\n", u.recv)
		w.Printf("func (%s *%s) Mut%s() (*%t, bool) {\n", u.recv, name, c.Name, c.Payload)
		w.Printf("if %s.kind != %s {\n", u.recv, u.kindConsts[i])
		w.Printf("return nil, false\n")
		w.Printf("}\n")
		w.Printf("return &%s.%s, true\n", u.recv, u.fields[i])
		w.Printf("}\n\n")
	}
}
