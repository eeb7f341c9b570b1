package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeFromCode writes one constructor per case.
//
//	func ValueOfNumber(v int64) Value {
//		return Value{kind: valueKindNumber, number: v}
//	}
func (u *Union) writeFromCode(w *codefmt.Writer) {
	name := u.schema.Name

	for i, c := range u.schema.Cases {
		w.Printf("// %sOf%s returns a %s holding %s.\n", name, c.Name, name, c.Name)
		w.Printf("func %sOf%s(%s %t) %s {\n", name, c.Name, u.varIn, c.Payload, name)
		w.Printf("return %s{kind: %s, %s: %s}\n", name, u.kindConsts[i], u.fields[i], u.varIn)
		w.Printf("}\n\n")
	}
}
