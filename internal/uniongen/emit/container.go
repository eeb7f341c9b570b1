package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeContainerCode writes the container struct and its kind enumeration.
// The zero kind is reserved for the empty container, so case kinds start at
// one.
func (u *Union) writeContainerCode(w *codefmt.Writer) {
	name := u.schema.Name

	w.Printf("// %s holds at most one of its payloads at a time. The zero %s holds\n", name, name)
	w.Printf("// nothing.\n")
	w.Printf("type %s struct {\n", name)
	w.Printf("kind %s\n", u.kindType)
	for i, c := range u.schema.Cases {
		w.Printf("%s %t\n", u.fields[i], c.Payload)
	}
	w.Printf("}\n\n")

	w.Printf("type %s uint8\n\n", u.kindType)

	w.Printf("const (\n")
	for i := range u.schema.Cases {
		if i == 0 {
			w.Printf("%s %s = iota + 1\n", u.kindConsts[i], u.kindType)
		} else {
			w.Printf("%s\n", u.kindConsts[i])
		}
	}
	w.Printf(")\n\n")
}
