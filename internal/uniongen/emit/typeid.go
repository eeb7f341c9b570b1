package emit

import "github.com/sublee/uniongen/internal/codefmt"

// writeTypedContainerCode writes the PayloadType method, which makes the
// container satisfy [unionkit.Container].
//
//	func (v Value) PayloadType() reflect.Type {
//		switch v.kind {
//		case valueKindNumber:
//			return reflect.TypeFor[int64]()
//		}
//		return nil
//	}
func (u *Union) writeTypedContainerCode(w *codefmt.Writer) {
	name := u.schema.Name
	reflect := w.Import("reflect", "reflect")

	w.Printf("// PayloadType returns the type of the held payload, or nil when %s holds\n", u.recv)
	w.Printf("// nothing.\n")
	w.Printf("func (%s %s) PayloadType() %s.Type {\n", u.recv, name, reflect)
	w.Printf("switch %s.kind {\n", u.recv)
	for i, c := range u.schema.Cases {
		w.Printf("case %s:\n", u.kindConsts[i])
		w.Printf("return %s.TypeFor[%t]()\n", reflect, c.Payload)
	}
	w.Printf("}\n")
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}
