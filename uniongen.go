// Package uniongen provides directives for tagged-union code generation.
//
// A tagged union is a type that holds exactly one value out of a fixed set of
// payload types. Writing such a type by hand means writing a discriminant,
// constructors, checked accessors, and a type switch. All of that boilerplate
// only varies in the case names and payload types, so Uniongen generates it
// from a short declaration.
//
// To start with Uniongen, declare the union as an interface in a file with a
// build constraint:
//
//	//go:build uniongen
//
//	package vals
//
//	import "github.com/sublee/uniongen"
//
//	type Value interface {
//		Number(int64)
//		Text(string)
//		Flag(bool)
//	}
//
//	var _ = uniongen.Union[Value]()
//
// Each interface method declares one case: the method name is the case name
// and its single unnamed parameter is the payload type. Payload types must be
// unique within a union so that every derived conversion is unambiguous.
//
// After declaring unions, run the uniongen command. It will generate
// uniongen_gen.go for your package:
//
//	go run github.com/sublee/uniongen/cmd/uniongen
//
// The generated file carries a "//go:build !uniongen" constraint and replaces
// the interface with a concrete container struct:
//
//	// generated: (simplified)
//	type Value struct {
//		kind   valueKind
//		number int64
//		text   string
//		flag   bool
//	}
//
//	func ValueOfNumber(v int64) Value
//	func (v Value) TryIntoNumber() unionkit.Result[int64, Value]
//	func (v Value) AsNumber() (int64, bool)
//	func (v *Value) MutNumber() (*int64, bool)
//	func (v Value) PayloadType() reflect.Type
//
// Because the declaration and the generated code never share a build, files
// in the same package that use the generated API should carry a
// "//go:build !uniongen" constraint. Non-directive declarations in tagged
// files are carried over into the generated file, so helper code written
// against the generated API may live next to the declaration instead.
//
// # Capabilities
//
// Union takes [Capability] values selecting what to derive. With no
// arguments, everything is derived:
//
//	var _ = uniongen.Union[Value](uniongen.From | uniongen.TryInto)
//
//   - [From] derives one constructor per case, such as ValueOfNumber, which
//     wraps a payload into the union. It never fails.
//
//   - [TryInto] derives one conversion per case, such as TryIntoNumber, which
//     moves the payload out of the union. The result is a
//     [github.com/sublee/uniongen/pkg/unionkit.Result]: on a case mismatch it
//     carries the original union value back to the caller, so a failed
//     conversion never loses data and can be retried against another case.
//
//   - [TryAsRef] derives one read-only projection per case, such as AsNumber,
//     reporting the payload and whether the union currently holds that case.
//
//   - [TryAsMut] derives one mutable projection per case, such as MutNumber,
//     returning a pointer into the payload for in-place modification.
//
//   - [TypedContainer] derives PayloadType reporting the [reflect.Type] of
//     the currently held payload. It makes the union satisfy
//     [github.com/sublee/uniongen/pkg/unionkit.Container], so the generic
//     unionkit.Holds predicate applies to it.
//
// Callers that have already established the held case by other means can use
// unionkit.Must or Result.Unwrap to trade the fallible results for a panic on
// mismatch. The generated code itself never panics.
//
// # Diagnostics
//
// Declarations that do not fit the union shape are rejected at generation
// time with a position-annotated error, one per offending case: a case with
// no payload, a case naming its payload fields, a case with more than one
// payload, a duplicate payload type, an embedded interface, or a generic
// union. Nothing is generated for a package until all of its declarations are
// valid.
package uniongen

// Capability selects derived behaviors for a union. Capabilities combine
// with the | operator.
type Capability int

const (
	// From derives payload-to-union constructors.
	From Capability = 1 << iota
	// TryInto derives fallible union-to-payload conversions.
	TryInto
	// TryAsRef derives fallible read-only payload projections.
	TryAsRef
	// TryAsMut derives fallible mutable payload projections.
	TryAsMut
	// TypedContainer derives payload type identification.
	TypedContainer
)

// All derives every capability.
const All = From | TryInto | TryAsRef | TryAsMut | TypedContainer

// Decl is the result of a [Union] directive. It carries no information;
// directives exist to be found by the generator, not to be evaluated.
type Decl struct{}

// Union declares the interface type U as a tagged union and requests code
// generation for it. U must be a named interface declared in the same
// package, with one method per case and one unnamed parameter per method.
//
// The result must be assigned to the blank identifier at package level:
//
//	var _ = uniongen.Union[Value](uniongen.From | uniongen.TypedContainer)
//
// Passing no capabilities derives [All]. The directive, along with the
// interface declaration, is erased from the generated code.
func Union[U any](caps ...Capability) Decl {
	return Decl{}
}
