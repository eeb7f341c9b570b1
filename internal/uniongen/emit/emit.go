// Package emit renders the container type and the capability surface for
// parsed union schemas.
package emit

import (
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sublee/uniongen"
	"github.com/sublee/uniongen/internal/codefmt"
	"github.com/sublee/uniongen/internal/uniongen/parse"
)

// Union emits code for a single union schema. Exported names follow the
// schema so that generated API is predictable. Unexported names go through
// the namespace to dodge conflicts with user code.
type Union struct {
	schema *parse.Schema

	recv       string
	varIn      string
	kindType   string
	kindConsts []string
	fields     []string
}

// NewUnion resolves the names the union will emit. ns must hold every name
// declared in the package so unexported names never conflict.
func NewUnion(ns codefmt.NS, schema *parse.Schema) *Union {
	kindType := ns.Name(lowerFirst(schema.Name) + "Kind")

	kindConsts := make([]string, len(schema.Cases))
	for i, c := range schema.Cases {
		kindConsts[i] = ns.Name(kindType + c.Name)
	}

	fieldNS := make(codefmt.NS)
	fieldNS.Reserve("kind")
	fields := make([]string, len(schema.Cases))
	for i, c := range schema.Cases {
		fields[i] = fieldNS.Name(lowerFirst(c.Name))
	}

	// Receiver and parameter names must not shadow anything the method
	// bodies reference, but they never share a scope: constructors have no
	// receiver and methods take no parameter. Resolve each against its own
	// throwaway copy of the package namespace.
	recv := codefmt.NS(maps.Clone(ns)).Name(firstLetter(schema.Name))
	varIn := codefmt.NS(maps.Clone(ns)).Name("v")

	return &Union{
		schema:     schema,
		recv:       recv,
		varIn:      varIn,
		kindType:   kindType,
		kindConsts: kindConsts,
		fields:     fields,
	}
}

// Name returns the container type name.
func (u *Union) Name() string { return u.schema.Name }

// WriteCode writes the container type followed by the requested capabilities
// in a fixed order.
func (u *Union) WriteCode(w *codefmt.Writer) {
	u.writeContainerCode(w)

	caps := u.schema.Caps
	if caps&uniongen.From != 0 {
		u.writeFromCode(w)
	}
	if caps&uniongen.TryInto != 0 {
		u.writeTryIntoCode(w)
	}
	if caps&uniongen.TryAsRef != 0 {
		u.writeAsRefCode(w)
	}
	if caps&uniongen.TryAsMut != 0 {
		u.writeAsMutCode(w)
	}
	if caps&uniongen.TypedContainer != 0 {
		u.writeTypedContainerCode(w)
	}
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func firstLetter(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToLower(string(r))
}
