package parse

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"iter"

	"github.com/sublee/uniongen"
	"github.com/sublee/uniongen/internal/codefmt"
	"github.com/sublee/uniongen/internal/typeinfo"
)

// Schema describes a single union declaration: the tagged interface along
// with its cases and the capabilities requested by the directive.
type Schema struct {
	// Name is the name of the union type, such as "Value".
	Name string

	// Named is the union interface type.
	Named *types.Named

	// Spec is the AST declaration of the union interface. It is erased from
	// the generated output and replaced by the container type.
	Spec *ast.TypeSpec

	// Cases holds the union cases in declaration order.
	Cases []Case

	// Caps are the capabilities requested by the directive. The zero value
	// never occurs; an empty directive means [uniongen.All].
	Caps uniongen.Capability

	// Pos is the position of the directive call.
	Pos token.Pos
}

// Case is a single case of a union: a name paired with exactly one payload
// type.
type Case struct {
	Name    string
	Payload typeinfo.Type
	Pos     token.Pos
}

// ParseUnions finds and parses all uniongen.Union directives in the tagged
// files. It collects all errors instead of stopping at the first one.
func (p *Parser) ParseUnions() ([]*Schema, error) {
	var errs error
	var schemas []*Schema

	declared := make(map[token.Pos]*Schema)
	for _, file := range p.UniongenGoFiles() {
		for id, call := range p.FindUnions(file) {
			if id.Name != "_" {
				err := codefmt.Errorf(p, id, "uniongen.Union must be assigned to the blank identifier")
				errs = errors.Join(errs, err)
			}

			schema, err := p.ParseUnion(call)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if prev, ok := declared[schema.Named.Obj().Pos()]; ok {
				err := codefmt.Errorf(p, call, `union %s redeclared
	previous declaration at %b`, schema.Name, prev.Pos)
				errs = errors.Join(errs, err)
				continue
			}

			declared[schema.Named.Obj().Pos()] = schema
			schemas = append(schemas, schema)
		}
	}

	return schemas, errs
}

// FindUnions collects and iterates package-level [uniongen.Union] calls. It
// does not collect inline calls.
func (p *Parser) FindUnions(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Union") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseUnion parses a [uniongen.Union] call expression and returns a new
// schema.
func (p *Parser) ParseUnion(call *ast.CallExpr) (*Schema, error) {
	named, err := p.parseUnionTypeArg(call)
	if err != nil {
		return nil, err
	}

	if named.TypeParams().Len() != 0 {
		return nil, p.schemaErrorf(ErrUnsupportedGenerics, call,
			"cannot declare union for generic type %t", named)
	}

	if _, ok := named.Underlying().(*types.Interface); !ok {
		return nil, p.schemaErrorf(ErrNotAVariantType, call,
			"union type %t must be an interface", named)
	}

	spec, ifaceType, ok := p.findInterfaceSpec(named)
	if !ok {
		return nil, codefmt.Errorf(p, call,
			`union type %t must be declared in a file with "//go:build uniongen" constraint`, named)
	}

	cases, err := p.parseCases(named, ifaceType)
	if err != nil {
		return nil, err
	}

	caps, err := p.parseCaps(call.Args)
	if err != nil {
		return nil, err
	}

	return &Schema{
		Name:  named.Obj().Name(),
		Named: named,
		Spec:  spec,
		Cases: cases,
		Caps:  caps,
		Pos:   call.Pos(),
	}, nil
}

// parseUnionTypeArg resolves the explicit type argument of a Union call to a
// named type declared in the target package.
func (p *Parser) parseUnionTypeArg(call *ast.CallExpr) (*types.Named, error) {
	idx, ok := ast.Unparen(call.Fun).(*ast.IndexExpr)
	if !ok {
		return nil, p.schemaErrorf(ErrNotAVariantType, call,
			"uniongen.Union requires an explicit type argument")
	}

	typ := p.Pkg().TypesInfo.TypeOf(idx.Index)
	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return nil, p.schemaErrorf(ErrNotAVariantType, idx.Index,
			"union type must be a named interface, not %t", typ)
	}

	if named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != p.Pkg().PkgPath {
		return nil, p.schemaErrorf(ErrNotAVariantType, idx.Index,
			"union type %t must be declared in this package", named)
	}

	return named, nil
}

// findInterfaceSpec locates the AST declaration of the named type in the
// tagged files.
func (p *Parser) findInterfaceSpec(named *types.Named) (*ast.TypeSpec, *ast.InterfaceType, bool) {
	pos := named.Obj().Pos()
	for _, file := range p.UniongenGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec, ok := spec.(*ast.TypeSpec)
				if !ok || spec.Name.Pos() != pos {
					continue
				}

				iface, ok := spec.Type.(*ast.InterfaceType)
				if !ok {
					return nil, nil, false
				}
				return spec, iface, true
			}
		}
	}
	return nil, nil, false
}

// parseCases extracts the cases from the interface AST in declaration order.
// Method sets from go/types are sorted, so the AST is the only place the
// source order survives.
func (p *Parser) parseCases(named *types.Named, iface *ast.InterfaceType) ([]Case, error) {
	var errs error
	var cases []Case

	for _, method := range iface.Methods.List {
		if len(method.Names) == 0 {
			err := p.schemaErrorf(ErrEmbeddedUnsupported, method,
				"union %t cannot embed %c", named, method.Type)
			errs = errors.Join(errs, err)
			continue
		}

		name := method.Names[0]
		fn, ok := method.Type.(*ast.FuncType)
		if !ok {
			// Interface methods always carry a FuncType.
			continue
		}

		c, err := p.parseCase(named, name, fn)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		cases = append(cases, c)
	}

	if errs != nil {
		return nil, errs
	}

	if len(cases) == 0 {
		return nil, p.schemaErrorf(ErrNotAVariantType, named.Obj(),
			"union %t must declare at least one case", named)
	}

	for i, c := range cases {
		for _, prev := range cases[:i] {
			if c.Payload.Identical(prev.Payload) {
				err := p.schemaErrorf(ErrDuplicatePayloadType, codefmt.Pos(c.Pos),
					`case %s duplicates payload type %t
	previous case %s at %b`, c.Name, c.Payload, prev.Name, prev.Pos)
				errs = errors.Join(errs, err)
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	return cases, nil
}

// parseCase validates a single case method and extracts its payload type.
func (p *Parser) parseCase(named *types.Named, name *ast.Ident, fn *ast.FuncType) (Case, error) {
	if fn.Results != nil && len(fn.Results.List) != 0 {
		return Case{}, p.schemaErrorf(ErrUnexpectedResults, fn.Results,
			"case %s.%s cannot declare results", named.Obj().Name(), name.Name)
	}

	if fn.Params == nil || len(fn.Params.List) == 0 {
		return Case{}, p.schemaErrorf(ErrMissingPayload, name,
			"case %s.%s must declare exactly one payload type", named.Obj().Name(), name.Name)
	}

	nParams := 0
	for _, param := range fn.Params.List {
		if len(param.Names) != 0 {
			return Case{}, p.schemaErrorf(ErrNamedFieldsUnsupported, param,
				"case %s.%s cannot name its payload", named.Obj().Name(), name.Name)
		}
		nParams++
	}
	if nParams > 1 {
		return Case{}, p.schemaErrorf(ErrTooManyFields, fn.Params,
			"case %s.%s must declare exactly one payload type, got %d", named.Obj().Name(), name.Name, nParams)
	}

	param := fn.Params.List[0]
	if _, ok := param.Type.(*ast.Ellipsis); ok {
		return Case{}, p.schemaErrorf(ErrTooManyFields, param,
			"case %s.%s cannot declare a variadic payload", named.Obj().Name(), name.Name)
	}

	payload := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(param.Type))
	return Case{Name: name.Name, Payload: payload, Pos: name.Pos()}, nil
}

// parseCaps folds the directive arguments into a capability set. An empty
// argument list means all capabilities.
func (p *Parser) parseCaps(args []ast.Expr) (uniongen.Capability, error) {
	if len(args) == 0 {
		return uniongen.All, nil
	}

	var errs error
	var caps uniongen.Capability
	for _, arg := range args {
		tv, ok := p.Pkg().TypesInfo.Types[arg]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
			err := codefmt.Errorf(p, arg, "capability must be a uniongen constant, got %c", arg)
			errs = errors.Join(errs, err)
			continue
		}

		val, ok := constant.Int64Val(tv.Value)
		if !ok || val <= 0 || uniongen.Capability(val)&^uniongen.All != 0 {
			err := codefmt.Errorf(p, arg, "unknown capability %c", arg)
			errs = errors.Join(errs, err)
			continue
		}

		caps |= uniongen.Capability(val)
	}
	if errs != nil {
		return 0, errs
	}

	return caps, nil
}

func (p *Parser) schemaErrorf(kind ErrorKind, poser codefmt.Poser, format string, args ...any) error {
	return &SchemaError{Kind: kind, err: codefmt.Errorf(p, poser, format, args...)}
}
