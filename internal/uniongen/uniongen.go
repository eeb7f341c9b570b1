package uniongeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/uniongen/internal/codefmt"
	"github.com/sublee/uniongen/internal/uniongen/emit"
	"github.com/sublee/uniongen/internal/uniongen/parse"
)

// Uniongen generates union container code for the target package. Call
// [Build] and then [Generate] to get the generated code. All potential errors
// are returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Uniongen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	// unions maps union names to emitters in declaration order.
	unions *linkedhashmap.Map

	// specs holds the positions of union interface declarations to erase
	// from the merged output.
	specs map[token.Pos]struct{}
}

// New creates a new [Uniongen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Uniongen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Uniongen{
		p:      parser,
		ns:     codefmt.NewNS(pkg.Types.Scope()),
		buf:    &buf,
		w:      codefmt.NewWriter(&buf, pkg),
		unions: linkedhashmap.New(),
		specs:  make(map[token.Pos]struct{}),
	}, nil
}

// Build prepares code generation by parsing union declarations. All potential
// errors are returned by this method. It must be called before [Generate].
func (ug *Uniongen) Build() error {
	schemas, errs := ug.p.ParseUnions()
	errs = errors.Join(errs, ug.p.Validate())
	if errs != nil {
		return errs
	}

	for _, schema := range schemas {
		ug.unions.Put(schema.Name, emit.NewUnion(ug.ns, schema))
		ug.specs[schema.Spec.Pos()] = struct{}{}
	}
	return nil
}

// Empty reports whether the package declares no unions. It is meaningful
// after [Build].
func (ug *Uniongen) Empty() bool {
	return ug.unions.Size() == 0
}

// Generate generates union container code for the package. It must be called
// after [Build] succeeds.
func (ug *Uniongen) Generate() []byte {
	if ug.Empty() {
		return nil
	}
	ug.writeUnionCode()
	ug.mergeCode()
	return ug.frameCode()
}

// writeUnionCode writes the container types and capability methods for all
// unions in declaration order.
func (ug *Uniongen) writeUnionCode() {
	ug.w.Printf("// uniongen: union containers\n\n")

	it := ug.unions.Iterator()
	for it.Next() {
		union := it.Value().(*emit.Union)
		union.WriteCode(ug.w)
	}
}

// mergeCode copies non-uniongen code from the source files tagged with
// "//go:build uniongen". It erases uniongen directives and the union
// interface declarations, so the output keeps no reference to the uniongen
// package.
func (ug *Uniongen) mergeCode() {
	for _, file := range ug.p.UniongenGoFiles() {
		name := filepath.Base(ug.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Erase union interface declarations; the generated containers
			// take their place.
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.TypeSpec)
				if !ok {
					return true
				}
				if _, ok := ug.specs[spec.Pos()]; ok {
					c.Delete()
					return false
				}
				return true
			}, nil).(ast.Decl)

			// Erase union directives
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-directive values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					call, ok := ast.Unparen(spec.Values[i]).(*ast.CallExpr)
					if ok && ug.p.IsDirective(call, "") {
						continue
					}

					names = append(names, spec.Names[i])
					values = append(values, spec.Values[i])
				}

				if len(names) == 0 {
					// Input:  var ( _ = uniongen.Union[Value]() )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( _, n = uniongen.Union[Value](), 42 )
					// Output: var ( n = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(ug.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(ug.w, decl)

			// Write rewritten declaration code
			printer.Fprint(ug.buf, ug.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(ug.buf, "\n\n")
		}
	}
}

func (ug *Uniongen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !uniongen\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/uniongen%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", ug.p.Pkg().Name)

	if len(ug.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range ug.w.Imports() {
			// Check for remaining uniongen import
			if imp.Path() == "github.com/sublee/uniongen" {
				fmt.Println("uniongen import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, ug.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
