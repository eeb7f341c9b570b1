// Package pkgtest loads small in-memory packages for tests. It type-checks
// source strings directly instead of materializing a module on disk, so tests
// can exercise the parser and the emitter without a build step.
package pkgtest

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// Load type-checks the given files as a single package and returns it in the
// [packages.Package] shape the parser expects. File names map to source code.
// The import path "github.com/sublee/uniongen" resolves to the real directive
// package of this repository.
func Load(t *testing.T, pkgPath string, files map[string]string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var syntax []*ast.File
	for _, name := range names {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err)
		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	cfg := &types.Config{Importer: &pkgImporter{fset: fset}}
	pkg, err := cfg.Check(pkgPath, fset, syntax, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      pkg.Name(),
		PkgPath:   pkgPath,
		Types:     pkg,
		Fset:      fset,
		Syntax:    syntax,
		TypesInfo: info,
	}
}

// pkgImporter resolves imports during [Load]. The directive package is
// type-checked from this repository's source. Everything else falls back to
// the source importer over GOROOT.
type pkgImporter struct {
	fset     *token.FileSet
	uniongen *types.Package
}

func (im *pkgImporter) Import(path string) (*types.Package, error) {
	if path == "github.com/sublee/uniongen" {
		if im.uniongen == nil {
			pkg, err := im.importUniongen()
			if err != nil {
				return nil, err
			}
			im.uniongen = pkg
		}
		return im.uniongen, nil
	}

	return importer.ForCompiler(im.fset, "source", nil).Import(path)
}

func (im *pkgImporter) importUniongen() (*types.Package, error) {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("cannot locate repository root")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(self)))

	file, err := parser.ParseFile(im.fset, filepath.Join(root, "uniongen.go"), nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	cfg := &types.Config{Importer: importer.ForCompiler(im.fset, "source", nil)}
	return cfg.Check("github.com/sublee/uniongen", im.fset, []*ast.File{file}, nil)
}
