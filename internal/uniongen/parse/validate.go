package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/uniongen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Most validation rules live in [Parser.ParseUnion]. But some rules need to be
// checked globally. That's what this function does.
func (p *Parser) Validate() error {
	legal := p.findLegalDirectives()

	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectiveUsages(file, legal))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/uniongen"
// have "//go:build uniongen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find uniongen import
	var uniongenImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsUniongenImport(strings.Trim(imp.Path.Value, `"`)) {
			uniongenImport = imp
			break
		}
	}
	if uniongenImport == nil {
		return nil // No uniongen import found
	}

	// Check for "//go:build uniongen" constraint
	if hasGoBuildUniongen(file) {
		return nil // Constraint satisfied
	}

	// This file imports uniongen but has no "//go:build uniongen" constraint
	return codefmt.Errorf(p, uniongenImport, `file must have "//go:build uniongen" constraint when importing uniongen`)
}

// validateDirectiveUsages checks illegal uses of uniongen directives.
//
// Directives are only allowed as package-level blank assignments. Any other
// use is illegal, because directives will be removed at code generation, and
// any remaining references will cause compilation errors.
func (p *Parser) validateDirectiveUsages(file *ast.File, legal map[token.Pos]struct{}) error {
	if !hasGoBuildUniongen(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if _, ok := legal[call.Pos()]; ok {
			return false
		}

		err := codefmt.Errorf(p, call, "uniongen.%s must be a package-level blank assignment; removed at code generation", directive)
		errs = errors.Join(errs, err)
		return false
	})
	return errs
}

// findLegalDirectives collects the positions of directive calls found in the
// expected shape.
func (p *Parser) findLegalDirectives() map[token.Pos]struct{} {
	legal := make(map[token.Pos]struct{})
	for _, file := range p.UniongenGoFiles() {
		for _, call := range p.FindUnions(file) {
			legal[call.Pos()] = struct{}{}
		}
	}
	return legal
}
