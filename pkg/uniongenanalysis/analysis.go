package uniongenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/uniongen/internal/codefmt"
	uniongeninternal "github.com/sublee/uniongen/internal/uniongen"
)

// Analyzer validates the usage of uniongen in the package.
var Analyzer = &analysis.Analyzer{
	Name: "uniongen",
	Doc:  "linter for uniongen usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	ug, err := uniongeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := ug.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
				continue
			}

			// Classified schema errors wrap a single positioned error.
			if u, ok := err.(interface{ Unwrap() error }); ok {
				if inner := u.Unwrap(); inner != nil {
					errs = append(errs, inner)
				}
			}
		}
	}

	return nil, nil
}
