package analyze

import (
	"context"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"idwire/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	// Dir is the directory packages are resolved from; empty means the
	// current directory.
	Dir string
	// Context cancels the underlying go list call when set.
	Context context.Context
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./ident", "idwire/ident").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.Dir,
		Context: a.Context,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// processPackage extracts the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[id] = analyzeNamed(id, named)
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

func analyzeNamed(id TypeID, named *types.Named) *TypeInfo {
	info := &TypeInfo{
		ID:     id,
		GoType: named,
	}

	basic, ok := named.Underlying().(*types.Basic)
	switch {
	case !ok:
		info.Kind = TypeKindOther
	case basic.Info()&types.IsInteger != 0:
		info.Kind = TypeKindInteger
		info.Primitive = basicKind(basic)
		info.Validates = hasValidator(named)
	default:
		info.Kind = TypeKindBasic
	}

	return info
}

func basicKind(b *types.Basic) primitive.KindEnum {
	switch b.Kind() {
	case types.Int:
		return primitive.KindInt
	case types.Int8:
		return primitive.KindInt8
	case types.Int16:
		return primitive.KindInt16
	case types.Int32:
		return primitive.KindInt32
	case types.Int64:
		return primitive.KindInt64
	case types.Uint:
		return primitive.KindUint
	case types.Uint8:
		return primitive.KindUint8
	case types.Uint16:
		return primitive.KindUint16
	case types.Uint32:
		return primitive.KindUint32
	case types.Uint64:
		return primitive.KindUint64
	default:
		// uintptr and untyped kinds never cross the boundary
		return 0
	}
}

// hasValidator reports whether the value method set of t has IsValid() bool.
func hasValidator(t *types.Named) bool {
	sel := types.NewMethodSet(t).Lookup(t.Obj().Pkg(), "IsValid")
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	res, ok := sig.Results().At(0).Type().(*types.Basic)

	return ok && res.Kind() == types.Bool
}
