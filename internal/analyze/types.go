package analyze

import (
	"go/types"

	"idwire/internal/common"
	"idwire/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "idwire/ident"
	Name    string // e.g., "PeerID"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindInteger          // defined type over a basic integer
	TypeKindBasic            // defined type over a non-integer basic type
	TypeKindOther            // struct, pointer, func, ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindInteger:
		return "integer"
	case TypeKindBasic:
		return "basic"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type of a loaded package.
type TypeInfo struct {
	ID        TypeID             // Unique identifier
	Kind      TypeKind           // Kind of type
	Primitive primitive.KindEnum // Underlying integer kind, zero unless Kind is TypeKindInteger
	Validates bool               // True if the type has an IsValid() bool method
	GoType    types.Type         // The original go/types.Type
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Resolve finds a type by "Name" within pkgPath or by a fully qualified
// "import/path.Name". Short forms such as "ident.PeerID" are not matched,
// since the declaration must name a loadable import path.
func (g *TypeGraph) Resolve(pkgPath, ref string) *TypeInfo {
	refPkg, name := common.SplitQualified(ref)
	if name == "" {
		return nil
	}

	if refPkg == "" {
		refPkg = pkgPath
	}

	return g.GetType(TypeID{PkgPath: refPkg, Name: name})
}

// TypeNames returns the names of the types loaded from pkgPath.
func (g *TypeGraph) TypeNames(pkgPath string) []string {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
