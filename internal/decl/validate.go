package decl

import (
	"fmt"

	"idwire/internal/analyze"
	"idwire/internal/common"
	"idwire/internal/diagnostic"
	"idwire/internal/match"
	"idwire/primitive"
	"idwire/wire"
)

// Validate checks a declaration file against the type graph of the engine
// packages. It reports every declared type that is missing, has a different
// underlying integer than its wire primitive, or whose checked flag does not
// match whether the type validates its values.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeFileIsNil, "declaration file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError(diagnostic.CodeGraphIsNil, "type graph is nil", "", "")
		return res
	}

	validateHeader(res, f)

	for _, name := range common.Duplicates(f.Rules, func(r Rule) string { return r.RuleName() }) {
		res.AddError(diagnostic.CodeDuplicateRule, fmt.Sprintf("rule %q is declared more than once", name), name, "name")
	}

	for _, typ := range common.Duplicates(f.Rules, func(r Rule) string { return r.Qualified(f.Package) }) {
		res.AddError(diagnostic.CodeDuplicateRule, fmt.Sprintf("type %s is declared more than once", typ), "", "type")
	}

	for i := range f.Rules {
		validateRule(res, f, &f.Rules[i], graph)
	}

	return res
}

func validateHeader(res *diagnostic.Diagnostics, f *File) {
	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeUnsupportedVer,
			fmt.Sprintf("unsupported version %q, want %q", f.Version, CurrentVersion), "", "version")
	}

	if f.Package == "" {
		res.AddError(diagnostic.CodeMissingPackage, "package is required", "", "package")
	}
}

func validateRule(res *diagnostic.Diagnostics, f *File, r *Rule, graph *analyze.TypeGraph) {
	name := r.RuleName()

	if r.Type == "" {
		res.AddError(diagnostic.CodeEmptyType, "type is required", name, "type")
		return
	}

	if r.Disabled {
		res.AddWarning(diagnostic.CodeDisabledRule, "rule is declared but disabled", name, "disabled")
	}

	if _, typeName := common.SplitQualified(r.Type); !common.IsExportedName(typeName) {
		res.AddError(diagnostic.CodeUnexportedType, fmt.Sprintf("type %s is not exported", r.Type), name, "type")
		return
	}

	wireKind, ok := primitive.ParseKind(r.Wire)
	if !ok {
		res.AddError(diagnostic.CodeUnknownWire,
			fmt.Sprintf("unknown wire primitive %q%s", r.Wire, match.Hint(r.Wire, primitive.WireNames())), name, "wire")
		return
	}

	if !wireKind.IsFixedWidth() {
		res.AddError(diagnostic.CodeVariableWidth,
			fmt.Sprintf("wire primitive %s has a platform dependent width", r.Wire), name, "wire")
		return
	}

	info := graph.Resolve(f.Package, r.Type)
	if info == nil {
		refPkg, typeName := common.SplitQualified(r.Qualified(f.Package))
		res.AddError(diagnostic.CodeTypeNotFound,
			fmt.Sprintf("type %s not found%s", r.Qualified(f.Package), match.Hint(typeName, graph.TypeNames(refPkg))),
			name, "type")
		return
	}

	if info.Kind != analyze.TypeKindInteger || !primitive.IsBijective(info.Primitive, wireKind) {
		res.AddError(diagnostic.CodeKindMismatch,
			fmt.Sprintf("%s has underlying %s, which does not round-trip through %s",
				info.ID, describe(info), r.Wire), name, "wire")
		return
	}

	switch {
	case r.Checked && !info.Validates:
		res.AddError(diagnostic.CodeMissingValidator,
			fmt.Sprintf("checked rule needs %s to implement IsValid() bool", info.ID), name, "checked")
	case !r.Checked && info.Validates:
		res.AddError(diagnostic.CodeUncheckedDomain,
			fmt.Sprintf("%s implements IsValid() bool, declare the rule as checked", info.ID), name, "checked")
	}
}

func describe(info *analyze.TypeInfo) string {
	if info.Kind == analyze.TypeKindInteger {
		return info.Primitive.GoName()
	}

	return info.Kind.String() + " type"
}

// Compare reports drift between the enabled rules of a declaration file and
// a registered table.
func Compare(f *File, t *wire.Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeFileIsNil, "declaration file is nil", "", "")
		return res
	}

	if t == nil {
		res.AddError(diagnostic.CodeTableIsNil, "wire table is nil", "", "")
		return res
	}

	var registered []string
	for _, c := range t.Rules() {
		registered = append(registered, c.Name())
	}

	for i := range f.Rules {
		r := &f.Rules[i]
		name := r.RuleName()

		c, ok := t.LookupName(name)

		switch {
		case !ok && r.Disabled:
			continue
		case !ok:
			res.AddError(diagnostic.CodeUndeclaredRule,
				"rule is declared but not registered"+match.Hint(name, registered), name, "")
			continue
		case r.Disabled:
			res.AddInfo(diagnostic.CodeDisabledRule, "rule is registered but disabled in declarations", name, "disabled")
			continue
		}

		domain := c.Domain().PkgPath() + "." + c.Domain().Name()
		if domain != r.Qualified(f.Package) {
			res.AddError(diagnostic.CodeDomainMismatch,
				fmt.Sprintf("declared %s, registered %s", r.Qualified(f.Package), domain), name, "type")
		}

		if c.Wire().GoName() != r.Wire {
			res.AddError(diagnostic.CodeWireMismatch,
				fmt.Sprintf("declared %s, registered %s", r.Wire, c.Wire().GoName()), name, "wire")
		}

		if c.Fallible() != r.Checked {
			res.AddError(diagnostic.CodeCheckedMismatch,
				fmt.Sprintf("declared checked=%t, registered checked=%t", r.Checked, c.Fallible()), name, "checked")
		}
	}

	for _, c := range t.Rules() {
		if f.Find(c.Name()) == nil {
			res.AddError(diagnostic.CodeMissingRule, "rule is registered but not declared", c.Name(), "")
		}
	}

	return res
}
