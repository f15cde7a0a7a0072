package decl

import (
	"idwire/internal/common"
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File represents the root of a declaration file.
type File struct {
	// Version of the declaration schema.
	Version string `yaml:"version,omitempty" hcl:"version,optional"`

	// Package is the import path type names are resolved against.
	Package string `yaml:"package" hcl:"package"`

	// Kinds is a shorthand of type name -> wire primitive for plain rules.
	// Normalize expands it into Rules.
	Kinds map[string]string `yaml:"kinds,omitempty" hcl:"kinds,optional"`

	// Rules lists one entry per identifier kind.
	Rules []Rule `yaml:"rules,omitempty" hcl:"rule,block"`
}

// Rule declares the wire encoding of one identifier kind.
type Rule struct {
	// Type is "Name" (relative to File.Package) or "import/path.Name".
	Type string `yaml:"type" hcl:"type,label"`

	// Wire is the Go name of the wire primitive, e.g. "uint64".
	Wire string `yaml:"wire" hcl:"wire"`

	// Name overrides the rule name, which defaults to the type name.
	Name string `yaml:"name,omitempty" hcl:"name,optional"`

	// Checked marks kinds whose wrap may fail with an invalid wire value.
	Checked bool `yaml:"checked,omitempty" hcl:"checked,optional"`

	// Disabled keeps the declaration without exporting the rule.
	Disabled bool `yaml:"disabled,omitempty" hcl:"disabled,optional"`

	// Doc is copied into generated code.
	Doc string `yaml:"doc,omitempty" hcl:"doc,optional"`
}

// RuleName returns the explicit name or the bare type name.
func (r *Rule) RuleName() string {
	if r.Name != "" {
		return r.Name
	}

	_, name := common.SplitQualified(r.Type)

	return name
}

// Qualified returns the fully qualified type reference of r within pkgPath.
func (r *Rule) Qualified(pkgPath string) string {
	refPkg, name := common.SplitQualified(r.Type)
	if refPkg == "" {
		refPkg = pkgPath
	}

	if refPkg == "" {
		return name
	}

	return refPkg + "." + name
}

// Enabled returns the rules that are not disabled.
func (f *File) Enabled() []Rule {
	var res []Rule

	for _, r := range f.Rules {
		if !r.Disabled {
			res = append(res, r)
		}
	}

	return res
}

// Find returns the rule with the given name, or nil.
func (f *File) Find(name string) *Rule {
	for i := range f.Rules {
		if f.Rules[i].RuleName() == name {
			return &f.Rules[i]
		}
	}

	return nil
}

// Packages returns the import paths the declared types live in, starting
// with the file's own package.
func (f *File) Packages() []string {
	var pkgs []string

	seen := map[string]struct{}{}
	add := func(p string) {
		if _, ok := seen[p]; ok || p == "" {
			return
		}

		seen[p] = struct{}{}
		pkgs = append(pkgs, p)
	}

	add(f.Package)

	for _, r := range f.Rules {
		refPkg, _ := common.SplitQualified(r.Type)
		add(refPkg)
	}

	return pkgs
}
