package decl

import (
	"idwire/wire"
)

// FromTable describes every rule of t. Types from pkgPath are written by
// name, types from other packages with their import path.
func FromTable(pkgPath string, t *wire.Table) *File {
	f := &File{
		Version: CurrentVersion,
		Package: pkgPath,
	}

	if t == nil {
		return f
	}

	for _, c := range t.Rules() {
		domain := c.Domain()

		typ := domain.Name()
		if domain.PkgPath() != pkgPath {
			typ = domain.PkgPath() + "." + domain.Name()
		}

		r := Rule{
			Type:    typ,
			Wire:    c.Wire().GoName(),
			Checked: c.Fallible(),
		}

		if c.Name() != domain.Name() {
			r.Name = c.Name()
		}

		f.Rules = append(f.Rules, r)
	}

	return f
}
