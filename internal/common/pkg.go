package common

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PkgName guesses the declared name of the package at pkgPath: the last
// path element that is not a major version suffix, cut at the first dot and
// reduced to letters, digits and underscores. It is only a guess; callers
// that know the real name should prefer it.
func PkgName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	elems := strings.Split(pkgPath, "/")

	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}

	name, _, _ = strings.Cut(name, ".")

	var b strings.Builder

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	res := b.String()
	if first, _ := utf8.DecodeRuneInString(res); res == "" || unicode.IsDigit(first) {
		res = "pkg" + res
	}

	return res
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// SplitQualified splits "pkg/path.Name" into its package path and name.
// A name without a dot has an empty package path.
func SplitQualified(s string) (pkgPath, name string) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return "", s
	}

	return s[:i], s[i+1:]
}

// IsExportedName reports whether name starts with an upper case letter.
func IsExportedName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
