// Package analyze loads the engine's Go packages and extracts the named
// integer types that can be declared as wire identifiers.
//
// It uses golang.org/x/tools/go/packages with go/types to build a small
// model of every exported defined type whose underlying type is a basic
// integer.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: the wire kind of the underlying integer and whether the
//     type validates its own values (IsValid() bool)
//   - TypeGraph: all analyzed types by ID and by package
package analyze
