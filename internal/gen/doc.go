// Package gen emits the Go side of the foreign call boundary for a wire table.
//
// For every rule the generated file has a Lift function (wire primitive to
// domain type) and a Lower function (domain type to wire primitive), plus a
// BoundaryRules list the binding generator reads to learn the pairs.
//
// Generation uses text/template + go/format. Function bodies come from
// primitive.Generate, so they are plain conversions; rules whose domain type
// validates its values get a body that returns an error.
package gen
