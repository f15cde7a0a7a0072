package wire

import (
	"errors"
	"fmt"
	"reflect"

	"idwire/primitive"
)

// ErrUncheckedRule is reported by Newtype for domain types that validate their
// own values; those need a CheckedRule.
var ErrUncheckedRule = errors.New("domain type implements IsValid, use a checked rule")

// Integer is the set of fixed-width primitives allowed on the wire.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Validated is an integer domain type that rejects some of its bit patterns.
type Validated interface {
	Integer
	IsValid() bool
}

// Converter is the type-erased view of a rule stored in a Table.
type Converter interface {
	// Name is the rule name, unique within a table.
	Name() string
	// Domain is the declared domain type.
	Domain() reflect.Type
	// WireType is the declared wire primitive.
	WireType() reflect.Type
	// Wire is the kind of the wire primitive.
	Wire() primitive.KindEnum
	// Fallible reports whether lifting can fail with ErrInvalidWireValue.
	Fallible() bool
	// LiftAny converts a wire primitive into the domain type.
	LiftAny(v any) (any, error)
	// LowerAny converts a domain value into its wire primitive.
	LowerAny(v any) (any, error)
}

type header struct {
	name   string
	domain reflect.Type
	wire   reflect.Type
}

func (h header) Name() string             { return h.name }
func (h header) Domain() reflect.Type     { return h.domain }
func (h header) WireType() reflect.Type   { return h.wire }
func (h header) Wire() primitive.KindEnum { return primitive.FromReflectType(h.wire) }

func newHeader(name string, domain, wire reflect.Type) (header, error) {
	if name == "" {
		name = domain.Name()
	}

	// the wire side must be a predeclared primitive, the domain side a defined type
	if wire.PkgPath() != "" {
		return header{}, fmt.Errorf("%s: wire type %s is not a predeclared primitive: %w", name, wire, ErrLossyRule)
	}

	if domain.PkgPath() == "" {
		return header{}, fmt.Errorf("%s: domain type %s is not a defined type: %w", name, domain, ErrLossyRule)
	}

	domainKind := primitive.FromReflectType(domain)
	wireKind := primitive.FromReflectType(wire)
	if !primitive.IsBijective(domainKind, wireKind) {
		return header{}, fmt.Errorf("%s: %s (%s) <-> %s (%s): %w",
			name, domain, domainKind, wire, wireKind, ErrLossyRule)
	}

	return header{name: name, domain: domain, wire: wire}, nil
}

// Rule is the total, infallible conversion between a domain identifier type D
// and its wire primitive W.
type Rule[D, W Integer] struct {
	header
}

// Newtype builds the rule for domain type D carried as W. An empty name
// defaults to the name of D.
func Newtype[D, W Integer](name string) (Rule[D, W], error) {
	domain := reflect.TypeFor[D]()
	if primitive.IsChecked(domain) {
		return Rule[D, W]{}, fmt.Errorf("%s: %w", domain, ErrUncheckedRule)
	}

	h, err := newHeader(name, domain, reflect.TypeFor[W]())
	if err != nil {
		return Rule[D, W]{}, err
	}

	return Rule[D, W]{header: h}, nil
}

// MustNewtype is like Newtype but panics on error.
func MustNewtype[D, W Integer](name string) Rule[D, W] {
	r, err := Newtype[D, W](name)
	if err != nil {
		panic(err)
	}

	return r
}

// Wrap converts a wire primitive into the domain type.
func (r Rule[D, W]) Wrap(w W) D {
	return D(w)
}

// Unwrap converts a domain value back into its wire primitive.
func (r Rule[D, W]) Unwrap(d D) W {
	return W(d)
}

func (r Rule[D, W]) Fallible() bool {
	return false
}

func (r Rule[D, W]) LiftAny(v any) (any, error) {
	w, ok := v.(W)
	if !ok {
		return nil, mismatch(r.name, r.wire, v)
	}

	return r.Wrap(w), nil
}

func (r Rule[D, W]) LowerAny(v any) (any, error) {
	d, ok := v.(D)
	if !ok {
		return nil, mismatch(r.name, r.domain, v)
	}

	return r.Unwrap(d), nil
}

// CheckedRule converts between a validating domain type D and its wire
// primitive W. Wrap rejects values for which D.IsValid reports false.
type CheckedRule[D Validated, W Integer] struct {
	header
}

// NewChecked builds the checked rule for domain type D carried as W.
func NewChecked[D Validated, W Integer](name string) (CheckedRule[D, W], error) {
	h, err := newHeader(name, reflect.TypeFor[D](), reflect.TypeFor[W]())
	if err != nil {
		return CheckedRule[D, W]{}, err
	}

	return CheckedRule[D, W]{header: h}, nil
}

// Wrap converts a wire primitive into the domain type, failing with an
// *InvalidWireValueError when the value is not valid for D.
func (r CheckedRule[D, W]) Wrap(w W) (D, error) {
	d := D(w)
	if !d.IsValid() {
		return 0, &InvalidWireValueError{Rule: r.name, Value: w}
	}

	return d, nil
}

// Unwrap converts a domain value back into its wire primitive.
func (r CheckedRule[D, W]) Unwrap(d D) W {
	return W(d)
}

func (r CheckedRule[D, W]) Fallible() bool {
	return true
}

func (r CheckedRule[D, W]) LiftAny(v any) (any, error) {
	w, ok := v.(W)
	if !ok {
		return nil, mismatch(r.name, r.wire, v)
	}

	d, err := r.Wrap(w)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (r CheckedRule[D, W]) LowerAny(v any) (any, error) {
	d, ok := v.(D)
	if !ok {
		return nil, mismatch(r.name, r.domain, v)
	}

	return r.Unwrap(d), nil
}
