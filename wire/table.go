package wire

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// Builder collects rules before they are frozen into a Table.
// It is not safe for concurrent use.
type Builder struct {
	rules []Converter
	errs  []error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register adds a rule.
func (b *Builder) Register(c Converter) *Builder {
	if c == nil || c.Domain() == nil {
		b.errs = append(b.errs, errors.New("nil rule registered"))
		return b
	}

	b.rules = append(b.rules, c)

	return b
}

// Add registers a rule straight from a constructor, keeping its error for Build:
//
//	b.Add(wire.Newtype[ident.PeerID, uint64]("PeerID"))
func (b *Builder) Add(c Converter, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	return b.Register(c)
}

// Build validates the collected rules and returns the immutable table.
// All problems are reported together.
func (b *Builder) Build() (*Table, error) {
	errs := append([]error{}, b.errs...)

	t := &Table{
		byType: make(map[reflect.Type]Converter, len(b.rules)),
		byName: make(map[string]Converter, len(b.rules)),
	}

	for _, c := range b.rules {
		if prev, ok := t.byType[c.Domain()]; ok {
			errs = append(errs, fmt.Errorf("%s: domain type %s already declared by %s: %w",
				c.Name(), c.Domain(), prev.Name(), ErrDuplicateRule))
			continue
		}

		if _, ok := t.byName[c.Name()]; ok {
			errs = append(errs, fmt.Errorf("rule name %q: %w", c.Name(), ErrDuplicateRule))
			continue
		}

		t.byType[c.Domain()] = c
		t.byName[c.Name()] = c
		t.rules = append(t.rules, c)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("building wire table: %w", errors.Join(errs...))
	}

	sort.Slice(t.rules, func(i, j int) bool {
		return t.rules[i].Name() < t.rules[j].Name()
	})

	return t, nil
}

// Table maps declared domain types to their rules. It is read-only once
// built and safe for concurrent use.
type Table struct {
	byType map[reflect.Type]Converter
	byName map[string]Converter
	rules  []Converter
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns the rules sorted by name.
func (t *Table) Rules() []Converter {
	return append([]Converter(nil), t.rules...)
}

// Lookup returns the rule declared for the domain type.
func (t *Table) Lookup(domain reflect.Type) (Converter, bool) {
	c, ok := t.byType[domain]
	return c, ok
}

// LookupName returns the rule registered under name.
func (t *Table) LookupName(name string) (Converter, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Select returns a new table holding only the named rules of t.
func (t *Table) Select(names ...string) (*Table, error) {
	b := NewBuilder()

	for _, name := range names {
		c, ok := t.byName[name]
		if !ok {
			b.errs = append(b.errs, fmt.Errorf("%q: %w", name, ErrUnknownRule))
			continue
		}

		b.Register(c)
	}

	return b.Build()
}

// Lift converts the wire value v into the declared domain type.
func (t *Table) Lift(domain reflect.Type, v any) (any, error) {
	c, ok := t.byType[domain]
	if !ok {
		return nil, fmt.Errorf("lift %s: %w", domain, ErrUnknownType)
	}

	return c.LiftAny(v)
}

// Lower converts the domain value v into its wire primitive, choosing the
// rule by the dynamic type of v.
func (t *Table) Lower(v any) (any, error) {
	domain := reflect.TypeOf(v)

	c, ok := t.byType[domain]
	if !ok {
		return nil, fmt.Errorf("lower %v: %w", domain, ErrUnknownType)
	}

	return c.LowerAny(v)
}

// LiftAs lifts v into the domain type D.
func LiftAs[D any](t *Table, v any) (D, error) {
	var zero D

	out, err := t.Lift(reflect.TypeFor[D](), v)
	if err != nil {
		return zero, err
	}

	return out.(D), nil
}

// LowerAs lowers the domain value v and returns it as the primitive W.
func LowerAs[W any](t *Table, v any) (W, error) {
	var zero W

	out, err := t.Lower(v)
	if err != nil {
		return zero, err
	}

	w, ok := out.(W)
	if !ok {
		return zero, mismatch("lower", reflect.TypeFor[W](), out)
	}

	return w, nil
}
