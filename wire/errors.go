package wire

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidWireValue is reported by checked rules for bit patterns the
	// domain type cannot represent.
	ErrInvalidWireValue = errors.New("invalid wire value")
	// ErrTypeMismatch is reported when a value of the wrong Go type reaches a rule.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnknownType is reported by Table lookups for undeclared domain types.
	ErrUnknownType = errors.New("no rule registered for type")
	// ErrUnknownRule is reported by Table.Select for names no rule is registered under.
	ErrUnknownRule = errors.New("no rule registered under name")
	// ErrDuplicateRule is reported by Builder.Build for a domain type or name registered twice.
	ErrDuplicateRule = errors.New("duplicate rule")
	// ErrLossyRule is reported when a domain type and wire primitive are not a bijection.
	ErrLossyRule = errors.New("domain and wire types are not a bijection")
)

// InvalidWireValueError carries the rule and raw value a checked Wrap rejected.
type InvalidWireValueError struct {
	Rule  string
	Value any
}

func (e *InvalidWireValueError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Rule, e.Value, ErrInvalidWireValue)
}

func (e *InvalidWireValueError) Unwrap() error {
	return ErrInvalidWireValue
}

func mismatch(rule string, want reflect.Type, got any) error {
	return fmt.Errorf("%s: want %s, got %T: %w", rule, want, got, ErrTypeMismatch)
}
