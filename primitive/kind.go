package primitive

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var goNames = map[KindEnum]string{
	KindInt:    "int",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint:   "uint",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
}

func (k KindEnum) IsValid() bool {
	_, ok := goNames[k]
	return ok
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsFixedWidth reports whether the kind has the same width on every platform.
// Only fixed-width kinds may cross the foreign call boundary.
func (k KindEnum) IsFixedWidth() bool {
	return k.IsValid() && k != KindInt && k != KindUint
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("bit width requested for non-integer kind " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// GoName returns the Go spelling of the kind, e.g. "uint64".
func (k KindEnum) GoName() string {
	if name, ok := goNames[k]; ok {
		return name
	}

	return ""
}

// WireNames returns the Go spellings of the fixed-width kinds in kind order.
func WireNames() []string {
	var names []string

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.IsFixedWidth() {
			names = append(names, k.GoName())
		}
	}

	return names
}

// ParseKind maps a Go spelling like "int32" back to its kind.
func ParseKind(name string) (KindEnum, bool) {
	for k, n := range goNames {
		if n == name {
			return k, true
		}
	}

	return 0, false
}

// FromReflectType returns the kind of the type's underlying integer, so a
// defined type like `type PeerID uint64` reports KindUint64.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	}
}
