package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"idwire/primitive"
)

func Example() {
	type PeerID uint64
	type Counter int32
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(PeerID(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Counter(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindUint32
	// KindUint64
	// KindInt32
	// KindInt64
	// KindEnum(0)
	// KindEnum(0)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		got, ok := primitive.ParseKind(kind.GoName())
		assert.True(t, ok, kind.String())
		assert.Equal(t, kind, got)
	}

	_, ok := primitive.ParseKind("float64")
	assert.False(t, ok)

	_, ok = primitive.ParseKind("")
	assert.False(t, ok)
}

func TestKindProperties(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.KindInt32.IsSigned())
	assert.False(t, primitive.KindInt32.IsUnsigned())
	assert.True(t, primitive.KindUint64.IsUnsigned())
	assert.Equal(t, 32, primitive.KindInt32.Bits())
	assert.Equal(t, 64, primitive.KindUint64.Bits())
	assert.Equal(t, 8, primitive.KindUint8.Bits())

	assert.True(t, primitive.KindUint32.IsFixedWidth())
	assert.False(t, primitive.KindInt.IsFixedWidth())
	assert.False(t, primitive.KindUint.IsFixedWidth())
	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.Empty(t, primitive.KindEnum(0).GoName())

	assert.Panics(t, func() { primitive.KindEnum(0).Bits() })
}

func TestWireNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"},
		primitive.WireNames())
}
