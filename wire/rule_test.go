package wire_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idwire/primitive"
	"idwire/wire"
)

type nodeID uint64
type epoch uint32
type seq int32
type rawU32 uint32

// containerKind mirrors an enum-backed identifier: only 0..5 are meaningful.
type containerKind uint8

func (k containerKind) IsValid() bool { return k <= 5 }

var (
	_ wire.Converter = wire.Rule[nodeID, uint64]{}
	_ wire.Converter = wire.CheckedRule[containerKind, uint8]{}
)

func TestNewtype(t *testing.T) {
	t.Parallel()

	r, err := wire.Newtype[nodeID, uint64]("")
	require.NoError(t, err)

	assert.Equal(t, "nodeID", r.Name())
	assert.Equal(t, reflect.TypeFor[nodeID](), r.Domain())
	assert.Equal(t, reflect.TypeFor[uint64](), r.WireType())
	assert.Equal(t, primitive.KindUint64, r.Wire())
	assert.False(t, r.Fallible())

	assert.Equal(t, nodeID(math.MaxUint64), r.Wrap(math.MaxUint64))
	assert.Equal(t, uint64(7), r.Unwrap(nodeID(7)))
}

func TestNewtypeRefusesLossyPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		make func() error
	}{
		{"narrower wire", func() error { _, err := wire.Newtype[nodeID, uint32]("n"); return err }},
		{"wider wire", func() error { _, err := wire.Newtype[epoch, uint64]("e"); return err }},
		{"signedness", func() error { _, err := wire.Newtype[seq, uint32]("s"); return err }},
		{"unsigned to signed", func() error { _, err := wire.Newtype[epoch, int32]("e"); return err }},
		{"named wire", func() error { _, err := wire.Newtype[epoch, rawU32]("e"); return err }},
		{"undefined domain", func() error { _, err := wire.Newtype[uint32, uint32]("u"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.make(), wire.ErrLossyRule)
		})
	}
}

func TestNewtypeRefusesValidatingDomain(t *testing.T) {
	t.Parallel()

	_, err := wire.Newtype[containerKind, uint8]("kind")
	require.ErrorIs(t, err, wire.ErrUncheckedRule)

	assert.Panics(t, func() { wire.MustNewtype[containerKind, uint8]("kind") })
}

func TestRuleAnyConversions(t *testing.T) {
	t.Parallel()

	r := wire.MustNewtype[epoch, uint32]("epoch")

	out, err := r.LiftAny(uint32(42))
	require.NoError(t, err)
	assert.Equal(t, epoch(42), out)

	raw, err := r.LowerAny(epoch(42))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), raw)

	_, err = r.LiftAny(uint64(42))
	require.ErrorIs(t, err, wire.ErrTypeMismatch)

	_, err = r.LiftAny(epoch(42))
	require.ErrorIs(t, err, wire.ErrTypeMismatch)

	_, err = r.LowerAny(uint32(42))
	require.ErrorIs(t, err, wire.ErrTypeMismatch)

	_, err = r.LowerAny(nil)
	require.ErrorIs(t, err, wire.ErrTypeMismatch)
}

func TestCheckedRule(t *testing.T) {
	t.Parallel()

	r, err := wire.NewChecked[containerKind, uint8]("ContainerKind")
	require.NoError(t, err)
	assert.True(t, r.Fallible())

	for raw := uint8(0); raw <= 5; raw++ {
		k, err := r.Wrap(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, r.Unwrap(k))
	}

	_, err = r.Wrap(6)
	require.ErrorIs(t, err, wire.ErrInvalidWireValue)

	var invalid *wire.InvalidWireValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "ContainerKind", invalid.Rule)
	assert.Equal(t, uint8(6), invalid.Value)
	assert.Equal(t, "ContainerKind: 6: invalid wire value", err.Error())

	_, err = r.LiftAny(uint8(255))
	require.ErrorIs(t, err, wire.ErrInvalidWireValue)

	_, err = r.LiftAny(uint16(1))
	require.ErrorIs(t, err, wire.ErrTypeMismatch)

	raw, err := r.LowerAny(containerKind(3))
	require.NoError(t, err)
	assert.Equal(t, uint8(3), raw)
}

func TestNewCheckedRefusesLossyPairs(t *testing.T) {
	t.Parallel()

	_, err := wire.NewChecked[containerKind, uint16]("kind")
	require.ErrorIs(t, err, wire.ErrLossyRule)
}
