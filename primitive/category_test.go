package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to KindEnum
		want     CategoryEnum
	}{
		{KindUint64, KindUint64, CategoryLossless},
		{KindInt32, KindInt32, CategoryLossless},
		{KindUint32, KindUint64, CategoryWidening},
		{KindUint32, KindInt64, CategoryWidening},
		{KindUint64, KindUint32, CategoryNarrowing},
		{KindInt32, KindUint32, CategoryReinterpret},
		{KindUint32, KindInt32, CategoryReinterpret},
		{KindInt64, KindUint32, CategoryNarrowing},
		{KindInt, KindInt64, CategoryNarrowing},
		{KindEnum(0), KindInt32, CategoryNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsBijective(t *testing.T) {
	t.Parallel()

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		assert.Equal(t, kind.IsFixedWidth(), IsBijective(kind, kind), kind.String())
	}

	assert.False(t, IsBijective(KindInt32, KindUint32))
	assert.False(t, IsBijective(KindUint32, KindUint64))
	assert.False(t, IsBijective(KindInt, KindInt))
}

func TestConversionPairsCoverEveryPair(t *testing.T) {
	t.Parallel()

	total := 0
	for _, pairs := range conversionPairs {
		total += len(pairs)
	}

	assert.Equal(t, (KindTotal-1)*(KindTotal-1), total)
}
