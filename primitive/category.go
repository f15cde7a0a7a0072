package primitive

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategoryLossless    CategoryEnum = 1 << iota // same kind on both sides: a bijection
	CategoryWidening                             // every source value fits, but the reverse direction may not
	CategoryNarrowing                            // source values may be truncated
	CategoryReinterpret                          // same width, different signedness: bits survive, sign does not

	CategoryNone = 0 // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategoryLossless] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryWidening] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryNarrowing] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryReinterpret] = map[ConversionPair]struct{}{}

	for fromKind := KindEnum(1); int(fromKind) < KindTotal; fromKind++ {
		for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
			pair := ConversionPair{fromKind, toKind}
			conversionPairs[classifyPair(pair)][pair] = struct{}{}
		}
	}
}

func classifyPair(pair ConversionPair) CategoryEnum {
	from, to := pair.From, pair.To

	if from == to {
		return CategoryLossless
	}

	// int and uint have platform dependent width, so nothing involving them
	// is guaranteed to fit unless the other side is strictly smaller.
	fromBits, toBits := from.Bits(), to.Bits()

	switch {
	case from.IsSigned() == to.IsSigned():
		if fromBits < toBits {
			return CategoryWidening
		}
		if fromBits == toBits && from.IsFixedWidth() && to.IsFixedWidth() {
			return CategoryLossless
		}

		return CategoryNarrowing
	case from.IsUnsigned() && to.IsSigned() && fromBits < toBits:
		return CategoryWidening
	case fromBits == toBits && from.IsFixedWidth() && to.IsFixedWidth():
		return CategoryReinterpret
	default:
		return CategoryNarrowing
	}
}

// Classify returns the category of converting a value of kind from into kind to.
// Invalid kinds classify as CategoryNone.
func Classify(from, to KindEnum) CategoryEnum {
	pair := ConversionPair{from, to}

	for category, pairs := range conversionPairs {
		if _, ok := pairs[pair]; ok {
			return category
		}
	}

	return CategoryNone
}

// IsBijective reports whether values of kind a and kind b map onto each other
// one to one, in both directions.
func IsBijective(a, b KindEnum) bool {
	return a.IsFixedWidth() && b.IsFixedWidth() &&
		Classify(a, b) == CategoryLossless && Classify(b, a) == CategoryLossless
}
