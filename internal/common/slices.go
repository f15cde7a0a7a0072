package common

// Duplicates returns the keys that occur more than once, in order of their
// second occurrence.
func Duplicates[S ~[]E, E any, K comparable](s S, key func(E) K) []K {
	seen := make(map[K]struct{}, len(s))

	var dups []K

	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			dups = append(dups, k)
			continue
		}

		seen[k] = struct{}{}
	}

	return dups
}
