package rng

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[E any](src Source, s []E) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := Int(src, 0, i+1)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}

// Sample returns k distinct elements of s in random order, without replacement.
// s is left untouched.
func Sample[E any](src Source, s []E, k int) ([]E, error) {
	if k < 0 || k > len(s) {
		return nil, ErrSampleSize
	}

	pool := make([]E, len(s))
	copy(pool, s)

	for i := 0; i < k; i++ {
		j, err := Int(src, i, len(pool))
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
