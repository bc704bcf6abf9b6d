package sketches

// Groups holds one result per bucket of a group-by layer, followed by a single
// overflow result for rows whose value was missing or fell outside every bucket.
type Groups[R any] struct {
	Buckets []R
}

// NumBuckets returns the number of buckets, excluding the overflow
func (g *Groups[R]) NumBuckets() int {
	return len(g.Buckets) - 1
}

// PerBucket returns the result for bucket i
func (g *Groups[R]) PerBucket(i int) R {
	return g.Buckets[i]
}

// Overflow returns the result for rows which were missing or outside every bucket
func (g *Groups[R]) Overflow() R {
	return g.Buckets[len(g.Buckets)-1]
}

// ToValue represents Groups as a mapping of the per-bucket results and the overflow result
func (g *Groups[R]) ToValue() interface{} {
	buckets := make([]interface{}, g.NumBuckets())
	for i := range buckets {
		buckets[i] = toValue(g.Buckets[i])
	}
	return map[string]interface{}{
		"buckets":  buckets,
		"overflow": toValue(g.Overflow()),
	}
}
