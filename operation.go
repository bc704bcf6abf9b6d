package hiero

// Map is a pure transformation applied independently to every partition of a Dataset.
// It must not observe or depend on any other partition.
type Map[T, S any] interface {
	Apply(data T) (S, error)
}

// MapFunc adapts an ordinary function into a Map
type MapFunc[T, S any] func(data T) (S, error)

// Apply calls fn(data)
func (fn MapFunc[T, S]) Apply(data T) (S, error) {
	return fn(data)
}

// Valuer is implemented by results which can be represented as a self-describing
// structured value: numbers, strings, bools, nil, []interface{} and map[string]interface{}.
type Valuer interface {
	ToValue() interface{}
}
