// Package transform provides Maps which derive new Tables from existing ones.
// Derived Tables share columns, and lazily loaded data, with their source.
package transform
