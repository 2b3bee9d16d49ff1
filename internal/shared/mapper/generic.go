// Package mapper holds small generic helpers shared by persistence mappers.
package mapper

// MapSlice converts every element of in with fn. A nil input yields an empty, non-nil
// slice so JSON responses render [] rather than null.
func MapSlice[T any, D any](in []T, fn func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}

// Deref returns the pointed-to value or the zero value for nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// NilIfEmpty maps "" to nil, used for optional text columns.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
