package ptr

func From[T any](v T) *T {
	return &v
}

func Or[T any](v *T, defaultValue T) T {
	if v != nil {
		return *v
	}
	return defaultValue
}

// NilIfZero maps the zero value to nil.
func NilIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
