package ptr

func Of[T any](v T) *T {
	return &v
}

func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
