package statsservice

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func fold[T, A any](items []T, acc A, fn func(A, T) A) A {
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}
