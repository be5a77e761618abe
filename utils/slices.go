package utils

// Filter returns the elements of a for which test holds. a is not modified.
func Filter[T any](a []T, test func(T) bool) []T {
	b := []T{}

	for _, x := range a {
		if test(x) {
			b = append(b, x)
		}
	}

	return b
}

func Flatten[T any](a [][]T) []T {
	res := []T{}

	for _, sl := range a {
		res = append(res, sl...)
	}

	return res
}

// Map applies f to every element of a.
func Map[T, U any](a []T, f func(T) U) []U {
	res := make([]U, len(a))
	for i, x := range a {
		res[i] = f(x)
	}
	return res
}
