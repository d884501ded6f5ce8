package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove returns slice without the first occurrence of item, and whether it was found.
// The input slice is left untouched.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...), true
}

// Sum adds up f over every element of slice.
func Sum[T any](slice []T, f func(T) int) int {
	total := 0
	for _, v := range slice {
		total += f(v)
	}
	return total
}
