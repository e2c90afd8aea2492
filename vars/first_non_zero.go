package vars

// FirstNonZero returns the first argument that is not the zero value of T.
func FirstNonZero[T comparable](values ...T) (ret T) {
	var zero T
	for _, ret = range values {
		if ret != zero {
			return ret
		}
	}
	return zero
}
