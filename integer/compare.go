package integer

import "bytes"

// cmpDigits orders two leading-zero-free magnitudes.
func cmpDigits(a, b []byte) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	// Equal length decimal strings order the same way their values do.
	return bytes.Compare(a, b)
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func CmpAbs(x, y Int) int {
	return cmpDigits(x.magnitude(), y.magnitude())
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -CmpAbs(x, y)
	}

	return CmpAbs(x, y)
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	if x.neg != y.neg {
		return x.neg
	}

	if x.neg {
		return CmpAbs(x, y) > 0
	}

	return CmpAbs(x, y) < 0
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && bytes.Equal(x.magnitude(), y.magnitude())
}
