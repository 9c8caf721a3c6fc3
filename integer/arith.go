package integer

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return add(x, y, 0)
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return sub(x, y, 0)
}

// handoff records one delegation between add and sub. A delegated call always
// receives operands of the same sign, so a second delegation is a bug.
func handoff(hops int) int {
	if hops > 0 {
		panic("integer: add and sub delegated to each other more than once")
	}

	return hops + 1
}

// digitAt returns the k-th digit of d counting from the least significant end
// starting at 1. Positions past the most significant digit read as 0.
func digitAt(d []byte, k int) byte {
	if k > len(d) {
		return 0
	}

	return d[len(d)-k]
}

func reverse(d []byte) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}

func add(x, y Int, hops int) Int {
	if x.neg != y.neg {
		// x + y = x - (-y)
		return sub(x, flip(y), handoff(hops))
	}

	a, b := x.magnitude(), y.magnitude()

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	// Built least significant first.
	out := make([]byte, 0, n+1)

	var carry byte
	for k := 1; k <= n; k++ {
		sum := digitAt(a, k) + digitAt(b, k) + carry
		out = append(out, sum%10)
		carry = sum / 10
	}

	if carry != 0 {
		out = append(out, carry)
	}

	reverse(out)

	return normalize(out, x.neg)
}

func sub(x, y Int, hops int) Int {
	if x.neg != y.neg {
		// x - y = x + (-y)
		return add(x, flip(y), handoff(hops))
	}

	a, b := x.magnitude(), y.magnitude()
	neg := x.neg

	// Always subtract the smaller magnitude from the larger one. When y is
	// the larger the result takes the opposite of the common sign.
	if cmpDigits(a, b) < 0 {
		a, b = b, a
		neg = !neg
	}

	// Built least significant first.
	out := make([]byte, 0, len(a))

	borrow := 0
	for k := 1; k <= len(a); k++ {
		diff := int(digitAt(a, k)) - int(digitAt(b, k)) - borrow
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}

		out = append(out, byte(diff))
	}

	// Trailing zeros here are the leading zeros of the result.
	for len(out) > 1 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}

	reverse(out)

	return normalize(out, neg)
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return zero()
	}

	a, b := x.magnitude(), y.magnitude()

	// buf[i+j+1] collects the products of a[i] and b[j]. Row i only carries
	// into buf[i], which no earlier row has touched, so every cell stays a
	// single digit.
	buf := make([]byte, len(a)+len(b))

	for i := len(a) - 1; i >= 0; i-- {
		carry := 0

		for j := len(b) - 1; j >= 0; j-- {
			p := int(buf[i+j+1]) + int(a[i])*int(b[j]) + carry
			buf[i+j+1] = byte(p % 10)
			carry = p / 10
		}

		buf[i] += byte(carry)
	}

	return normalize(buf, x.neg != y.neg)
}
