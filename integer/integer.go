package integer

// Int is a signed decimal integer of arbitrary size.
//
// Digit slices are never written after an Int is constructed, and every
// operation returns freshly allocated digits.
type Int struct {
	digits []byte
	neg    bool
}

// zeroDigits backs the zero value. It must never be written.
var zeroDigits = []byte{0}

func zero() Int {
	return Int{digits: []byte{0}}
}

// New returns the Int holding v.
func New(v int64) Int {
	if v >= 0 {
		return fromUint64(uint64(v), false)
	}

	// -(v+1) is representable for every negative v, including math.MinInt64.
	return fromUint64(uint64(-(v+1))+1, true)
}

func fromUint64(u uint64, neg bool) Int {
	if u == 0 {
		return zero()
	}

	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte(u % 10)
		u /= 10
	}

	return Int{
		digits: append([]byte(nil), buf[i:]...),
		neg:    neg,
	}
}

// normalize takes ownership of digits, strips leading zeros and clears the
// sign of zero.
func normalize(digits []byte, neg bool) Int {
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	digits = digits[i:]

	if len(digits) == 0 {
		digits = []byte{0}
	}

	if len(digits) == 1 && digits[0] == 0 {
		neg = false
	}

	return Int{
		digits: digits,
		neg:    neg,
	}
}

// magnitude returns the digits of x. The zero value reads as [0].
func (x Int) magnitude() []byte {
	if len(x.digits) == 0 {
		return zeroDigits
	}

	return x.digits
}

func (x Int) clone() []byte {
	return append([]byte(nil), x.magnitude()...)
}

// flip returns x with the opposite sign without canonicalizing zero. The
// result is only ever consumed by add and sub, which normalize.
func flip(x Int) Int {
	return Int{
		digits: x.magnitude(),
		neg:    !x.neg,
	}
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	m := x.magnitude()

	return len(m) == 1 && m[0] == 0
}

// IsNegative reports whether x is strictly less than zero.
func (x Int) IsNegative() bool {
	return x.neg
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}

	return 1
}

// Len returns the number of decimal digits in the magnitude of x.
func (x Int) Len() int {
	return len(x.magnitude())
}

// Neg returns -x. Zero stays zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return zero()
	}

	return Int{
		digits: x.clone(),
		neg:    !x.neg,
	}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{
		digits: x.clone(),
	}
}

// Int64 returns x as an int64 and whether the conversion was exact.
func (x Int) Int64() (int64, bool) {
	m := x.magnitude()

	// 19 digits always fit in a uint64.
	if len(m) > 19 {
		return 0, false
	}

	var u uint64
	for _, d := range m {
		u = u*10 + uint64(d)
	}

	if x.neg {
		if u > 1<<63 {
			return 0, false
		}

		return -int64(u-1) - 1, true
	}

	if u > 1<<63-1 {
		return 0, false
	}

	return int64(u), true
}

// Set replaces z with a copy of x and returns z.
func (z *Int) Set(x Int) *Int {
	z.digits = x.clone()
	z.neg = x.neg

	return z
}

// SetInt64 replaces z with v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	*z = New(v)

	return z
}

// SetString replaces z with the value of s. On error z is left unchanged.
func (z *Int) SetString(s string) (err error) {
	v, err := parse(s)
	if err != nil {
		return Error.Wrap(err)
	}

	*z = v

	return nil
}
