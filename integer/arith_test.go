package integer

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestArith(t *testing.T) {
	type TC struct {
		a, op, b string
		output   string
	}

	tcs := []TC{
		{a: "123", op: "+", b: "456", output: "579"},
		{a: "100", op: "-", b: "999", output: "-899"},
		{a: "-50", op: "+", b: "50", output: "0"},
		{a: "50", op: "+", b: "-50", output: "0"},
		{a: "-50", op: "-", b: "-50", output: "0"},
		{a: "999", op: "*", b: "999", output: "998001"},
		{a: "999", op: "+", b: "1", output: "1000"},
		{a: "1000", op: "-", b: "1", output: "999"},
		{a: "1", op: "-", b: "1000", output: "-999"},
		{a: "-3", op: "-", b: "-5", output: "2"},
		{a: "-5", op: "-", b: "-3", output: "-2"},
		{a: "-3", op: "+", b: "-5", output: "-8"},
		{a: "-3", op: "-", b: "5", output: "-8"},
		{a: "3", op: "-", b: "-5", output: "8"},
		{a: "-7", op: "+", b: "0", output: "-7"},
		{a: "0", op: "+", b: "-7", output: "-7"},
		{a: "-7", op: "-", b: "0", output: "-7"},
		{a: "0", op: "-", b: "-7", output: "7"},
		{a: "0", op: "-", b: "7", output: "-7"},
		{a: "-12", op: "*", b: "12", output: "-144"},
		{a: "-12", op: "*", b: "-12", output: "144"},
		{a: "-12", op: "*", b: "0", output: "0"},
		{a: "0", op: "*", b: "-12", output: "0"},
		{a: "99999999999999999999", op: "+", b: "1", output: "100000000000000000000"},
		{a: "100000000000000000000", op: "-", b: "1", output: "99999999999999999999"},
		{a: "10000000000000000000000000000001", op: "-", b: "10000000000000000000000000000000", output: "1"},
		{a: "9223372036854775807", op: "*", b: "9223372036854775807", output: "85070591730234615847396907784232501249"},
		{a: "-9223372036854775808", op: "*", b: "2", output: "-18446744073709551616"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%s%s", i, tc.a, tc.op, tc.b), func(t *testing.T) {
			a, b := MustParse(tc.a), MustParse(tc.b)

			var r Int
			switch tc.op {
			case "+":
				r = a.Add(b)
			case "-":
				r = a.Sub(b)
			case "*":
				r = a.Mul(b)
			}

			require.Equal(t, tc.output, r.String(), spew.Sdump(r))

			// Operands are untouched.
			require.Equal(t, MustParse(tc.a), a)
			require.Equal(t, MustParse(tc.b), b)
		})
	}
}

func TestFactorial(t *testing.T) {
	f := New(1)
	for n := int64(2); n <= 30; n++ {
		f = f.Mul(New(n))
	}

	require.Equal(t, "265252859812191058636308480000000", f.String())
}

// randInt returns a value with up to n digits and a random sign.
func randInt(rng *rand.Rand, n int) Int {
	sb := &strings.Builder{}

	if rng.Intn(2) == 0 {
		sb.WriteByte('-')
	}

	for i, l := 0, 1+rng.Intn(n); i < l; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}

	return MustParse(sb.String())
}

func toBig(x Int) *big.Int {
	i, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic(x.String())
	}

	return i
}

func TestArithBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		a, b := randInt(rng, 40), randInt(rng, 40)
		ba, bb := toBig(a), toBig(b)

		require.Equal(t, new(big.Int).Add(ba, bb).String(), a.Add(b).String(), "%s + %s", a, b)
		require.Equal(t, new(big.Int).Sub(ba, bb).String(), a.Sub(b).String(), "%s - %s", a, b)
		require.Equal(t, new(big.Int).Mul(ba, bb).String(), a.Mul(b).String(), "%s * %s", a, b)
		require.Equal(t, ba.Cmp(bb), a.Cmp(b), "%s <=> %s", a, b)
		require.Equal(t, new(big.Int).Abs(ba).CmpAbs(bb), CmpAbs(a, b), "|%s| <=> |%s|", a, b)
	}
}

func TestArithProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	one := New(1)

	for i := 0; i < 500; i++ {
		a, b, c := randInt(rng, 30), randInt(rng, 30), randInt(rng, 30)

		require.True(t, a.Add(b).Equal(b.Add(a)), "commutative add: %s %s", a, b)
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "commutative mul: %s %s", a, b)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "associative add: %s %s %s", a, b, c)

		inv := a.Add(a.Neg())
		require.True(t, inv.IsZero())
		require.False(t, inv.IsNegative())
		require.Equal(t, []byte{0}, inv.digits)

		require.True(t, a.Sub(b).Equal(a.Add(b.Neg())), "sub consistency: %s %s", a, b)

		require.True(t, a.Mul(one).Equal(a))

		z := a.Mul(New(0))
		require.True(t, z.IsZero())
		require.False(t, z.IsNegative())
	}
}

func TestAddSubHandoff(t *testing.T) {
	values := []Int{
		New(0),
		New(1),
		New(-1),
		New(9),
		New(-10),
		MustParse("123456789012345678901234567890"),
		MustParse("-123456789012345678901234567890"),
		{},
	}

	for _, a := range values {
		for _, b := range values {
			a, b := a, b

			require.NotPanics(t, func() {
				add(a, b, 0)
				sub(a, b, 0)
			}, "%s %s", a, b)
		}
	}

	// A second delegation is refused.
	require.Panics(t, func() {
		add(New(1), New(-1), 1)
	})
	require.Panics(t, func() {
		sub(New(1), New(-1), 1)
	})

	// Same sign operands never delegate.
	require.NotPanics(t, func() {
		add(New(-1), New(-1), 1)
		sub(New(1), New(2), 1)
	})
}

func BenchmarkAdd(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randInt(rng, 200), randInt(rng, 200)

	for n := 0; n < b.N; n++ {
		x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randInt(rng, 200), randInt(rng, 200)

	for n := 0; n < b.N; n++ {
		x.Mul(y)
	}
}
