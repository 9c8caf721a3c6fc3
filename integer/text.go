package integer

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebcase/oops"
)

func parse(s string) (Int, error) {
	text := s
	offset := 0
	neg := false

	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
		offset = 1
	}

	if text == "" {
		return Int{}, &FormatError{
			Input:  s,
			Offset: offset,
			Reason: "missing digits",
		}
	}

	digits := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return Int{}, &FormatError{
				Input:  s,
				Offset: offset + i,
				Reason: fmt.Sprintf("unexpected %q", c),
			}
		}

		digits[i] = c - '0'
	}

	return normalize(digits, neg), nil
}

// Parse returns the Int written in s as an optional '-' followed by decimal
// digits. Leading zeros are ignored.
func Parse(s string) (Int, error) {
	x, err := parse(s)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return x, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// appendDigits appends the magnitude of x as ASCII.
func (x Int) appendDigits(buf []byte) []byte {
	for _, d := range x.magnitude() {
		buf = append(buf, '0'+d)
	}

	return buf
}

func (x Int) String() string {
	buf := make([]byte, 0, x.Len()+1)
	if x.neg {
		buf = append(buf, '-')
	}

	return string(x.appendDigits(buf))
}

func writeMultiple(w io.Writer, text string, count int) {
	if count > 0 {
		io.WriteString(w, strings.Repeat(text, count))
	}
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// along with the '+' and ' ' sign flags, minimum digits precision, field
// width, and '-' or '0' padding.
func (x Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(integer.Int=%s)", verb, x.String())

		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	digits := string(x.appendDigits(nil))

	var left, zeroes, right int

	precision, precisionSet := s.Precision()
	if precisionSet && len(digits) < precision {
		zeroes = precision - len(digits)
	}

	length := len(sign) + zeroes + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && !precisionSet:
			zeroes = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

// Scan implements fmt.Scanner. It reads one whitespace delimited token and
// parses it like Parse. When no token remains it returns io.EOF, which the
// fmt scanning functions report as io.ErrUnexpectedEOF.
func (z *Int) Scan(state fmt.ScanState, verb rune) (err error) {
	switch verb {
	case 'd', 's', 'v':
	default:
		return Error.New("bad verb '%%%c' for Int", verb)
	}

	state.SkipSpace()

	_, _, err = state.ReadRune()
	if err != nil {
		return err
	}

	err = state.UnreadRune()
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	tok, err := state.Token(false, nil)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return z.SetString(string(tok))
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	return z.SetString(string(text))
}

// MarshalJSON implements json.Marshaler. The value is written as a string so
// that it survives decoders that read numbers as float64.
func (x Int) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, x.Len()+3)
	buf = append(buf, '"')
	if x.neg {
		buf = append(buf, '-')
	}
	buf = x.appendDigits(buf)
	buf = append(buf, '"')

	return buf, nil
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted and bare numbers are
// accepted. A JSON null leaves z unchanged.
func (z *Int) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		return nil
	}

	if strings.HasPrefix(text, `"`) {
		if len(text) < 2 || !strings.HasSuffix(text, `"`) {
			return Error.New("invalid JSON %q", text)
		}

		text = text[1 : len(text)-1]
	}

	return z.SetString(text)
}
