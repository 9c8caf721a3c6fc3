package integer

import (
	"fmt"
	"math/big"

	"github.com/vmihailenco/msgpack/v5"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	i, ok := new(big.Int).SetString(string(x.appendDigits(nil)), 10)
	if !ok {
		return nil, Error.New("corrupt digits: %v", x.magnitude())
	}

	i.Lsh(i, 1)
	if x.neg {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

func unmarshalBinary(data []byte) (Int, error) {
	if len(data) == 0 {
		return Int{}, fmt.Errorf("%w: empty", ErrInvalidEncoding)
	}

	i := new(big.Int).SetBytes(data)

	neg := i.Bit(0) == 1
	i.Rsh(i, 1)

	if neg && i.Sign() == 0 {
		return Int{}, fmt.Errorf("%w: negative zero", ErrInvalidEncoding)
	}

	x, err := parse(i.Text(10))
	if err != nil {
		return Int{}, err
	}

	x.neg = neg

	return x, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (z *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	x, err := unmarshalBinary(data)
	if err != nil {
		return err
	}

	*z = x

	return nil
}

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder by writing the binary form
// as a bin field.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	defer Error.WrapP(&err)

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return enc.EncodeBytes(data)
}

// DecodeMsgpack implements msgpack.CustomDecoder. A nil field decodes as
// zero.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	data, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	if data == nil {
		*z = zero()

		return nil
	}

	x, err := unmarshalBinary(data)
	if err != nil {
		return err
	}

	*z = x

	return nil
}
