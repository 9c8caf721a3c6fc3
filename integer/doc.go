// Package integer provides an arbitrary precision signed decimal integer.
//
// An Int is a sign and a magnitude. The magnitude is a sequence of decimal
// digits stored most significant first:
//
//  -1024 = { neg: true, digits: [1 0 2 4] }
//
// The magnitude never carries leading zeros and zero is never negative, so
// every value has exactly one representation. The zero value of Int is zero
// and ready to use.
//
// Arithmetic
//
// Add, Sub and Mul are schoolbook algorithms over the decimal digits. They
// never modify their operands and always return a freshly allocated result.
// Addition of operands with different signs is computed as a subtraction and
// subtraction of operands with different signs is computed as an addition.
// Each handles its same-sign case directly, so at most one handoff occurs.
//
// Text
//
// The text form is an optional '-' followed by one or more decimal digits:
//
//  0
//  579
//  -899
//
// Parsing strips leading zeros ("007" is 7, "-0" is 0) and rejects anything
// else with ErrInvalidFormat. Int implements fmt.Formatter and fmt.Scanner so
// it can be used directly with the fmt printing and scanning functions.
//
// Binary
//
// The binary form is the big-endian magnitude shifted left by one bit with the
// sign in the lowest bit (aka zigzag):
//
//  | Value | Bytes       |
//  |-------|-------------|
//  |    +0 | 0000_0000   |
//  |    +1 | 0000_0010   |
//  |    -1 | 0000_0011   |
//  |  +127 | 1111_1110   |
//  |  -127 | 1111_1111   |
//  |-------|-------------|
//
// The same bytes are carried inside a MessagePack bin field by EncodeMsgpack.
package integer
