// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fp237 models the IEEE-754 binary256 interchange format (237
significand bits, exponents in [-262142, 262143] plus a subnormal range
down to 2^-262378) on top of math/big, and generates reference test data
for fixed-width 256-bit float implementations.

A Float pairs a *big.Float of precision 237 with the big.Accuracy of the
most recent rounding step. big.Float is the oracle: every operator
computes its mathematically exact result and rounds it once to 237 bits
with round-to-nearest, ties-to-even. The recorded accuracy tells whether
the rounded value sits below, at, or above the exact result; Decode uses
it to avoid double rounding when a value is pushed onto the subnormal
grid.

The zero value for a Float is ready to use and represents 0. New values
are typically produced by Parse, by Random, or by one of the operators:

	z := new(fp237.Float).Mul(x, y)

Operators follow the math/big notational convention: incoming operands
are named x and y, the receiver z holds the result and is returned to
enable chaining. Float values are not safe for concurrent mutation, but
all operators allocate their scratch space locally, so independent
computations may run in parallel.

Decode converts a Float into the (sign, exponent, significand) triple
the target format stores, applying the format's overflow and subnormal
rounding policy. Random draws values that are exactly representable at a
requested lead exponent, so that Decode round-trips them bit for bit.
*/
package fp237
