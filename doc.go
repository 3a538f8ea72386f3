// Copyright 2025 Wai-Shing Luk <luk036@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fractions implements exact rational numbers over any integer type.

A Fraction[Z] is an ordered pair num/den where Z may be any built-in or
named signed or unsigned integer type. Unlike big.Rat there is no
arbitrary-precision mantissa: the range of the representation is the range
of Z, which is the caller's concern. In exchange, a Fraction is a plain
two-word value with no pointers, no allocation and no rounding.

Every fraction returned by this package is in canonical form:

  - the denominator is non-negative; the sign lives in the numerator, and
  - numerator and denominator are coprime (their gcd is 0 or 1).

New values are obtained with New and FromInt:

	h := fractions.New(2, 4)    // 1/2
	n := fractions.FromInt(3)   // 3/1

The zero value of the Fraction struct is 0/0, which is not the number zero
but a degenerate value (see below); the canonical zero is FromInt(0).

All operations use value semantics: each method takes its operands by
value and returns a new normalized fraction, so the in-place operator
forms of other languages are written as plain reassignment:

	h = h.Add(fractions.New(1, 3)) // h += 1/3

Comparisons reduce to the two primitives Cmp and CmpInt, which return
-1, 0 or +1; Equal, Less and their Int forms are thin wrappers, and the
remaining relations are the sign variations of the same call (x >= y is
x.Cmp(y) >= 0, i < x is x.CmpInt(i) > 0, and so on).

Arithmetic is overflow-conscious. Multiplication and division cancel the
cross gcds before forming any product, and addition uses the reduced
common denominator lcm(b, d) rather than the raw product b*d, so
intermediate magnitudes stay near the size of the reduced result instead
of growing to the full cross product. Mixed fraction/integer forms
(AddInt, MulInt, ...) operate on the integer directly instead of routing
it through a temporary 1-denominator fraction.

No operation panics or returns an error. Dividing by a zero fraction, or
inverting zero, produces a fraction whose denominator is 0. Such a
degenerate value is an explicit sentinel, not a failure: it propagates
through further arithmetic, and callers that need strict validation check
Den() == 0 after any operation whose operand could be degenerate.
*/
package fractions
