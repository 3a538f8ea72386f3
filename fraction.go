// Copyright 2025 Wai-Shing Luk <luk036@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fractions

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A Fraction is an exact rational number num/den over the integer type Z.
// Fractions are value types: methods never modify their operands and return
// new values in canonical form (non-negative denominator, coprime fields).
//
// The zero value of the struct is the degenerate 0/0, not the number zero;
// use FromInt(0) for a canonical zero.
type Fraction[Z constraints.Integer] struct {
	num Z
	den Z
}

// New returns the fraction num/den in canonical form. A zero den is kept
// as-is and yields a degenerate value; New never panics.
func New[Z constraints.Integer](num, den Z) Fraction[Z] {
	f := Fraction[Z]{num, den}
	f.normalize()
	return f
}

// FromInt returns the fraction num/1.
func FromInt[Z constraints.Integer](num Z) Fraction[Z] {
	return Fraction[Z]{num, 1}
}

// Num returns the numerator of x.
func (x Fraction[Z]) Num() Z { return x.num }

// Den returns the denominator of x. A zero denominator marks a degenerate
// value.
func (x Fraction[Z]) Den() Z { return x.den }

// normalize puts z in canonical form.
func (z *Fraction[Z]) normalize() {
	z.normSign()
	z.reduce()
}

// normSign moves the denominator's sign to the numerator.
func (z *Fraction[Z]) normSign() {
	if z.den < 0 {
		z.num = -z.num
		z.den = -z.den
	}
}

// reduce divides both fields by their gcd. A gcd of 0 or 1 leaves z
// unchanged.
func (z *Fraction[Z]) reduce() {
	g := GCD(z.num, z.den)
	if g == 0 || g == 1 {
		return
	}
	z.num /= g
	z.den /= g
}

func cmp[Z constraints.Integer](a, b Z) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1. Equal denominators compare
// numerators directly; otherwise both cross products are reduced by the gcd
// of the mismatched numerator and denominator pairs first, bounding the
// intermediates near the magnitude of the operands rather than their
// product.
func (x Fraction[Z]) Cmp(y Fraction[Z]) int {
	if x.den == y.den {
		return cmp(x.num, y.num)
	}
	lhs := Fraction[Z]{x.num, y.num}
	rhs := Fraction[Z]{x.den, y.den}
	lhs.reduce()
	rhs.reduce()
	return cmp(lhs.num*rhs.den, lhs.den*rhs.num)
}

// CmpInt compares x against the integer y and returns -1, 0 or +1. A unit
// denominator or a zero y compares numerators directly.
func (x Fraction[Z]) CmpInt(y Z) int {
	if x.den == 1 || y == 0 {
		return cmp(x.num, y)
	}
	lhs := Fraction[Z]{x.num, y}
	lhs.reduce()
	return cmp(lhs.num, lhs.den*x.den)
}

// Equal reports whether x and y represent the same rational value.
func (x Fraction[Z]) Equal(y Fraction[Z]) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Fraction[Z]) Less(y Fraction[Z]) bool { return x.Cmp(y) < 0 }

// EqualInt reports whether x equals the integer y.
func (x Fraction[Z]) EqualInt(y Z) bool { return x.CmpInt(y) == 0 }

// LessInt reports whether x < y.
func (x Fraction[Z]) LessInt(y Z) bool { return x.CmpInt(y) < 0 }

// Sign returns -1, 0 or +1 depending on the sign of the numerator.
func (x Fraction[Z]) Sign() int {
	var zero Z
	return cmp(x.num, zero)
}

// IsZero reports whether x is an exact zero. The degenerate 0/0 is not
// zero.
func (x Fraction[Z]) IsZero() bool {
	return x.num == 0 && x.den != 0
}

// Neg returns -x.
func (x Fraction[Z]) Neg() Fraction[Z] {
	x.num = -x.num
	return x
}

// Abs returns x with a non-negative numerator.
func (x Fraction[Z]) Abs() Fraction[Z] {
	x.num = Abs(x.num)
	return x
}

// Inv returns the reciprocal of x. The numerator's sign migrates back to
// the numerator position so the denominator stays non-negative. Inverting
// zero yields a degenerate value.
func (x Fraction[Z]) Inv() Fraction[Z] {
	x.num, x.den = x.den, x.num
	x.normSign()
	return x
}

// Add returns x + y. Equal denominators add numerators directly; otherwise
// the sum is formed over the reduced common denominator lcm(x.den, y.den)
// instead of the raw product. If both denominators are zero the sentinel is
// kept, with numerator d*a + b*c.
func (x Fraction[Z]) Add(y Fraction[Z]) Fraction[Z] {
	if x.den == y.den {
		return New(x.num+y.num, x.den)
	}
	g := GCD(x.den, y.den)
	if g == 0 {
		return Fraction[Z]{y.den*x.num + x.den*y.num, 0}
	}
	l, r := x.den/g, y.den/g
	return New(r*x.num+l*y.num, x.den*r)
}

// Sub returns x - y.
func (x Fraction[Z]) Sub(y Fraction[Z]) Fraction[Z] {
	return x.Add(y.Neg())
}

// Mul returns x * y. The numerators are swapped so each pair reduces by its
// cross gcd before any product is formed.
func (x Fraction[Z]) Mul(y Fraction[Z]) Fraction[Z] {
	x.num, y.num = y.num, x.num
	x.reduce()
	y.reduce()
	x.num *= y.num
	x.den *= y.den
	return x
}

// Div returns x / y, multiplying by the reciprocal of y. Dividing by a zero
// fraction yields a degenerate value.
func (x Fraction[Z]) Div(y Fraction[Z]) Fraction[Z] {
	x.den, y.num = y.num, x.den
	x.normalize()
	y.reduce()
	x.num *= y.den
	x.den *= y.num
	return x
}

// AddInt returns x + y. A unit denominator skips the normalization pass.
func (x Fraction[Z]) AddInt(y Z) Fraction[Z] {
	if x.den == 1 {
		x.num += y
		return x
	}
	return New(x.num+y*x.den, x.den)
}

// SubInt returns x - y.
func (x Fraction[Z]) SubInt(y Z) Fraction[Z] {
	return x.AddInt(-y)
}

// SubFromInt returns y - x, the reversed operand order of SubInt.
func (x Fraction[Z]) SubFromInt(y Z) Fraction[Z] {
	return x.Neg().AddInt(y)
}

// MulInt returns x * y. The integer is cancelled against the denominator
// before multiplying.
func (x Fraction[Z]) MulInt(y Z) Fraction[Z] {
	x.num, y = y, x.num
	x.reduce()
	x.num *= y
	return x
}

// DivInt returns x / y. The integer is cancelled against the numerator
// before multiplying; the sign moves to the numerator. Dividing by zero
// yields a degenerate value.
func (x Fraction[Z]) DivInt(y Z) Fraction[Z] {
	x.den, y = y, x.den
	x.normalize()
	x.den *= y
	return x
}

// DivFromInt returns y / x, the reversed operand order of DivInt.
func (x Fraction[Z]) DivFromInt(y Z) Fraction[Z] {
	return x.Inv().MulInt(y)
}

// String renders x in the literal form "(num/den)".
func (x Fraction[Z]) String() string {
	return fmt.Sprintf("(%d/%d)", x.num, x.den)
}
