// Copyright 2025 Wai-Shing Luk <luk036@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fractions

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of a. For unsigned types the test is
// trivially false and a is returned unchanged.
func Abs[Z constraints.Integer](a Z) Z {
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the non-negative greatest common divisor of m and n,
// computed by Euclidean remainder. GCD(m, 0) == Abs(m), GCD(0, n) == Abs(n)
// and GCD(0, 0) == 0.
func GCD[Z constraints.Integer](m, n Z) Z {
	for n != 0 {
		m, n = n, m%n
	}
	return Abs(m)
}

// LCM returns the non-negative least common multiple of m and n, or 0 if
// either argument is 0. The gcd is divided out before multiplying.
func LCM[Z constraints.Integer](m, n Z) Z {
	if m == 0 || n == 0 {
		return 0
	}
	return Abs(m) / GCD(m, n) * Abs(n)
}
