// Copyright 2025 Wai-Shing Luk <luk036@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fractions

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	td := []struct{ m, n, d int }{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{0, -5, 5},
		{1, 1, 1},
		{2, 4, 2},
		{6, 9, 3},
		{-6, 9, 3},
		{6, -9, 3},
		{-6, -9, 3},
		{7, 360, 1},
		{36, 120, 12},
		{3600, 216000, 3600},
		{123456789, 987654321, 9},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, d.d, GCD(d.m, d.n))
			assert.Equal(t, d.d, GCD(d.n, d.m))
		})
	}
}

func TestGCDUnsigned(t *testing.T) {
	assert.Equal(t, uint32(6), GCD(uint32(30), uint32(12)))
	assert.Equal(t, uint32(7), GCD(uint32(0), uint32(7)))
	assert.Equal(t, uint32(0), GCD(uint32(0), uint32(0)))
	assert.Equal(t, uint32(1), GCD(uint32(13), uint32(8)))
}

func TestLCM(t *testing.T) {
	td := []struct{ m, n, l int }{
		{0, 0, 0},
		{0, 7, 0},
		{7, 0, 0},
		{1, 1, 1},
		{4, 6, 12},
		{-4, 6, 12},
		{4, -6, 12},
		{-4, -6, 12},
		{3, 5, 15},
		{12, 18, 36},
		{21, 6, 42},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, d.l, LCM(d.m, d.n))
			assert.Equal(t, d.l, LCM(d.n, d.m))
		})
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, int8(5), Abs(int8(-5)))
	assert.Equal(t, uint(7), Abs(uint(7)))
}

var benchG int

func BenchmarkGCD(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchG = GCD(123456789, 987654321)
	}
}
