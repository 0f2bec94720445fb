// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pow_0(t *testing.T) {
	check(0, t)
}

func Test_Pow_1(t *testing.T) {
	check(1, t)
}

func Test_Pow_2(t *testing.T) {
	check(2, t)
}

func Test_Pow_3(t *testing.T) {
	check(3, t)
}

func Test_Pow_5(t *testing.T) {
	check(5, t)
}

func Test_PowBounded_01(t *testing.T) {
	v, ok := PowBounded(3, 6, 2000)
	assert.True(t, ok)
	assert.Equal(t, uint64(729), v)
}

func Test_PowBounded_02(t *testing.T) {
	_, ok := PowBounded(3, 7, 2000)
	assert.False(t, ok)
	// Would overflow uint64 without the bound check.
	_, ok = PowBounded(199, 10, 2000)
	assert.False(t, ok)
}

func Test_FloorMod_01(t *testing.T) {
	assert.Equal(t, 2, FloorMod(-1, 3))
	assert.Equal(t, 0, FloorMod(-3, 3))
	assert.Equal(t, 1, FloorMod(7, 3))
	assert.Equal(t, 0, FloorMod(0, 5))
}

func Test_FloorMod_02(t *testing.T) {
	assert.Panics(t, func() { FloorMod(1, 0) })
}

func Test_IsPrime_01(t *testing.T) {
	for _, p := range OddPrimesBelow200 {
		assert.True(t, IsPrime(uint64(p)), "%d should be prime", p)
	}
}

func Test_IsPrime_02(t *testing.T) {
	// Count primes below 200 (46 including 2)
	n := 0
	//
	for i := uint64(0); i < 200; i++ {
		if IsPrime(i) {
			n++
		}
	}
	//
	assert.Equal(t, 46, n)
	assert.Len(t, OddPrimesBelow200, 45)
}

func Test_IsPrime_03(t *testing.T) {
	for _, n := range []uint64{0, 1, 4, 9, 15, 25, 49, 91, 121, 169} {
		assert.False(t, IsPrime(n), "%d should not be prime", n)
	}
}

func check(base uint64, t *testing.T) {
	for i := uint64(0); i < 10; i++ {
		// Bruteforce solution
		e := bruteForce(base, i)
		// Check for a match
		if x := PowUint64(base, i); x != e {
			t.Errorf("%d^%d == %d != %d", base, i, x, e)
		}
	}
}

func bruteForce(base, exp uint64) uint64 {
	acc := uint64(1)
	for i := uint64(0); i < exp; i++ {
		acc *= base
	}

	return acc
}
