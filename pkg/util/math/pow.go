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

// PowUint64 raises a given base raised to a given power.
func PowUint64(base uint64, exp uint64) uint64 {
	result := uint64(1)
	//
	for {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base *= base
	}

	return result
}

// PowBounded raises base to exp, reporting false (instead of a wrapped result)
// when the power would exceed bound.  This is used when sweeping field sizes,
// where p^k grows quickly and only small values are of interest.
func PowBounded(base uint64, exp uint64, bound uint64) (uint64, bool) {
	result := uint64(1)
	//
	for i := uint64(0); i < exp; i++ {
		if base != 0 && result > bound/base {
			return 0, false
		}
		//
		result *= base
	}
	//
	return result, result <= bound
}

// FloorMod returns the canonical non-negative residue of x modulo m (i.e. the
// result always lies in [0,m)).  This differs from Go's % operator which
// truncates towards zero and, hence, can return negative values.
func FloorMod(x int, m int) int {
	if m <= 0 {
		panic("non-positive modulus")
	}
	//
	r := x % m
	//
	if r < 0 {
		r += m
	}
	//
	return r
}
