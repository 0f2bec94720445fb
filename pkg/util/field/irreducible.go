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
package field

import (
	"fmt"

	"github.com/consensys/go-hadamard/pkg/util/math"
	"github.com/consensys/go-hadamard/pkg/util/poly"
)

// FindIrreducible returns the first monic irreducible polynomial of degree k
// over GF(p), where candidates x^k + c(x) are ordered by the base-p value of
// c(x).  An irreducible polynomial exists for every degree, hence this always
// succeeds for a prime p and 1 <= k < poly.MaxCoefficients.
func FindIrreducible(p uint, k uint) poly.Polynomial {
	var (
		leading = poly.Monomial(1, k)
		n       = uint(math.PowUint64(uint64(p), uint64(k)))
	)
	//
	for i := range n {
		candidate := leading.Plus(digits(i, p, k))
		//
		if IsIrreducible(candidate, p) {
			return candidate
		}
	}
	// Only possible if p is not prime.
	panic(fmt.Sprintf("no irreducible polynomial of degree %d over GF(%d)", k, p))
}

// IsIrreducible determines whether a polynomial has no factor of smaller
// positive degree over GF(p).  This is done by trial division against every
// monic polynomial of degree 1..d/2 (where d is the degree), which is adequate
// for the small fields considered here.  Polynomials of degree less than one
// are not irreducible.
func IsIrreducible(f poly.Polynomial, p uint) bool {
	var (
		reduced = f.CoefficientModulo(int(p))
		d       = uint(max(reduced.Degree(), 0))
	)
	//
	if d < 1 {
		return false
	}
	//
	for m := uint(1); m <= d/2; m++ {
		var leading = poly.Monomial(1, m)
		//
		for i := range uint(math.PowUint64(uint64(p), uint64(m))) {
			divisor := leading.Plus(digits(i, p, m))
			//
			if reduced.Modulo(divisor).CoefficientModulo(int(p)).IsZero() {
				return false
			}
		}
	}
	//
	return true
}
