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
	"math/big"
)

// Residue is an element of a prime field, held in Montgomery form to speed up
// multiplication.  It is defined as an array to prevent mistaken use of
// arithmetic operators.
type Residue [1]uint32

// Prime represents the field GF(p) for an odd prime p below 2³¹.
type Prime struct {
	modulus           uint32
	negModulusInvModR uint32
}

// NewPrime constructs the prime field of a given (odd) order.  Observe that
// primality itself is not checked here.
func NewPrime(modulus uint32) Prime {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	} else if modulus%2 == 0 {
		panic("modulus must be odd")
	}
	//
	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))
	//
	return Prime{modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
}

// Modulus returns the order of this field.
func (f Prime) Modulus() uint32 {
	return f.modulus
}

// Element returns the field element corresponding to the natural number x.
func (f Prime) Element(x uint64) Residue {
	return Residue{uint32((x % uint64(f.modulus)) << 32 % uint64(f.modulus))}
}

// Uint32 returns the numerical (i.e. non-Montgomery) value of x.
func (f Prime) Uint32(x Residue) uint32 {
	return f.reduce(uint64(x[0]))[0]
}

// IsZero checks whether x is zero (or not).
func (f Prime) IsZero(x Residue) bool {
	return x[0] == 0
}

// Add returns x + y.
func (f Prime) Add(x, y Residue) Residue {
	res := Residue{x[0] + y[0]}
	//
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}
	//
	return res
}

// Sub returns x - y.
func (f Prime) Sub(x, y Residue) Residue {
	const negMask uint32 = 1 << 31
	//
	res := Residue{x[0] - y[0]}
	//
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}
	//
	return res
}

// Neg returns -x.
func (f Prime) Neg(x Residue) Residue {
	return f.Sub(Residue{0}, x)
}

// Mul returns x * y.
func (f Prime) Mul(x, y Residue) Residue {
	return f.reduce(uint64(x[0]) * uint64(y[0]))
}

// Square returns x * x.
func (f Prime) Square(x Residue) Residue {
	return f.Mul(x, x)
}

// reduce x -> x.R⁻¹ (mod m)
func (f Prime) reduce(x uint64) Residue {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)
	//
	res := Residue{uint32((x + m*uint64(f.modulus)) / R)}
	//
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}
	//
	return res
}

// PrimeResidues determines the quadratic residues of GF(p) for an odd prime
// p.  Specifically, the ith entry of the result holds iff i is a non-zero
// square modulo p.  Since i² = (p-i)², it suffices to square 1..(p-1)/2.
func PrimeResidues(p uint32) []bool {
	var (
		f        = NewPrime(p)
		residues = make([]bool, p)
	)
	//
	for i := uint64(1); i <= uint64(p-1)/2; i++ {
		if s := f.Square(f.Element(i)); !f.IsZero(s) {
			residues[f.Uint32(s)] = true
		}
	}
	//
	return residues
}
