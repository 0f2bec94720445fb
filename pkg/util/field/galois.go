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
	"errors"
	"fmt"

	"github.com/consensys/go-hadamard/pkg/util/math"
	"github.com/consensys/go-hadamard/pkg/util/poly"
)

// MaxFieldSize is the largest field order supported.
const MaxFieldSize = 1 << 16

// MaxExponent is the largest exponent k supported for GF(p^k).  Squaring an
// element of degree k-1 must not exceed the degree bound of a polynomial.
const MaxExponent = (poly.MaxCoefficients + 1) / 2

var (
	// ErrNotPrime indicates a field characteristic which is not prime.
	ErrNotPrime = errors.New("characteristic is not prime")
	// ErrExponent indicates an exponent which is zero or too large.
	ErrExponent = errors.New("unsupported exponent")
	// ErrFieldSize indicates a field whose order exceeds MaxFieldSize.
	ErrFieldSize = errors.New("field too large")
	// ErrDivisor indicates a divisor which cannot define the field.
	ErrDivisor = errors.New("invalid divisor")
)

// GaloisField represents GF(p^k), whose elements are the polynomials over GF(p)
// of degree less than k, with arithmetic modulo a monic irreducible polynomial
// of degree k (the divisor).  Elements are enumerated in base-p order: the
// element at index i has, as its coefficient of x^j, the jth base-p digit of i.
// A GaloisField is read-only once constructed.
type GaloisField struct {
	p        uint
	k        uint
	q        uint
	divisor  poly.Polynomial
	elements []poly.Polynomial
	// residues[i] holds iff the ith element is a non-zero square.
	residues []bool
}

// NewGaloisField constructs GF(p^k) using the first monic irreducible
// polynomial of degree k over GF(p) (ordered by the base-p value of its lower
// coefficients) as the divisor.
func NewGaloisField(p uint, k uint) (*GaloisField, error) {
	q, err := CheckParameters(p, k)
	//
	if err != nil {
		return nil, err
	}
	//
	return newGaloisField(p, k, q, FindIrreducible(p, k)), nil
}

// NewGaloisFieldWithDivisor constructs GF(p^k) using a given divisor, which
// must be a monic irreducible polynomial of degree k with coefficients in
// [0,p).
func NewGaloisFieldWithDivisor(p uint, k uint, divisor poly.Polynomial) (*GaloisField, error) {
	q, err := CheckParameters(p, k)
	//
	switch {
	case err != nil:
		return nil, err
	case divisor.Degree() != int(k) || !divisor.IsMonic():
		return nil, fmt.Errorf("%w: %s is not monic of degree %d", ErrDivisor, divisor, k)
	case divisor != divisor.CoefficientModulo(int(p)):
		return nil, fmt.Errorf("%w: %s has coefficients outside GF(%d)", ErrDivisor, divisor, p)
	case !IsIrreducible(divisor, p):
		return nil, fmt.Errorf("%w: %s is reducible over GF(%d)", ErrDivisor, divisor, p)
	}
	//
	return newGaloisField(p, k, q, divisor), nil
}

// CheckParameters validates the characteristic and exponent of GF(p^k),
// returning the field order q = p^k.
func CheckParameters(p uint, k uint) (uint, error) {
	if !math.IsPrime(uint64(p)) {
		return 0, fmt.Errorf("%w: %d", ErrNotPrime, p)
	} else if k == 0 || k > MaxExponent {
		return 0, fmt.Errorf("%w: %d (must be in 1..%d)", ErrExponent, k, MaxExponent)
	}
	//
	q, ok := math.PowBounded(uint64(p), uint64(k), MaxFieldSize)
	//
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d exceeds %d", ErrFieldSize, p, k, MaxFieldSize)
	}
	//
	return uint(q), nil
}

func newGaloisField(p uint, k uint, q uint, divisor poly.Polynomial) *GaloisField {
	gf := &GaloisField{p: p, k: k, q: q, divisor: divisor}
	//
	gf.elements = make([]poly.Polynomial, q)
	//
	for i := range q {
		gf.elements[i] = digits(i, p, k)
	}
	//
	if k == 1 && p != 2 {
		gf.residues = PrimeResidues(uint32(p))
	} else {
		gf.residues = gf.polynomialResidues()
	}
	//
	return gf
}

// P returns the characteristic of this field.
func (gf *GaloisField) P() uint {
	return gf.p
}

// K returns the exponent of this field.
func (gf *GaloisField) K() uint {
	return gf.k
}

// Q returns the order of this field (i.e. p^k).
func (gf *GaloisField) Q() uint {
	return gf.q
}

// Divisor returns the irreducible polynomial defining this field.
func (gf *GaloisField) Divisor() poly.Polynomial {
	return gf.divisor
}

// Elements returns the elements of this field in index order.
func (gf *GaloisField) Elements() []poly.Polynomial {
	return append([]poly.Polynomial(nil), gf.elements...)
}

// Element returns the element of this field at a given index.
func (gf *GaloisField) Element(index uint) poly.Polynomial {
	return gf.elements[index]
}

// Reduce maps an arbitrary polynomial into this field, by taking its remainder
// modulo the divisor and then reducing its coefficients modulo p.
func (gf *GaloisField) Reduce(f poly.Polynomial) poly.Polynomial {
	return f.Modulo(gf.divisor).CoefficientModulo(int(gf.p))
}

// IndexOf returns the index of the element equivalent to a given polynomial.
func (gf *GaloisField) IndexOf(f poly.Polynomial) uint {
	return uint(gf.Reduce(f).Base(int(gf.p)))
}

// Add returns x + y.
func (gf *GaloisField) Add(x, y poly.Polynomial) poly.Polynomial {
	return x.Plus(y).CoefficientModulo(int(gf.p))
}

// Sub returns x - y.
func (gf *GaloisField) Sub(x, y poly.Polynomial) poly.Polynomial {
	return x.Minus(y).CoefficientModulo(int(gf.p))
}

// Mul returns x * y.
func (gf *GaloisField) Mul(x, y poly.Polynomial) poly.Polynomial {
	return gf.Reduce(gf.Reduce(x).Times(gf.Reduce(y)))
}

// Square returns x * x.
func (gf *GaloisField) Square(x poly.Polynomial) poly.Polynomial {
	return gf.Reduce(x.Square())
}

// IsQuadraticResidue checks whether a given (non-zero) element is the square
// of some element.
func (gf *GaloisField) IsQuadraticResidue(x poly.Polynomial) bool {
	return gf.residues[gf.IndexOf(x)]
}

// QuadraticResidues returns the non-zero squares of this field in index order.
func (gf *GaloisField) QuadraticResidues() []poly.Polynomial {
	var residues []poly.Polynomial
	//
	for i, ok := range gf.residues {
		if ok {
			residues = append(residues, gf.elements[i])
		}
	}
	//
	return residues
}

func (gf *GaloisField) String() string {
	if gf.k == 1 {
		return fmt.Sprintf("GF(%d)", gf.p)
	}
	//
	return fmt.Sprintf("GF(%d^%d) mod %s", gf.p, gf.k, gf.divisor)
}

// Determine quadratic residues by squaring every element.
func (gf *GaloisField) polynomialResidues() []bool {
	residues := make([]bool, gf.q)
	//
	for _, f := range gf.elements {
		if s := gf.Square(f); !s.IsZero() {
			residues[s.Base(int(gf.p))] = true
		}
	}
	//
	return residues
}

// Construct the polynomial whose coefficients are the k base-p digits of i.
func digits(i uint, p uint, k uint) poly.Polynomial {
	var coeffs = make([]int, k)
	//
	for j := range k {
		coeffs[j] = int(i % p)
		i /= p
	}
	//
	return poly.New(coeffs...)
}
