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
package poly

import (
	"fmt"
	"strings"

	"github.com/consensys/go-hadamard/pkg/util/math"
)

// MaxCoefficients determines the number of coefficients held by a polynomial.
// Thus, the highest supported exponent is MaxCoefficients-1.
const MaxCoefficients = 10

// Polynomial is an immutable dense polynomial in a single variable x with
// integer coefficients, where the ith coefficient is that of x^i.  Polynomials
// are values: they can be compared with == and used as map keys.  Observe that
// equality is over the raw coefficients, hence callers must reduce polynomials
// (e.g. modulo some prime) before using them as keys for field elements.
type Polynomial struct {
	coefficients [MaxCoefficients]int
}

// New constructs a polynomial from zero or more coefficients, where the ith
// argument is the coefficient of x^i.
func New(coefficients ...int) Polynomial {
	var p Polynomial
	//
	if len(coefficients) > MaxCoefficients {
		panic(fmt.Sprintf("polynomial has %d coefficients (max %d)", len(coefficients), MaxCoefficients))
	}
	//
	copy(p.coefficients[:], coefficients)
	//
	return p
}

// Monomial constructs the polynomial c*x^e.
func Monomial(c int, e uint) Polynomial {
	var p Polynomial
	//
	if e >= MaxCoefficients {
		panic(fmt.Sprintf("exponent %d out of bounds", e))
	}
	//
	p.coefficients[e] = c
	//
	return p
}

// Coefficient returns the coefficient of x^e in this polynomial.
func (p Polynomial) Coefficient(e int) int {
	return p.coefficients[e]
}

// Coefficients returns a copy of the coefficients of this polynomial.
func (p Polynomial) Coefficients() []int {
	return p.coefficients[:]
}

// Degree returns the highest exponent with a non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for e := MaxCoefficients - 1; e >= 0; e-- {
		if p.coefficients[e] != 0 {
			return e
		}
	}
	//
	return -1
}

// IsZero checks whether this is the zero polynomial (or not).
func (p Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// IsMonic checks whether this polynomial is non-zero with a leading
// coefficient of one.
func (p Polynomial) IsMonic() bool {
	d := p.Degree()
	//
	return d >= 0 && p.coefficients[d] == 1
}

// Plus returns the coefficient-wise sum of this polynomial and another.
func (p Polynomial) Plus(other Polynomial) Polynomial {
	for e := range MaxCoefficients {
		p.coefficients[e] += other.coefficients[e]
	}
	//
	return p
}

// Minus returns the coefficient-wise difference of this polynomial and another.
func (p Polynomial) Minus(other Polynomial) Polynomial {
	for e := range MaxCoefficients {
		p.coefficients[e] -= other.coefficients[e]
	}
	//
	return p
}

// Times returns the product of this polynomial and another.  This panics if
// the product has a non-zero term whose exponent cannot be represented.
func (p Polynomial) Times(other Polynomial) Polynomial {
	var res Polynomial
	//
	for i, ci := range p.coefficients {
		if ci == 0 {
			continue
		}
		//
		for j, cj := range other.coefficients {
			if cj == 0 {
				continue
			} else if i+j >= MaxCoefficients {
				panic(fmt.Sprintf("product of %s and %s exceeds maximum degree", p.String(), other.String()))
			}
			//
			res.coefficients[i+j] += ci * cj
		}
	}
	//
	return res
}

// Square returns this polynomial multiplied by itself.
func (p Polynomial) Square() Polynomial {
	return p.Times(p)
}

// Modulo returns the remainder of dividing this polynomial by a given divisor
// using classical long division over the integers.  Each step divides the
// leading coefficient of the remainder exactly by that of the divisor, which
// always succeeds for monic divisors.  The result is either zero or has degree
// strictly less than the divisor.
func (p Polynomial) Modulo(divisor Polynomial) Polynomial {
	var (
		remainder = p
		n         = divisor.Degree()
	)
	//
	if n < 0 {
		panic("polynomial division by zero")
	}
	//
	lead := divisor.coefficients[n]
	//
	for m := remainder.Degree(); m >= n; m = remainder.Degree() {
		c := remainder.coefficients[m]
		//
		if c%lead != 0 {
			panic(fmt.Sprintf("inexact division of %s by %s", remainder.String(), divisor.String()))
		}
		//
		quotient, shift := c/lead, m-n
		// Subtract quotient * x^shift * divisor
		for i := 0; i <= n; i++ {
			remainder.coefficients[shift+i] -= quotient * divisor.coefficients[i]
		}
	}
	//
	return remainder
}

// CoefficientModulo returns this polynomial with every coefficient replaced by
// its canonical (i.e. non-negative) residue modulo m.
func (p Polynomial) CoefficientModulo(m int) Polynomial {
	for e := range MaxCoefficients {
		p.coefficients[e] = math.FloorMod(p.coefficients[e], m)
	}
	//
	return p
}

// Base evaluates this polynomial at x = b after reducing its coefficients
// modulo b.  For an element of GF(p^k) this gives the base-p digits of its
// index.
func (p Polynomial) Base(b int) int {
	var (
		reduced = p.CoefficientModulo(b)
		sum     = 0
	)
	//
	for e := MaxCoefficients - 1; e >= 0; e-- {
		sum = (sum * b) + reduced.coefficients[e]
	}
	//
	return sum
}

// Base10 evaluates this polynomial at x = 10 without reducing its
// coefficients.  For polynomials whose coefficients are digits, this reads the
// coefficients as a decimal number (e.g. x^2+2*x+1 gives 121).
func (p Polynomial) Base10() int {
	sum := 0
	//
	for e := MaxCoefficients - 1; e >= 0; e-- {
		sum = (sum * 10) + p.coefficients[e]
	}
	//
	return sum
}

// String returns the canonical form of this polynomial, with terms in
// decreasing order of exponent.  The result is accepted by Parse.
func (p Polynomial) String() string {
	var builder strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for e := MaxCoefficients - 1; e >= 0; e-- {
		c := p.coefficients[e]
		//
		switch {
		case c == 0:
			continue
		case c < 0:
			builder.WriteString("-")
		case builder.Len() > 0:
			builder.WriteString("+")
		}
		//
		writeTerm(&builder, max(c, -c), e)
	}
	//
	return builder.String()
}

// Write a single term with a positive coefficient.
func writeTerm(builder *strings.Builder, c int, e int) {
	switch {
	case e == 0:
		fmt.Fprintf(builder, "%d", c)
		return
	case c != 1:
		fmt.Fprintf(builder, "%d*", c)
	}
	//
	if e == 1 {
		builder.WriteString("x")
	} else {
		fmt.Fprintf(builder, "x^%d", e)
	}
}
