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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_DegreeTwo(t *testing.T) {
	checkParse(t, "x^2", 100, "x^2")
}

func Test_Parse_DegreeZeroOneTwo(t *testing.T) {
	checkParse(t, "1+2*x+x^2", 121, "x^2+2*x+1")
}

func Test_Parse_DegreeZeroOneTwoOnes(t *testing.T) {
	checkParse(t, "1+x+x^2", 111, "x^2+x+1")
}

func Test_Parse_ThreeConstant(t *testing.T) {
	checkParse(t, "x^2+3", 103, "x^2+3")
}

func Test_Parse_Negative(t *testing.T) {
	checkParse(t, "-1", -1, "-1")
}

func Test_Parse_Accumulate(t *testing.T) {
	checkParse(t, "x+x", 20, "2*x")
	checkParse(t, "x-x", 0, "0")
}

func Test_Parse_NegativeLeading(t *testing.T) {
	p := MustParse("-x^3+2*x")
	assert.Equal(t, -1, p.Coefficient(3))
	assert.Equal(t, "-x^3+2*x", p.String())
}

func Test_Parse_Invalid(t *testing.T) {
	for _, text := range []string{"", "2x", "x^", "y", "1+", "+-1", "2*", "*x", "x^10", "2*y^2", "x^2 +1", "3**x"} {
		_, err := Parse(text)
		assert.Error(t, err, "%q should not parse", text)
	}
}

func Test_Parse_ErrorOffset(t *testing.T) {
	_, err := Parse("x^2+2x+1")
	require.Error(t, err)
	//
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Offset)
	assert.Equal(t, "2x", perr.Term)
}

func Test_Parse_RoundTrip(t *testing.T) {
	// Enumerate every polynomial of degree < 4 with coefficients in [-2,2]
	var coeffs [4]int
	//
	for i := 0; i < 625; i++ {
		for j, n := 0, i; j < len(coeffs); j, n = j+1, n/5 {
			coeffs[j] = (n % 5) - 2
		}
		//
		p := New(coeffs[:]...)
		q, err := Parse(p.String())
		//
		require.NoError(t, err, p.String())
		assert.Equal(t, p, q, p.String())
	}
}

func Test_Poly_Minus(t *testing.T) {
	a := MustParse("3*x^2+2*x+1")
	b := MustParse("x^2+3")
	assert.Equal(t, "2*x^2+2*x-2", a.Minus(b).String())
	// Receiver is unchanged
	assert.Equal(t, "3*x^2+2*x+1", a.String())
}

func Test_Poly_Plus(t *testing.T) {
	a := MustParse("3*x^2+2*x+1")
	b := MustParse("-x^2-1")
	assert.Equal(t, "2*x^2+2*x", a.Plus(b).String())
}

func Test_Poly_Square(t *testing.T) {
	a := MustParse("3*x^2+2*x-1")
	assert.Equal(t, MustParse("9*x^4+12*x^3-2*x^2-4*x+1"), a.Square())
	assert.Equal(t, "9*x^4+12*x^3-2*x^2-4*x+1", a.Square().String())
}

func Test_Poly_SquareOverflow(t *testing.T) {
	assert.Panics(t, func() { MustParse("x^5").Square() })
	assert.NotPanics(t, func() { MustParse("x^4+1").Square() })
}

func Test_Poly_Times(t *testing.T) {
	a := MustParse("x+1")
	b := MustParse("x-1")
	assert.Equal(t, MustParse("x^2-1"), a.Times(b))
	assert.True(t, a.Times(New()).IsZero())
}

func Test_Poly_Modulo(t *testing.T) {
	dividend := MustParse("x^3-2*x^2-4")
	divisor := MustParse("x-3")
	assert.Equal(t, "5", dividend.Modulo(divisor).String())
}

func Test_Poly_ModuloThreeSquared(t *testing.T) {
	dividend := MustParse("x^2")
	divisor := MustParse("x^2+1")
	assert.Equal(t, "-1", dividend.Modulo(divisor).String())
}

func Test_Poly_ModuloSquares(t *testing.T) {
	dividend := MustParse("2*x^2+x")
	divisor := MustParse("x^2+1")
	assert.Equal(t, "x-2", dividend.Modulo(divisor).String())
	assert.Equal(t, "x+1", dividend.Modulo(divisor).CoefficientModulo(3).String())
}

func Test_Poly_ModuloDegree(t *testing.T) {
	divisors := []Polynomial{MustParse("x-3"), MustParse("x^2+1"), MustParse("x^3+2*x+1"), MustParse("x^4-x")}
	//
	for i := 0; i < 300; i++ {
		// Deterministic pseudo-random dividend of degree < 8
		var coeffs [8]int
		for j := range coeffs {
			coeffs[j] = ((i*31 + j*17) % 9) - 4
		}
		//
		dividend := New(coeffs[:]...)
		//
		for _, divisor := range divisors {
			r := dividend.Modulo(divisor)
			assert.True(t, r.IsZero() || r.Degree() < divisor.Degree(), "%s mod %s = %s", dividend, divisor, r)
		}
	}
}

func Test_Poly_ModuloSmaller(t *testing.T) {
	a := MustParse("2*x+1")
	assert.Equal(t, a, a.Modulo(MustParse("x^2+1")))
}

func Test_Poly_ModuloInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("x^2").Modulo(New()) })
	assert.Panics(t, func() { MustParse("x^2").Modulo(MustParse("2*x+1")) })
}

func Test_Poly_CoefficientModulo(t *testing.T) {
	p := MustParse("-x^2+5*x-7")
	assert.Equal(t, "2*x^2+2*x+2", p.CoefficientModulo(3).String())
}

func Test_Poly_Degree(t *testing.T) {
	assert.Equal(t, -1, New().Degree())
	assert.True(t, New().IsZero())
	assert.Equal(t, 0, MustParse("7").Degree())
	assert.Equal(t, 9, MustParse("x^9").Degree())
	assert.True(t, MustParse("x^2+1").IsMonic())
	assert.False(t, MustParse("2*x^2+1").IsMonic())
	assert.False(t, New().IsMonic())
}

func Test_Poly_Base(t *testing.T) {
	// 2*x+1 in base 3 is 2*3+1
	assert.Equal(t, 7, MustParse("2*x+1").Base(3))
	// Coefficients are reduced first
	assert.Equal(t, 7, MustParse("-x+1").Base(3))
}

func Test_Poly_MapKey(t *testing.T) {
	set := map[Polynomial]bool{MustParse("x+1"): true}
	assert.True(t, set[MustParse("1+x")])
	assert.False(t, set[MustParse("x+4")])
	assert.True(t, set[MustParse("x+4").CoefficientModulo(3)])
}

func checkParse(t *testing.T, text string, base10 int, canonical string) {
	p, err := Parse(text)
	//
	require.NoError(t, err)
	assert.Equal(t, base10, p.Base10())
	assert.Equal(t, canonical, p.String())
}
