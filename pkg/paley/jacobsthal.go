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
package paley

import (
	"github.com/consensys/go-hadamard/pkg/matrix"
	"github.com/consensys/go-hadamard/pkg/util/field"
	"github.com/consensys/go-hadamard/pkg/util/poly"
)

// Jacobsthal constructs the Jacobsthal matrix of GF(p^k).  This is the q×q
// matrix whose (i,j) entry is the quadratic character of eᵢ - eⱼ, where eᵢ is
// the ith field element.  That is 0 when eᵢ = eⱼ, +1 when the difference is a
// quadratic residue, and -1 otherwise.  For prime fields this works directly
// on integers, whilst extension fields go through polynomial arithmetic.
func Jacobsthal(p uint, k uint) (*matrix.Matrix, error) {
	q, err := field.CheckParameters(p, k)
	//
	if err != nil {
		return nil, err
	} else if k == 1 && p != 2 {
		return jacobsthalPrime(q), nil
	}
	//
	gf, err := field.NewGaloisField(p, k)
	//
	if err != nil {
		return nil, err
	}
	//
	return JacobsthalOfField(gf), nil
}

// JacobsthalOfField constructs the Jacobsthal matrix of a given field using
// polynomial arithmetic, regardless of its exponent.
func JacobsthalOfField(gf *field.GaloisField) *matrix.Matrix {
	var (
		q        = gf.Q()
		elements = gf.Elements()
		builder  = matrix.NewBuilder(q)
	)
	//
	for row := range q {
		for col := range q {
			difference := gf.Sub(elements[row], elements[col])
			builder.Set(row, col, character(gf, difference))
		}
	}
	//
	return builder.Build()
}

// Construct the Jacobsthal matrix for a prime field GF(q), where element i is
// simply the integer i.
func jacobsthalPrime(q uint) *matrix.Matrix {
	var (
		residues = field.PrimeResidues(uint32(q))
		builder  = matrix.NewBuilder(q)
	)
	//
	for row := range q {
		for col := range q {
			switch operand := (row + q - col) % q; {
			case operand == 0:
				builder.Set(row, col, 0)
			case residues[operand]:
				builder.Set(row, col, 1)
			default:
				builder.Set(row, col, -1)
			}
		}
	}
	//
	return builder.Build()
}

// Quadratic character of a field element.
func character(gf *field.GaloisField, x poly.Polynomial) int {
	switch {
	case x.IsZero():
		return 0
	case gf.IsQuadraticResidue(x):
		return 1
	default:
		return -1
	}
}
