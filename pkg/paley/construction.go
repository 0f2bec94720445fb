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
	"fmt"

	"github.com/consensys/go-hadamard/pkg/matrix"
	"github.com/consensys/go-hadamard/pkg/util"
)

// InvariantError signals that a construction produced something other than a
// Hadamard matrix of the expected order.  This can only arise from a defect in
// the construction itself, since parameters are validated beforehand.  It is
// raised as a panic, rather than returned.
type InvariantError struct {
	Parameters Parameters
	// Order of the matrix actually produced.
	Order uint
	// Reason the matrix was rejected.
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invalid %s construction (expected order %d, got %d): %s", e.Parameters, e.Parameters.Order(),
		e.Order, e.Reason)
}

// Build constructs a Hadamard matrix using Paley's construction of the given
// type over GF(p^k).  An error is returned for invalid parameters (e.g. p not
// prime or q in the wrong residue class modulo 4).  The result is verified
// before being returned and, should that fail, this panics with an
// InvariantError.
func Build(kind Kind, p uint, k uint) (*matrix.Matrix, error) {
	return Parameters{kind, p, k}.Build()
}

// Build constructs the Hadamard matrix described by these parameters.
func (p Parameters) Build() (*matrix.Matrix, error) {
	var (
		stats  = util.NewPerfStats()
		result *matrix.Matrix
	)
	//
	if err := p.Validate(); err != nil {
		return nil, err
	}
	//
	jacobsthal, err := Jacobsthal(p.P, p.K)
	//
	if err != nil {
		return nil, err
	}
	//
	switch p.Kind {
	case TypeI:
		result = constructionOne(jacobsthal)
	default:
		result = constructionTwo(jacobsthal)
	}
	// Sanity check
	assertHadamard(p, result)
	//
	stats.Log(fmt.Sprintf("Building %s (order %d)", p, result.Order()))
	//
	return result, nil
}

// Check builds the given construction and compares its order against an
// expected value.
func Check(kind Kind, p uint, k uint, expectedOrder uint) error {
	m, err := Build(kind, p, k)
	//
	if err != nil {
		return err
	} else if m.Order() != expectedOrder {
		return fmt.Errorf("%s has order %d, expected %d", Parameters{kind, p, k}, m.Order(), expectedOrder)
	}
	//
	return nil
}

// Conference constructs the conference matrix of GF(p^k): the Jacobsthal matrix
// bordered by a row and column of ones, with a zero in the corner.
func Conference(p uint, k uint) (*matrix.Matrix, error) {
	jacobsthal, err := Jacobsthal(p, k)
	//
	if err != nil {
		return nil, err
	}
	//
	return conference(jacobsthal), nil
}

// Construction I.  Border a Jacobsthal matrix Q (q ≡ 3 mod 4, hence Q is skew)
// with ones, and subtract one from the interior diagonal:
//
//	[ 1  1ᵗ  ]
//	[ 1 Q - I]
func constructionOne(jacobsthal *matrix.Matrix) *matrix.Matrix {
	var (
		q       = jacobsthal.Order()
		builder = matrix.NewBuilder(q + 1)
	)
	//
	builder.FillRow(0, 1)
	builder.FillColumn(0, 1)
	jacobsthal.CopyInto(builder, 1, 1)
	// Subtract identity, but just from the Jacobsthal part.
	for i := uint(1); i <= q; i++ {
		builder.Add(i, i, -1)
	}
	//
	return builder.Build()
}

// Construction II.  From the (symmetric) conference matrix C for q ≡ 1 mod 4,
// assemble the block matrix:
//
//	[ C + I   C - I ]
//	[ C - I  -C - I ]
func constructionTwo(jacobsthal *matrix.Matrix) *matrix.Matrix {
	var (
		c        = conference(jacobsthal)
		n        = c.Order()
		identity = matrix.Identity(n)
		builder  = matrix.NewBuilder(2 * n)
	)
	//
	c.Plus(identity).CopyInto(builder, 0, 0)
	c.Minus(identity).CopyInto(builder, 0, n)
	c.Minus(identity).CopyInto(builder, n, 0)
	c.Negate().Minus(identity).CopyInto(builder, n, n)
	//
	return builder.Build()
}

func conference(jacobsthal *matrix.Matrix) *matrix.Matrix {
	var builder = matrix.NewBuilder(jacobsthal.Order() + 1)
	//
	builder.FillRow(0, 1)
	builder.FillColumn(0, 1)
	builder.Set(0, 0, 0)
	jacobsthal.CopyInto(builder, 1, 1)
	//
	return builder.Build()
}

// Panic unless a matrix is Hadamard of the order expected for the given
// parameters.
func assertHadamard(p Parameters, m *matrix.Matrix) {
	var reason string
	//
	switch {
	case m.Order() != p.Order():
		reason = "wrong order"
	case !m.IsSign():
		reason = "entry other than ±1"
	case !m.IsHadamard():
		reason = "rows are not orthogonal"
	default:
		return
	}
	//
	panic(&InvariantError{p, m.Order(), reason})
}
