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
package matrix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Matrix_Identity(t *testing.T) {
	id := Identity(3)
	//
	assert.Equal(t, uint(3), id.Order())
	assert.Equal(t, 1, id.At(1, 1))
	assert.Equal(t, 0, id.At(0, 2))
	assert.True(t, id.Times(id).Equals(id))
	assert.False(t, id.IsHadamard())
	assert.True(t, Identity(1).IsHadamard())
}

func Test_Matrix_FromRows(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)
	//
	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.Error(t, err)
	//
	m, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.At(1, 0))
}

func Test_Matrix_Transpose(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	expected := mustRows(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	//
	assert.True(t, m.Transpose().Equals(expected))
	assert.True(t, m.Transpose().Transpose().Equals(m))
}

func Test_Matrix_RotateRight(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	expected := mustRows(t, [][]int{{7, 4, 1}, {8, 5, 2}, {9, 6, 3}})
	//
	assert.True(t, m.RotateRight().Equals(expected), m.RotateRight().String())
	assert.True(t, m.RotateRight().RotateRight().RotateRight().RotateRight().Equals(m))
}

func Test_Matrix_Arithmetic(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{0, 1}, {1, 0}})
	//
	assert.True(t, a.Plus(b).Equals(mustRows(t, [][]int{{1, 3}, {4, 4}})))
	assert.True(t, a.Minus(b).Equals(mustRows(t, [][]int{{1, 1}, {2, 4}})))
	assert.True(t, a.Negate().Equals(mustRows(t, [][]int{{-1, -2}, {-3, -4}})))
	assert.True(t, a.Times(b).Equals(mustRows(t, [][]int{{2, 1}, {4, 3}})))
	assert.True(t, b.Times(a).Equals(mustRows(t, [][]int{{3, 4}, {1, 2}})))
	// Operands unchanged
	assert.True(t, a.Equals(mustRows(t, [][]int{{1, 2}, {3, 4}})))
}

func Test_Matrix_OrderMismatch(t *testing.T) {
	assert.Panics(t, func() { Identity(2).Plus(Identity(3)) })
	assert.Panics(t, func() { Identity(2).Times(Identity(3)) })
	assert.Panics(t, func() { Identity(2).At(2, 0) })
}

func Test_Matrix_CopyInto(t *testing.T) {
	builder := NewBuilder(4)
	//
	Identity(2).CopyInto(builder, 0, 0)
	Identity(2).Negate().CopyInto(builder, 2, 2)
	m := builder.Build()
	//
	assert.Equal(t, 1, m.At(1, 1))
	assert.Equal(t, -1, m.At(3, 3))
	assert.Equal(t, 0, m.At(0, 3))
	//
	assert.Panics(t, func() { Identity(3).CopyInto(NewBuilder(4), 2, 0) })
}

func Test_Matrix_Builder(t *testing.T) {
	builder := NewBuilder(3)
	builder.Fill(1)
	builder.FillRow(0, -1)
	builder.FillColumn(2, 0)
	builder.Add(1, 1, 4)
	//
	assert.Equal(t, 5, builder.At(1, 1))
	//
	m := builder.Build()
	assert.True(t, m.Equals(mustRows(t, [][]int{{-1, -1, 0}, {1, 5, 0}, {1, 1, 0}})))
	// Builder is spent
	assert.Panics(t, func() { builder.Set(0, 0, 1) })
	assert.Panics(t, func() { builder.Build() })
}

func Test_Matrix_Sylvester(t *testing.T) {
	h := Identity(1)
	// Double repeatedly using [H H; H -H]
	for range 4 {
		n := h.Order()
		builder := NewBuilder(2 * n)
		h.CopyInto(builder, 0, 0)
		h.CopyInto(builder, 0, n)
		h.CopyInto(builder, n, 0)
		h.Negate().CopyInto(builder, n, n)
		h = builder.Build()
		//
		assert.True(t, h.IsSign())
		assert.True(t, h.IsHadamard(), "order %d", h.Order())
	}
	//
	assert.Equal(t, uint(16), h.Order())
	// Transformations preserving the Hadamard property
	assert.True(t, h.Transpose().IsHadamard())
	assert.True(t, h.Negate().IsHadamard())
	assert.True(t, h.RotateRight().IsHadamard())
}

func Test_Matrix_NotHadamard(t *testing.T) {
	m := mustRows(t, [][]int{{1, 1}, {1, 1}})
	assert.True(t, m.IsSign())
	assert.False(t, m.IsHadamard())
	//
	m = mustRows(t, [][]int{{1, 1}, {1, 0}})
	assert.False(t, m.IsSign())
	assert.False(t, m.IsHadamard())
}

func Test_Matrix_Summaries(t *testing.T) {
	m := mustRows(t, [][]int{{1, 1}, {1, -1}})
	//
	assert.Equal(t, big.NewInt(3), m.RowSummary(0))
	assert.Equal(t, big.NewInt(2), m.RowSummary(1))
	// Column 1 read bottom to top is (-1, +1)
	assert.Equal(t, big.NewInt(1), m.ColumnSummary(1))
	assert.Equal(t, []*big.Int{big.NewInt(2), big.NewInt(3)}, m.RowSummaries())
}

func Test_Matrix_String(t *testing.T) {
	m := mustRows(t, [][]int{{1, -1}, {-1, 1}})
	assert.Equal(t, " 1 -1 \n-1  1 \n", m.String())
}

func Test_Row_Bits(t *testing.T) {
	for x := uint64(0); x < 64; x++ {
		r := RowFromBits(6, x)
		assert.Equal(t, uint(6), r.Len())
		assert.Equal(t, new(big.Int).SetUint64(x), r.Summary())
	}
	//
	assert.Equal(t, NewRow(-1, 1, -1, 1), RowFromBits(4, 5))
}

func Test_Row_Operations(t *testing.T) {
	a := NewRow(1, 1, -1, -1)
	b := NewRow(1, -1, 1, -1)
	//
	assert.Equal(t, 0, a.Dot(b))
	assert.Equal(t, 4, a.Dot(a))
	assert.Equal(t, uint(2), a.NumDifferences(b))
	assert.Equal(t, big.NewInt(6), a.DiffDescriptor(b))
	assert.False(t, a.HasHomogeneousSign())
	assert.True(t, NewRow(-1, -1).HasHomogeneousSign())
	assert.Equal(t, NewRow(-1, -1, 1, 1), a.Negate())
	assert.Equal(t, uint(4), a.Negate().NumDifferences(a))
	//
	assert.Panics(t, func() { a.Dot(NewRow(1)) })
}

func Test_Row_Access(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	//
	assert.Equal(t, NewRow(3, 4), m.Row(1))
	assert.Equal(t, NewRow(2, 4), m.Column(1))
}

func mustRows(t *testing.T, rows [][]int) *Matrix {
	m, err := FromRows(rows)
	require.NoError(t, err)
	//
	return m
}
