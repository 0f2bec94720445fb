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
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Matrix is a read-only square matrix of integers.  Matrices are assembled
// using a Builder and are never modified once built.  All operations return
// fresh matrices.
type Matrix struct {
	order uint
	// Entries in row-major order.
	data []int
}

// Identity constructs the identity matrix of a given order.
func Identity(n uint) *Matrix {
	builder := NewBuilder(n)
	//
	for i := range n {
		builder.Set(i, i, 1)
	}
	//
	return builder.Build()
}

// FromRows constructs a matrix from its rows, which must form a non-empty
// square grid.
func FromRows(rows [][]int) (*Matrix, error) {
	var n = uint(len(rows))
	//
	if n == 0 {
		return nil, errors.New("empty matrix")
	}
	//
	builder := NewBuilder(n)
	//
	for i, row := range rows {
		if uint(len(row)) != n {
			return nil, fmt.Errorf("row %d has %d entries (expected %d)", i, len(row), n)
		}
		//
		copy(builder.data[uint(i)*n:], row)
	}
	//
	return builder.Build(), nil
}

// Order returns the number of rows (equivalently columns) of this matrix.
func (m *Matrix) Order() uint {
	return m.order
}

// At returns the entry at a given row and column.
func (m *Matrix) At(row, col uint) int {
	m.checkIndex(row, col)
	//
	return m.data[row*m.order+col]
}

// Row returns a given row of this matrix.
func (m *Matrix) Row(row uint) Row {
	m.checkIndex(row, 0)
	//
	return Row{slices.Clone(m.data[row*m.order : (row+1)*m.order])}
}

// Column returns a given column of this matrix, read from top to bottom.
func (m *Matrix) Column(col uint) Row {
	var cells = make([]int, m.order)
	//
	m.checkIndex(0, col)
	//
	for i := range m.order {
		cells[i] = m.data[i*m.order+col]
	}
	//
	return Row{cells}
}

// Transpose returns the transpose of this matrix.
func (m *Matrix) Transpose() *Matrix {
	return m.mapIndex(func(row, col uint) int {
		return m.data[col*m.order+row]
	})
}

// RotateRight returns this matrix rotated a quarter turn clockwise.
func (m *Matrix) RotateRight() *Matrix {
	return m.mapIndex(func(row, col uint) int {
		return m.data[(m.order-1-col)*m.order+row]
	})
}

// Negate returns the matrix with every entry negated.
func (m *Matrix) Negate() *Matrix {
	return m.mapIndex(func(row, col uint) int {
		return -m.data[row*m.order+col]
	})
}

// Plus returns the entry-wise sum of this matrix and another of the same order.
func (m *Matrix) Plus(other *Matrix) *Matrix {
	m.checkOrder(other)
	//
	return m.mapIndex(func(row, col uint) int {
		i := row*m.order + col
		return m.data[i] + other.data[i]
	})
}

// Minus returns the entry-wise difference of this matrix and another of the
// same order.
func (m *Matrix) Minus(other *Matrix) *Matrix {
	m.checkOrder(other)
	//
	return m.mapIndex(func(row, col uint) int {
		i := row*m.order + col
		return m.data[i] - other.data[i]
	})
}

// Times returns the (standard) product of this matrix and another of the same
// order.
func (m *Matrix) Times(other *Matrix) *Matrix {
	var (
		n       = m.order
		builder = NewBuilder(n)
	)
	//
	m.checkOrder(other)
	//
	for row := range n {
		for k := range n {
			a := m.data[row*n+k]
			//
			if a == 0 {
				continue
			}
			//
			for col := range n {
				builder.data[row*n+col] += a * other.data[k*n+col]
			}
		}
	}
	//
	return builder.Build()
}

// CopyInto copies this matrix into a builder, such that entry (0,0) of this
// matrix lands at (rowOffset,colOffset).  This is used to assemble block
// matrices.
func (m *Matrix) CopyInto(dest *Builder, rowOffset, colOffset uint) {
	dest.checkLive()
	//
	if rowOffset+m.order > dest.order || colOffset+m.order > dest.order {
		panic(fmt.Sprintf("block of order %d does not fit at (%d,%d) in matrix of order %d",
			m.order, rowOffset, colOffset, dest.order))
	}
	//
	for row := range m.order {
		start := (row+rowOffset)*dest.order + colOffset
		copy(dest.data[start:start+m.order], m.data[row*m.order:(row+1)*m.order])
	}
}

// Equals checks whether this matrix has the same order and entries as
// another.
func (m *Matrix) Equals(other *Matrix) bool {
	return m.order == other.order && slices.Equal(m.data, other.data)
}

// IsSign checks whether every entry of this matrix is either +1 or -1.
func (m *Matrix) IsSign() bool {
	for _, v := range m.data {
		if v != 1 && v != -1 {
			return false
		}
	}
	//
	return true
}

// IsNTimesIdentity checks whether this matrix equals n·I, where n is its
// order.
func (m *Matrix) IsNTimesIdentity() bool {
	n := int(m.order)
	//
	for row := range m.order {
		for col := range m.order {
			expected := 0
			//
			if row == col {
				expected = n
			}
			//
			if m.data[row*m.order+col] != expected {
				return false
			}
		}
	}
	//
	return true
}

// IsHadamard checks whether this matrix M satisfies M·Mᵗ = n·I exactly.  For a
// matrix whose entries are all ±1, this means its rows are pairwise orthogonal.
func (m *Matrix) IsHadamard() bool {
	return m.Times(m.Transpose()).IsNTimesIdentity()
}

// RowSummary reads a given row as a binary number, where +1 is a one bit and
// the first column is the most significant bit.
func (m *Matrix) RowSummary(row uint) *big.Int {
	return m.Row(row).Summary()
}

// ColumnSummary reads a given column, from bottom to top, as a binary number.
func (m *Matrix) ColumnSummary(col uint) *big.Int {
	column := m.Column(col)
	slices.Reverse(column.cells)
	//
	return column.Summary()
}

// RowSummaries returns the summaries of every row, in ascending order.  Two
// matrices which differ only by a permutation of their rows have the same
// summaries.
func (m *Matrix) RowSummaries() []*big.Int {
	summaries := make([]*big.Int, m.order)
	//
	for i := range m.order {
		summaries[i] = m.RowSummary(i)
	}
	//
	slices.SortFunc(summaries, func(l, r *big.Int) int {
		return l.Cmp(r)
	})
	//
	return summaries
}

func (m *Matrix) String() string {
	var builder strings.Builder
	//
	for i := range m.order {
		builder.WriteString(m.Row(i).String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// Construct a matrix of the same order by computing each entry.
func (m *Matrix) mapIndex(fn func(row, col uint) int) *Matrix {
	builder := NewBuilder(m.order)
	//
	for row := range m.order {
		for col := range m.order {
			builder.data[row*m.order+col] = fn(row, col)
		}
	}
	//
	return builder.Build()
}

func (m *Matrix) checkIndex(row, col uint) {
	if row >= m.order || col >= m.order {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for matrix of order %d", row, col, m.order))
	}
}

func (m *Matrix) checkOrder(other *Matrix) {
	if m.order != other.order {
		panic(fmt.Sprintf("incompatible orders %d and %d", m.order, other.order))
	}
}
