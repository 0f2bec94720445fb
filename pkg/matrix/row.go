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
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Row is a read-only vector of entries, typically ±1.
type Row struct {
	cells []int
}

// NewRow constructs a row from its entries.
func NewRow(values ...int) Row {
	return Row{slices.Clone(values)}
}

// RowFromBits constructs a ±1 row of a given length from the low bits of x,
// where a one bit becomes +1 and a zero bit becomes -1.  The least significant
// bit is the last entry.
func RowFromBits(length uint, x uint64) Row {
	var cells = make([]int, length)
	//
	if length > 64 {
		panic("row too long for bit pattern")
	}
	//
	for shift := range length {
		if (x>>shift)&1 == 1 {
			cells[length-1-shift] = 1
		} else {
			cells[length-1-shift] = -1
		}
	}
	//
	return Row{cells}
}

// Len returns the number of entries in this row.
func (r Row) Len() uint {
	return uint(len(r.cells))
}

// At returns a given entry.
func (r Row) At(col uint) int {
	return r.cells[col]
}

// Dot returns the inner product of this row with another of the same length.
func (r Row) Dot(other Row) int {
	var sum = 0
	//
	r.checkLen(other)
	//
	for i, v := range r.cells {
		sum += v * other.cells[i]
	}
	//
	return sum
}

// DiffDescriptor returns a binary number with a one bit for each column where
// this row differs from another, with the first column most significant.
func (r Row) DiffDescriptor(other Row) *big.Int {
	var (
		n   = len(r.cells)
		res = new(big.Int)
	)
	//
	r.checkLen(other)
	//
	for i, v := range r.cells {
		if v != other.cells[i] {
			res.SetBit(res, n-1-i, 1)
		}
	}
	//
	return res
}

// NumDifferences returns the number of columns where this row differs from
// another.
func (r Row) NumDifferences(other Row) uint {
	var count uint
	//
	r.checkLen(other)
	//
	for i, v := range r.cells {
		if v != other.cells[i] {
			count++
		}
	}
	//
	return count
}

// HasHomogeneousSign checks whether every entry of this row is the same.
func (r Row) HasHomogeneousSign() bool {
	for _, v := range r.cells {
		if v != r.cells[0] {
			return false
		}
	}
	//
	return true
}

// Negate returns this row with every entry negated.
func (r Row) Negate() Row {
	cells := make([]int, len(r.cells))
	//
	for i, v := range r.cells {
		cells[i] = -v
	}
	//
	return Row{cells}
}

// Summary reads this row as a binary number, where -1 is a zero bit and
// anything else a one bit, with the first entry most significant.  This is
// the inverse of RowFromBits.
func (r Row) Summary() *big.Int {
	var (
		n   = len(r.cells)
		res = new(big.Int)
	)
	//
	for i, v := range r.cells {
		if v != -1 {
			res.SetBit(res, n-1-i, 1)
		}
	}
	//
	return res
}

func (r Row) String() string {
	var builder strings.Builder
	//
	for _, v := range r.cells {
		fmt.Fprintf(&builder, "%2d ", v)
	}
	//
	return builder.String()
}

func (r Row) checkLen(other Row) {
	if len(r.cells) != len(other.cells) {
		panic(fmt.Sprintf("incompatible row lengths %d and %d", len(r.cells), len(other.cells)))
	}
}
