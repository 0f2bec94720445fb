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

import "fmt"

// Builder provides exclusive mutable access to the entries of a matrix under
// construction.  Once Build is called the builder is spent, and any further
// use of it panics.
type Builder struct {
	order uint
	data  []int
}

// NewBuilder constructs a builder for a matrix of a given order, where every
// entry is initially zero.
func NewBuilder(n uint) *Builder {
	return &Builder{n, make([]int, n*n)}
}

// Order returns the order of the matrix being built.
func (b *Builder) Order() uint {
	return b.order
}

// At returns the current value of a given entry.
func (b *Builder) At(row, col uint) int {
	return b.data[b.index(row, col)]
}

// Set assigns a given entry.
func (b *Builder) Set(row, col uint, val int) {
	b.data[b.index(row, col)] = val
}

// Add adds a value onto a given entry.
func (b *Builder) Add(row, col uint, val int) {
	b.data[b.index(row, col)] += val
}

// Fill assigns every entry.
func (b *Builder) Fill(val int) {
	b.checkLive()
	//
	for i := range b.data {
		b.data[i] = val
	}
}

// FillRow assigns every entry of a given row.
func (b *Builder) FillRow(row uint, val int) {
	for col := range b.order {
		b.Set(row, col, val)
	}
}

// FillColumn assigns every entry of a given column.
func (b *Builder) FillColumn(col uint, val int) {
	for row := range b.order {
		b.Set(row, col, val)
	}
}

// Build returns the completed matrix.  The builder cannot be used afterwards.
func (b *Builder) Build() *Matrix {
	b.checkLive()
	//
	m := &Matrix{b.order, b.data}
	b.data = nil
	//
	return m
}

func (b *Builder) index(row, col uint) uint {
	b.checkLive()
	//
	if row >= b.order || col >= b.order {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for matrix of order %d", row, col, b.order))
	}
	//
	return row*b.order + col
}

func (b *Builder) checkLive() {
	if b.data == nil && b.order != 0 {
		panic("builder already built")
	}
}
