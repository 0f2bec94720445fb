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
package catalogue

import (
	"cmp"
	"slices"

	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/consensys/go-hadamard/pkg/util/math"
)

// Config determines the range of parameters swept when building a catalogue.
type Config struct {
	// Field characteristics to consider.
	Primes []uint
	// Largest exponent k to consider.
	MaxPower uint
	// Largest field order q to consider.
	MaxQ uint64
	// Largest matrix order to include.
	MaxOrder uint
}

// DefaultConfig returns the configuration covering orders up to 200, using
// every odd prime below 200.
func DefaultConfig() Config {
	return Config{
		Primes:   math.OddPrimesBelow200,
		MaxPower: 10,
		MaxQ:     2000,
		MaxOrder: 200,
	}
}

// Catalogue groups Paley constructions by the order of matrix they produce.
type Catalogue struct {
	entries map[uint][]paley.Parameters
}

// Sweep determines every construction permitted by a given configuration.  A
// field order q ≡ 3 (mod 4) yields a type I construction of order q+1, whilst
// q ≡ 1 (mod 4) yields a type II construction of order 2(q+1).
func Sweep(cfg Config) *Catalogue {
	var entries = make(map[uint][]paley.Parameters)
	//
	for _, p := range cfg.Primes {
		for k := uint(1); k <= cfg.MaxPower; k++ {
			q, ok := math.PowBounded(uint64(p), uint64(k), cfg.MaxQ)
			// Powers only increase from here
			if !ok {
				break
			}
			//
			var params paley.Parameters
			//
			switch q % 4 {
			case 3:
				params = paley.Parameters{Kind: paley.TypeI, P: p, K: k}
			case 1:
				params = paley.Parameters{Kind: paley.TypeII, P: p, K: k}
			default:
				continue
			}
			//
			if order := params.Order(); order <= cfg.MaxOrder {
				entries[order] = append(entries[order], params)
			}
		}
	}
	//
	for _, params := range entries {
		slices.SortFunc(params, compare)
	}
	//
	return &Catalogue{entries}
}

// Orders returns the achievable orders in ascending order.
func (c *Catalogue) Orders() []uint {
	orders := make([]uint, 0, len(c.entries))
	//
	for order := range c.entries {
		orders = append(orders, order)
	}
	//
	slices.Sort(orders)
	//
	return orders
}

// Entries returns the constructions achieving a given order.
func (c *Catalogue) Entries(order uint) []paley.Parameters {
	return slices.Clone(c.entries[order])
}

// All returns every construction in this catalogue, ordered by matrix order.
func (c *Catalogue) All() []paley.Parameters {
	var all []paley.Parameters
	//
	for _, order := range c.Orders() {
		all = append(all, c.entries[order]...)
	}
	//
	return all
}

// Len returns the total number of constructions in this catalogue.
func (c *Catalogue) Len() uint {
	var n uint
	//
	for _, params := range c.entries {
		n += uint(len(params))
	}
	//
	return n
}

func compare(l, r paley.Parameters) int {
	if c := cmp.Compare(l.Kind, r.Kind); c != 0 {
		return c
	} else if c := cmp.Compare(l.P, r.P); c != 0 {
		return c
	}
	//
	return cmp.Compare(l.K, r.K)
}
