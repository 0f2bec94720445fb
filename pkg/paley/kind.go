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
	"errors"
	"fmt"

	"github.com/consensys/go-hadamard/pkg/util/field"
	"github.com/consensys/go-hadamard/pkg/util/math"
)

// Kind identifies one of Paley's two constructions.
type Kind uint8

const (
	// TypeI produces a Hadamard matrix of order q+1, for q ≡ 3 (mod 4).
	TypeI Kind = iota + 1
	// TypeII produces a Hadamard matrix of order 2(q+1), for q ≡ 1 (mod 4).
	TypeII
)

var (
	// ErrKind indicates an unknown construction type.
	ErrKind = errors.New("unknown construction type")
	// ErrCongruence indicates a field order with the wrong residue modulo 4
	// for the requested construction.
	ErrCongruence = errors.New("field order incompatible with construction")
	// ErrNotPrime indicates a field characteristic which is not prime.
	ErrNotPrime = field.ErrNotPrime
	// ErrExponent indicates an exponent which is zero, or too large for the
	// supported polynomial degree.
	ErrExponent = field.ErrExponent
	// ErrFieldSize indicates a field which is too large.
	ErrFieldSize = field.ErrFieldSize
)

// ParseKind parses a construction type given as "I", "II", "1" or "2".
func ParseKind(text string) (Kind, error) {
	switch text {
	case "I", "i", "1":
		return TypeI, nil
	case "II", "ii", "2":
		return TypeII, nil
	}
	//
	return 0, fmt.Errorf("%w: %q", ErrKind, text)
}

func (k Kind) String() string {
	switch k {
	case TypeI:
		return "I"
	case TypeII:
		return "II"
	}
	//
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Parameters identifies a single Paley construction over GF(p^k).
type Parameters struct {
	Kind Kind
	P    uint
	K    uint
}

// Q returns the order of the underlying field.
func (p Parameters) Q() uint {
	return uint(math.PowUint64(uint64(p.P), uint64(p.K)))
}

// Order returns the order of the Hadamard matrix these parameters produce.
func (p Parameters) Order() uint {
	if p.Kind == TypeII {
		return 2 * (p.Q() + 1)
	}
	//
	return p.Q() + 1
}

// Validate checks these parameters describe a valid construction.
func (p Parameters) Validate() error {
	var residue uint
	//
	switch p.Kind {
	case TypeI:
		residue = 3
	case TypeII:
		residue = 1
	default:
		return fmt.Errorf("%w: %d", ErrKind, uint8(p.Kind))
	}
	//
	q, err := field.CheckParameters(p.P, p.K)
	//
	if err != nil {
		return err
	} else if q%4 != residue {
		return fmt.Errorf("%w: type %s requires q = %d (mod 4), but %d^%d = %d", ErrCongruence, p.Kind, residue,
			p.P, p.K, q)
	}
	//
	return nil
}

func (p Parameters) String() string {
	if p.K == 1 {
		return fmt.Sprintf("type %s over GF(%d)", p.Kind, p.P)
	}
	//
	return fmt.Sprintf("type %s over GF(%d^%d)", p.Kind, p.P, p.K)
}
