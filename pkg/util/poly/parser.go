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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a term which could not be parsed, along with its offset
// in the input text.
type ParseError struct {
	// Offset of the offending term within the input text.
	Offset int
	// Text of the offending term.
	Term string
	// Message describing the problem.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s (term %q)", e.Offset, e.Message, e.Term)
}

var (
	errEmptyTerm   = errors.New("empty term")
	errMalformed   = errors.New("malformed term")
	errNotVariable = errors.New("expected variable x")
)

// Parse a polynomial written as a signed sum of terms, where each term has one
// of the forms C, x, x^E, C*x or C*x^E (for non-negative integers C and E).
// For example, "x^3-2*x^2-4" or "-1".  No whitespace is permitted, and x is the
// only variable.  Terms with the same exponent accumulate.
func Parse(text string) (Polynomial, error) {
	var p Polynomial
	//
	if len(text) == 0 {
		return p, &ParseError{0, text, "empty polynomial"}
	}
	//
	for start := 0; start < len(text); {
		negative := false
		// Strip leading sign (if any)
		switch text[start] {
		case '-':
			negative = true
			start++
		case '+':
			start++
		}
		//
		end := nextSign(text, start)
		term := text[start:end]
		//
		c, e, err := parseTerm(term)
		//
		if err != nil {
			return p, &ParseError{start, term, err.Error()}
		} else if negative {
			c = -c
		}
		//
		p.coefficients[e] += c
		start = end
	}
	//
	return p, nil
}

// MustParse parses a polynomial, panicking if this fails.  This is intended
// for fixed polynomials appearing in code and tests.
func MustParse(text string) Polynomial {
	p, err := Parse(text)
	//
	if err != nil {
		panic(err.Error())
	}
	//
	return p
}

// Find the index of the next '+' or '-' at or after a given start position, or
// the length of the text if there is none.
func nextSign(text string, start int) int {
	if i := strings.IndexAny(text[start:], "+-"); i >= 0 {
		return start + i
	}
	//
	return len(text)
}

// Parse a single unsigned term into its coefficient and exponent.
func parseTerm(term string) (int, int, error) {
	if len(term) == 0 {
		return 0, 0, errEmptyTerm
	} else if !strings.ContainsRune(term, 'x') {
		c, err := parseNumber(term)
		return c, 0, err
	}
	// Split off coefficient (if any)
	coefficient, variable, found := strings.Cut(term, "*")
	//
	if !found {
		coefficient, variable = "1", term
	}
	//
	c, err := parseNumber(coefficient)
	if err != nil {
		return 0, 0, err
	}
	//
	e, err := parseVariable(variable)
	//
	return c, e, err
}

// Parse a variable of the form "x" or "x^E".
func parseVariable(text string) (int, error) {
	if text == "x" {
		return 1, nil
	} else if !strings.HasPrefix(text, "x^") {
		return 0, errNotVariable
	}
	//
	e, err := parseNumber(text[2:])
	//
	if err != nil {
		return 0, err
	} else if e >= MaxCoefficients {
		return 0, fmt.Errorf("exponent %d exceeds maximum degree %d", e, MaxCoefficients-1)
	}
	//
	return e, nil
}

// Parse a non-empty sequence of decimal digits.
func parseNumber(text string) (int, error) {
	if len(text) == 0 {
		return 0, errMalformed
	}
	//
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, errMalformed
		}
	}
	//
	return strconv.Atoi(text)
}
