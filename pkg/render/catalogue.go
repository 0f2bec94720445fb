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
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-hadamard/pkg/catalogue"
	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/consensys/go-hadamard/pkg/util/termio"
)

// CatalogueText writes a catalogue as a table, with one line per construction.
// When ansi is enabled, constructions are coloured by type.
func CatalogueText(w io.Writer, cat *catalogue.Catalogue, ansi bool) error {
	var (
		entries = cat.All()
		table   = termio.NewTablePrinter(4, 1+uint(len(entries)))
		header  = termio.BoldAnsiEscape()
	)
	//
	table.AnsiEscapes(ansi)
	table.SetRow(0, "order", "q", "p^k", "type")
	//
	for col := uint(0); col < 4; col++ {
		table.SetEscape(col, 0, header)
	}
	//
	for i, entry := range entries {
		row := uint(i) + 1
		table.SetRow(row,
			fmt.Sprintf("%d", entry.Order()),
			fmt.Sprintf("%d", entry.Q()),
			powerText(entry),
			entry.Kind.String())
		table.SetEscape(3, row, kindEscape(entry.Kind))
	}
	//
	return table.Print(w)
}

// CatalogueTex writes a catalogue as the body of a LaTeX tabular with two
// groups of columns.  The first half of the orders fill the left group, the
// remainder fill the right group.  Each group gives the order followed by the
// prime power for a type I construction and for a type II construction, where
// either may be blank.
func CatalogueTex(w io.Writer, cat *catalogue.Catalogue) error {
	var (
		builder strings.Builder
		orders  = cat.Orders()
		half    = (len(orders) + 1) / 2
	)
	//
	for i := 0; i < half; i++ {
		builder.WriteString("   ")
		builder.WriteString(texCells(orders[i], cat.Entries(orders[i])))
		//
		if j := half + i; j < len(orders) {
			builder.WriteString(" &")
			builder.WriteString(texCells(orders[j], cat.Entries(orders[j])))
		}
		//
		builder.WriteString(" \\\\\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// CatalogueChecks writes one check line per construction in a catalogue, in
// order.  Each line takes the form "check(type, p, k, order)".
func CatalogueChecks(w io.Writer, cat *catalogue.Catalogue) error {
	var builder strings.Builder
	//
	for _, entry := range cat.All() {
		fmt.Fprintf(&builder, "check(%d, %d, %d, %d)\n", uint(entry.Kind), entry.P, entry.K, entry.Order())
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

func texCells(order uint, entries []paley.Parameters) string {
	var typeI, typeII string
	//
	for _, entry := range entries {
		switch entry.Kind {
		case paley.TypeI:
			typeI = texPower(entry)
		case paley.TypeII:
			typeII = texPower(entry)
		}
	}
	//
	return fmt.Sprintf(" %3d & %s & %s", order, typeI, typeII)
}

func texPower(p paley.Parameters) string {
	if p.K == 1 {
		return fmt.Sprintf("%d", p.P)
	}
	//
	return fmt.Sprintf("$%d^%d$", p.P, p.K)
}

func powerText(p paley.Parameters) string {
	if p.K == 1 {
		return fmt.Sprintf("%d", p.P)
	}
	//
	return fmt.Sprintf("%d^%d", p.P, p.K)
}

func kindEscape(kind paley.Kind) termio.AnsiEscape {
	if kind == paley.TypeI {
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	}
	//
	return termio.NewAnsiEscape().FgColour(termio.TERM_BLUE)
}
