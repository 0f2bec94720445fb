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
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEntry is returned when a matrix to be rendered holds an entry other than
// +1 or -1.
var ErrEntry = errors.New("matrix entry is not a sign")

// Format determines how a matrix is written out.
type Format uint8

const (
	// FormatText writes each entry as a two character signed integer.
	FormatText Format = iota
	// FormatSigns writes each entry as a single '+' or '-'.
	FormatSigns
	// FormatTex writes a LaTeX pmatrix wrapped in an equation environment.
	FormatTex
)

// ParseFormat parses the name of a matrix format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text":
		return FormatText, nil
	case "signs":
		return FormatSigns, nil
	case "tex", "latex":
		return FormatTex, nil
	}
	//
	return 0, fmt.Errorf("unknown matrix format %q", name)
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatSigns:
		return "signs"
	case FormatTex:
		return "tex"
	}
	//
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Grid is anything with square integer contents.
type Grid interface {
	Order() uint
	At(row, col uint) int
}

// Width returns the number of characters in a single line of output for a
// matrix of the given order.
func (f Format) Width(order uint) uint {
	switch f {
	case FormatSigns:
		return order
	case FormatTex:
		return 4 * order
	default:
		return 3 * order
	}
}

// Matrix writes a sign matrix to a given writer in a given format.  Nothing
// is written if any entry is not a sign.
func Matrix(w io.Writer, m Grid, format Format) error {
	var (
		builder strings.Builder
		n       = m.Order()
	)
	//
	if format == FormatTex {
		builder.WriteString("\\begin{equation}\n\\begin{pmatrix}\n")
	}
	//
	for row := uint(0); row < n; row++ {
		for col := uint(0); col < n; col++ {
			entry := m.At(row, col)
			//
			if entry != 1 && entry != -1 {
				return fmt.Errorf("%w (%d at row %d, column %d)", ErrEntry, entry, row, col)
			}
			//
			switch format {
			case FormatSigns:
				builder.WriteByte(sign(entry))
			case FormatTex:
				if col != 0 {
					builder.WriteString(" & ")
				}
				//
				if entry < 0 {
					builder.WriteString("-")
				} else {
					builder.WriteString("1")
				}
			default:
				fmt.Fprintf(&builder, "%2d ", entry)
			}
		}
		//
		if format == FormatTex {
			builder.WriteString(" \\\\")
		}
		//
		builder.WriteString("\n")
	}
	//
	if format == FormatTex {
		builder.WriteString("\\end{pmatrix}\n\\end{equation}\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

func sign(entry int) byte {
	if entry < 0 {
		return '-'
	}
	//
	return '+'
}
