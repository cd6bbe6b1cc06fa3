// elalign: column alignment of ordered group chains.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://www.gnu.org/licenses/>.

package chains

import "strconv"

// CellKind tells what a Cell in an aligned row stands for.
type CellKind uint8

// Cell kinds.
const (
	// NoData pads a row up to the configured number of columns.
	NoData CellKind = iota
	// Bare is a group that was observed in the read.
	Bare
	// Inferred is a group that the read is believed to have missed.
	Inferred
	// ChainStartCell is a group whose label normalizes to the chain
	// start.
	ChainStartCell
	// Overflow replaces the cells of a read that does not fit in the
	// configured number of columns.
	Overflow
)

// Textual representations of cells that do not show a label.
const (
	NoDataText   = "."
	OverflowText = "!"
)

// A Cell is one column of an aligned row.
type Cell struct {
	Kind  CellKind
	Group Group
	Label string
}

func (c Cell) String() string {
	switch c.Kind {
	case Bare:
		return c.Label
	case Inferred:
		return "(" + c.Label + ")"
	case ChainStartCell:
		return ChainStartLabel
	case Overflow:
		return OverflowText
	default:
		return NoDataText
	}
}

// A Row is the aligned form of a read. It always has exactly as many
// cells as configured.
type Row struct {
	Sample string
	Count  int
	Cells  []Cell
}

// Format appends the tab-separated representation of the row,
// including a final newline, to out.
func (row Row) Format(out []byte) []byte {
	out = append(out, row.Sample...)
	out = append(out, '\t')
	out = strconv.AppendInt(out, int64(row.Count), 10)
	for _, cell := range row.Cells {
		out = append(out, '\t')
		out = append(out, cell.String()...)
	}
	return append(out, '\n')
}
