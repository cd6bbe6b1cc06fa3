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

import "github.com/exascience/elalign/reads"

// DefaultNumCols is the default number of group columns in aligned
// rows.
const DefaultNumCols = 6

// Options configure an Aligner.
type Options struct {
	// NumCols is the number of group columns in every row.
	NumCols int

	// LabelSeparator separates group names from instance numbers.
	LabelSeparator string

	// MarkOverflow emits reads that do not fit into NumCols columns
	// as a single Overflow cell instead of failing.
	MarkOverflow bool
}

/*
An Aligner turns reads into rows of a fixed number of cells.

Alignment happens in two steps. Splice inserts inferred cells for the
groups a read is missing from its probable chains. Splice only depends
on the frequency model, so it can be called for many reads in
parallel. Finish assigns labels and pads the result; since labels
depend on the order in which predecessor contexts are first seen,
Finish must be called sequentially, in the order of the input.
*/
type Aligner struct {
	options  Options
	resolver *Resolver
	labeler  *Labeler
}

// NewAligner returns an Aligner that uses the given model.
func NewAligner(model *FrequencyModel, options Options) *Aligner {
	if options.NumCols <= 0 {
		options.NumCols = DefaultNumCols
	}
	return &Aligner{
		options:  options,
		resolver: NewResolver(model),
		labeler:  NewLabeler(model, options.LabelSeparator),
	}
}

func containsGroup(groups []Group, group Group) bool {
	for _, g := range groups {
		if g == group {
			return true
		}
	}
	return false
}

// consistent returns true if every group in preceding also occurs in
// the probable chain.
func consistent(preceding, probable []Group) bool {
	for _, g := range preceding {
		if !containsGroup(probable, g) {
			return false
		}
	}
	return true
}

/*
Splice returns the unlabeled cells of the read, in chain order.

For each group, its probable chain is compared with the groups that
precede it in the read. If all of the preceding groups are part of the
probable chain, the read does not contradict that chain, and the
probable ancestors closer to the group than the nearest preceding group
of the read are inserted as inferred cells, unless they already occur
among the cells before. If any preceding group is not part of the
probable chain, nothing is inserted.
*/
func (a *Aligner) Splice(read *reads.Read) []Cell {
	groups := read.Groups
	cells := make([]Cell, 0, len(groups))
	var missing []Group
	for i, group := range groups {
		preceding := groups[:i]
		probable := a.resolver.Resolve(group)
		if consistent(preceding, probable) {
			missing = missing[:0]
			for j := len(probable) - 1; j >= 0; j-- {
				ancestor := probable[j]
				if containsGroup(preceding, ancestor) {
					break
				}
				if !cellsContain(cells, ancestor) {
					missing = append(missing, ancestor)
				}
			}
			for j := len(missing) - 1; j >= 0; j-- {
				cells = append(cells, Cell{Kind: Inferred, Group: missing[j]})
			}
		}
		cells = append(cells, Cell{Kind: Bare, Group: group})
	}
	return cells
}

func cellsContain(cells []Cell, group Group) bool {
	for _, cell := range cells {
		if cell.Group == group {
			return true
		}
	}
	return false
}

// Finish labels the spliced cells of the read, and pads them to the
// configured number of columns. If there are more cells than columns,
// Finish returns a *ConfigurationError, or a row with a single Overflow
// cell if the aligner is configured to mark overflows.
func (a *Aligner) Finish(read *reads.Read, cells []Cell) (Row, error) {
	numCols := a.options.NumCols
	row := Row{Sample: read.Sample, Count: read.Count, Cells: make([]Cell, numCols)}
	if len(cells) > numCols {
		if !a.options.MarkOverflow {
			return Row{}, &ConfigurationError{Required: len(cells), Configured: numCols}
		}
		row.Cells[0].Kind = Overflow
		return row, nil
	}
	predecessorLabel := ChainStartLabel
	for i, cell := range cells {
		cell.Label = a.labeler.LabelFor(cell.Group, predecessorLabel)
		if cell.Label == ChainStartLabel {
			cell.Kind = ChainStartCell
		}
		row.Cells[i] = cell
		predecessorLabel = cell.Label
	}
	return row, nil
}

// Align splices and finishes a single read.
func (a *Aligner) Align(read *reads.Read) (Row, error) {
	return a.Finish(read, a.Splice(read))
}
